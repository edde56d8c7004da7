package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/marben/fractals"
	"github.com/marben/fractals/geometric"
)

func TestSessionHandle(t *testing.T) {
	s := newSession(120, 90)

	img, err := s.handle(controlMsg{})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 120, 90) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if s.mode != fractals.Koch {
		t.Errorf("initial mode = %v, want koch", s.mode)
	}

	if _, err := s.handle(controlMsg{Mode: 3, Keys: keysMsg{ZoomIn: true}}); err != nil {
		t.Fatal(err)
	}
	if got := s.ctrls[fractals.Tree].Params().Scale; got != 110 {
		t.Errorf("tree scale = %g, want 110", got)
	}
	if got := s.ctrls[fractals.Koch].Params().Scale; got != 100 {
		t.Errorf("koch scale changed to %g", got)
	}

	if _, err := s.handle(controlMsg{Action: actionReset}); err != nil {
		t.Fatal(err)
	}
	if got := s.ctrls[fractals.Tree].Params().Scale; got != 100 {
		t.Errorf("tree scale after reset = %g, want 100", got)
	}

	if _, err := s.handle(controlMsg{Mode: 9}); err == nil {
		t.Error("mode 9 accepted")
	}
	if _, err := s.handle(controlMsg{Action: "explode"}); !errors.Is(err, errUnknownAction) {
		t.Errorf("err = %v, want errUnknownAction", err)
	}
}

func TestSessionIterLimit(t *testing.T) {
	s := newSession(60, 60)
	for range geometric.MaxKochDepth + 3 {
		if _, err := s.handle(controlMsg{Mode: 1, Action: actionIterUp}); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.ctrls[fractals.Koch].Params().Iter; got != geometric.MaxKochDepth {
		t.Errorf("Iter = %d, want %d", got, geometric.MaxKochDepth)
	}
}

func TestSessionInfoToggle(t *testing.T) {
	s := newSession(60, 60)
	if _, err := s.handle(controlMsg{Mode: 4, Action: actionInfo}); err != nil {
		t.Fatal(err)
	}
	if !s.scenes[fractals.Mandelbrot].ShowInfo() {
		t.Error("info not shown after toggle")
	}
	if _, err := s.handle(controlMsg{Mode: 5}); err != nil {
		t.Fatal(err)
	}
	if !s.scenes[fractals.Julia].ShowInfo() {
		t.Error("info toggle not carried to the next mode")
	}
}

func TestWebsocketSession(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	l := NewWSListener(ctx, "test/ws")
	defer l.Close()
	go serveSessions(l, 64, 48)

	srv := httptest.NewServer(newMux(l))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("GET / = %s", res.Status)
	}

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.CloseNow()

	if err := wsjson.Write(ctx, c, controlMsg{Mode: 4, Keys: keysMsg{PanLeft: true}}); err != nil {
		t.Fatal(err)
	}
	typ, data, err := c.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if typ != websocket.MessageBinary {
		t.Fatalf("message type = %v, want binary", typ)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if err := wsjson.Write(ctx, c, controlMsg{Action: "explode"}); err != nil {
		t.Fatal(err)
	}
	var e errorMsg
	if err := wsjson.Read(ctx, c, &e); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(e.Error, "explode") {
		t.Errorf("error message = %q", e.Error)
	}

	c.Close(websocket.StatusNormalClosure, "")
}
