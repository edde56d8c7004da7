package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/marben/fractals"
	"github.com/marben/fractals/scene"
	"github.com/marben/fractals/screenshot"
	"github.com/marben/fractals/viewport"
)

// Actions carried by controlMsg.Action.
const (
	actionIterUp   = "iter_up"
	actionIterDown = "iter_down"
	actionReset    = "reset"
	actionInfo     = "info"
)

// controlMsg is sent by the browser for every frame it wants drawn.
// Mode 0 keeps the current mode.
type controlMsg struct {
	Mode   int     `json:"mode"`
	Keys   keysMsg `json:"keys"`
	Action string  `json:"action,omitempty"`
}

type keysMsg struct {
	ZoomIn      bool `json:"zoom_in"`
	ZoomOut     bool `json:"zoom_out"`
	RotateLeft  bool `json:"rotate_left"`
	RotateRight bool `json:"rotate_right"`
	PanUp       bool `json:"pan_up"`
	PanDown     bool `json:"pan_down"`
	PanLeft     bool `json:"pan_left"`
	PanRight    bool `json:"pan_right"`
}

func (k keysMsg) keys() viewport.Keys {
	return viewport.Keys{
		ZoomIn:      k.ZoomIn,
		ZoomOut:     k.ZoomOut,
		RotateLeft:  k.RotateLeft,
		RotateRight: k.RotateRight,
		PanUp:       k.PanUp,
		PanDown:     k.PanDown,
		PanLeft:     k.PanLeft,
		PanRight:    k.PanRight,
	}
}

// errorMsg is sent as a text frame when a frame cannot be produced.
type errorMsg struct {
	Error string `json:"error"`
}

var errUnknownAction = errors.New("unknown action")

// session holds the view of one browser connection. Each mode keeps its
// own scene and controller, so switching back returns to the old view.
type session struct {
	width, height int
	mode          fractals.Mode
	info          bool

	scenes map[fractals.Mode]*scene.Scene
	ctrls  map[fractals.Mode]*viewport.Controller
}

func newSession(width, height int) *session {
	return &session{
		width:  width,
		height: height,
		mode:   fractals.Koch,
		scenes: make(map[fractals.Mode]*scene.Scene),
		ctrls:  make(map[fractals.Mode]*viewport.Controller),
	}
}

func (s *session) current() (*scene.Scene, *viewport.Controller, error) {
	sc, ok := s.scenes[s.mode]
	if !ok {
		var err error
		sc, err = scene.New(s.mode, s.width, s.height)
		if err != nil {
			return nil, nil, err
		}
		ctrl := viewport.New(s.width, s.height)
		ctrl.SetIterLimit(sc.IterLimit())
		s.scenes[s.mode] = sc
		s.ctrls[s.mode] = ctrl
	}
	return sc, s.ctrls[s.mode], nil
}

// handle applies msg and renders the resulting frame.
func (s *session) handle(msg controlMsg) (*image.RGBA, error) {
	if msg.Mode != 0 {
		m := fractals.Mode(msg.Mode)
		if !m.Valid() {
			return nil, fmt.Errorf("mode %d out of range", msg.Mode)
		}
		s.mode = m
	}

	sc, ctrl, err := s.current()
	if err != nil {
		return nil, err
	}

	switch msg.Action {
	case "":
	case actionIterUp:
		ctrl.IterUp()
	case actionIterDown:
		ctrl.IterDown()
	case actionReset:
		ctrl.Reset()
	case actionInfo:
		s.info = !s.info
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAction, msg.Action)
	}
	ctrl.Apply(msg.Keys.keys())
	sc.SetShowInfo(s.info)

	return sc.Render(ctrl.Params())
}

// serve answers control messages on c until the connection closes.
func (s *session) serve(ctx context.Context, c *websocket.Conn) error {
	var buf bytes.Buffer
	for {
		var msg controlMsg
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			return err
		}

		img, err := s.handle(msg)
		if err != nil {
			log.Printf("session: %v", err)
			if err := wsjson.Write(ctx, c, errorMsg{Error: err.Error()}); err != nil {
				return err
			}
			continue
		}

		buf.Reset()
		if err := screenshot.Encode(&buf, img); err != nil {
			return err
		}
		if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
			return err
		}
	}
}
