package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/fractals"
)

//go:embed static
var static embed.FS

// webServer creates a server for the embedded page and the websocket
// endpoint. Accepted websocket connections are handed to the returned
// listener.
func webServer(ctx context.Context, addr string) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, addr+"/ws")

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(l),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return l, srv
}

func newMux(l *WebsocketListener) *http.ServeMux {
	root, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // embedded directory is always present
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.Handle("/", http.FileServerFS(root))
	return mux
}

// websocketHandler upgrades the request and queues the connection on l.
// The connection outlives the handler.
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener queues accepted websocket connections until they are
// picked up by Accept.
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (*websocket.Conn, error) {
	select {
	case c := <-l.ch:
		return c, nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// serveSessions runs one session per accepted connection until the
// listener is closed.
func serveSessions(l *WebsocketListener, width, height int) error {
	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		go func() {
			fractals.Logger().Info("session started")
			err := newSession(width, height).serve(l.ctx, c)
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				c.Close(websocket.StatusNormalClosure, "")
			default:
				log.Printf("session: %v", err)
				c.Close(websocket.StatusInternalError, "")
			}
			fractals.Logger().Info("session ended")
		}()
	}
}

// wsAddr names the websocket endpoint.
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
