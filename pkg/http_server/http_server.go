// Package http_server runs the echo handler with the start/notify/shutdown
// lifecycle the app loop drives: the listen error surfaces on Notify, and
// Shutdown drains in-flight requests before the process exits.
package http_server

import (
	"context"
	"net/http"
	"time"
)

const (
	// slow-client guards; share-link resolves come from the open internet
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute

	shutdownTimeout = 30 * time.Second
)

type Server struct {
	server *http.Server
	notify chan error
}

func New(handler http.Handler, address string) *Server {
	s := &Server{
		server: &http.Server{
			Handler:           handler,
			Addr:              address,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		notify: make(chan error, 1),
	}

	go func() {
		s.notify <- s.server.ListenAndServe()
		close(s.notify)
	}()

	return s
}

// Notify reports the ListenAndServe result once the server stops serving.
func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
