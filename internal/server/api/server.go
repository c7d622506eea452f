// Package api exposes the stand-in services over HTTP+JSON under /api,
// using the same routes and payloads as the real LLMPID backend.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/logging"
	"github.com/dmitrijs2005/llmpid-console/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address         string
	users           *services.UserService
	classifications *services.ClassificationService
	systems         *services.SystemService
	logger          logging.Logger
	handler         http.Handler
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, cs *services.ClassificationService, ss *services.SystemService) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		classifications: cs,
		systems:         ss,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the router. Tests mount it on httptest servers.
func (s *HTTPServer) Handler() http.Handler { return s.handler }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
