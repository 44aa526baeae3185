package mockapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/casava/admin-console/src/internal/log"
)

// Server runs the mock API.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server listening on bindAddr.
func NewServer(bindAddr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Serve accepts connections on ln until Stop is called.
func (s *Server) Serve(ln net.Listener) error {
	log.Infof("[mockapi] Listening on http://%s", ln.Addr())
	log.Infof("[mockapi] Example: curl -H 'Authorization: Bearer <token>' http://%s/casava/customer-data", ln.Addr())

	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Start listens on the configured address and serves until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[mockapi] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
