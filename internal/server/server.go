package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-strings-editor/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer creates a server listening on address.
func NewHTTPServer(address string, handler http.Handler, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if address == "" {
		return nil, errNoAddress
	}
	if handler == nil {
		return nil, errNoHandler
	}

	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

func (h *httpServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen: %w", err)
	}
	return h.serve(ctx, listener)
}

func (h *httpServer) serve(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
		if err := h.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("HTTP server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		// ошибки закрытия Listener
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	h.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
