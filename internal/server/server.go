// Package server exposes the comparison engine over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tulna-ai/tulna/internal/clients"
	"github.com/tulna-ai/tulna/internal/comparison"
	"github.com/tulna-ai/tulna/internal/ingest"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
	aggregator *comparison.Aggregator
	source     ingest.ReviewSource
	cache      *clients.ValkeyClient // nil when caching is disabled
}

func New(addr string, aggregator *comparison.Aggregator, source ingest.ReviewSource, cache *clients.ValkeyClient) *Server {
	s := &Server{
		aggregator: aggregator,
		source:     source,
		cache:      cache,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/compare", s.handleCompare)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start serves until ctx is cancelled, then drains with a bounded
// shutdown.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("[Server] Listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("[Server] Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
