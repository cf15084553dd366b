// Package httpapi exposes the note store over HTTP. Routes, parameters, and
// status codes follow the surface the demo web clients expect: credentials
// travel as userId/password query parameters (or a bearer token), note
// bodies and tokens as text/plain, everything else as JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/services"
)

type HTTPServer struct {
	address         string
	service         *services.Service
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(address string, service *services.Service, logger logging.Logger, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         address,
		service:         service,
		logger:          logger.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler builds the chi mux with all operations registered. It is separate
// from Run so tests can drive the full router without a listener.
func (s *HTTPServer) Handler() http.Handler {
	mux := chi.NewMux()

	cfg := huma.DefaultConfig("Notekeeper API", "1.0.0")
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	api := humachi.New(mux, cfg)
	s.registerRoutes(api)

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
