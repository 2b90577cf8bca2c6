// Package chi serves word lookups over HTTP using the chi router.
package chi

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/palabras"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server routes HTTP requests to a WordService.
type Server struct {
	service palabras.WordService
	logger  *slog.Logger
	router  chi.Router
}

// NewServer creates a Server with request IDs, access logging and panic
// recovery on every route.
func NewServer(service palabras.WordService, logger *slog.Logger) *Server {
	s := &Server{service: service, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/{word}", s.handleWord)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}
