package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/curbside/pkg/usecase"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	timeout time.Duration
}

type Options func(*Server)

// WithTimeout bounds the time a handler may spend on one request
func WithTimeout(d time.Duration) Options {
	return func(s *Server) {
		s.timeout = d
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/actions", s.listActions)

		r.Route("/trash", func(r chi.Router) {
			r.Get("/", s.listEntries)
			r.Post("/", s.logEntry)
			r.Patch("/", s.toggleEntry)
			r.Delete("/", s.undoEntry)
			r.Get("/stats", s.entryStats)
		})

		r.Route("/counter", func(r chi.Router) {
			r.Get("/", s.counterSummary)
			r.Post("/", s.addCounter)
			r.Delete("/", s.removeCounter)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger embeds a logger carrying the request ID into the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}
