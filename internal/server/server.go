// SPDX-License-Identifier: MIT

// Package server exposes the analysis pipeline over HTTP with a chi router.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/internal/logger"
	"github.com/katalvlaran/ctmc/internal/metrics"
	"github.com/katalvlaran/ctmc/model"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/validate"
)

const (
	// DefaultMaxBody bounds request bodies; a 100×100 model is well below it.
	DefaultMaxBody = 1 << 20

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 60 * time.Second

	shutdownGrace = 5 * time.Second
)

// Server owns the HTTP handlers.
type Server struct {
	analyzer  *analysis.Analyzer
	metrics   *metrics.Metrics
	maxStates int
	maxBody   int64
	timeout   time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithMaxStates rejects models with more states than n (default validate.MaxStates).
func WithMaxStates(n int) Option { return func(s *Server) { s.maxStates = n } }

// WithTimeout bounds the processing time of each request.
func WithTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// New returns a server running analyses with a and exposing m on /metrics.
// m may be nil, in which case /metrics is not mounted.
func New(a *analysis.Analyzer, m *metrics.Metrics, opts ...Option) *Server {
	s := &Server{
		analyzer:  a,
		metrics:   m,
		maxStates: validate.MaxStates,
		maxBody:   DefaultMaxBody,
		timeout:   DefaultTimeout,
	}
	for _, set := range opts {
		set(s)
	}

	return s
}

// Handler builds the router.
//
//	GET  /healthz
//	GET  /metrics
//	POST /v1/analyze                       model → analysis.Report
//	POST /v1/validate                      model → analysis.Validation
//	POST /v1/graph?format=json|dot|mermaid model → graph description
//	POST /v1/latex                         model → LaTeX fragments
//	POST /v1/chart                         model → p(t) series per state
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(s.timeout))
		r.Post("/analyze", s.analyze)
		r.Post("/validate", s.validate)
		r.Post("/graph", s.graph)
		r.Post("/latex", s.latex)
		r.Post("/chart", s.chart)
	})

	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logger.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "err", err)

			return srv.Close()
		}

		return nil
	}
}

// decodeModel reads the request body as YAML for YAML content types and as JSON otherwise.
func (s *Server) decodeModel(w http.ResponseWriter, r *http.Request) (*model.Model, bool) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()

	var (
		m   *model.Model
		err error
	)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/yaml", "application/x-yaml", "text/yaml":
		m, err = model.DecodeYAML(body)
	default:
		m, err = model.Decode(body)
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)

		return nil, false
	}
	if m.Size > s.maxStates {
		writeError(w, r, http.StatusUnprocessableEntity,
			fmt.Errorf("model has %d states, this server accepts at most %d", m.Size, s.maxStates))

		return nil, false
	}

	return m, true
}

// statusOf maps pipeline errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, validate.ErrStructural), errors.Is(err, validate.ErrValue),
		errors.Is(err, model.ErrInvalid), errors.Is(err, stationary.ErrSolverFailure):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error(), RequestID: middleware.GetReqID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}

func writeText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		logger.Error("write response", "err", err)
	}
}

// requestLogger logs one line per request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
