// Package api exposes the mission store over HTTP/JSON.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/expedicoes/internal/ports/primary"
	"github.com/example/expedicoes/pkg/metrics"
)

// Options tunes the middleware chain.
type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server wires HTTP routes for the mission API.
type Server struct {
	logger  logrus.FieldLogger
	metrics *metrics.Manager
	limiter *RateLimiter

	healthHandler   *HealthHandler
	missionsHandler *MissionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(svc primary.MissionService, logger logrus.FieldLogger, m *metrics.Manager, opts Options) *Server {
	if m == nil {
		m = metrics.NewManager()
	}
	return &Server{
		logger:          logger,
		metrics:         m,
		limiter:         NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, m, logger),
		healthHandler:   NewHealthHandler(svc, logger),
		missionsHandler: NewMissionsHandler(svc, logger, m),
	}
}

// Router returns the mux with every route and middleware attached.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	// Order matters: request id first so every later layer can log it.
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(s.logger))
	r.Use(MetricsMiddleware(s.metrics))
	r.Use(s.limiter.Handler)

	r.HandleFunc("/healthz", s.healthHandler.HandleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/missao", s.missionsHandler.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/missoes", s.missionsHandler.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/missoes/pesquisa", s.missionsHandler.HandleSearch).Methods(http.MethodGet)
	r.HandleFunc("/missao/{id}", s.missionsHandler.HandleGet).Methods(http.MethodGet)
	r.HandleFunc("/missao/{id}", s.missionsHandler.HandleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/missao/{id}", s.missionsHandler.HandleDelete).Methods(http.MethodDelete)

	// Router-level misses bypass r.Use, so they get the request id here.
	r.NotFoundHandler = RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}))
	r.MethodNotAllowedHandler = RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}))

	return r
}

// StartLimiterCleanup evicts idle per-client limiters until ctx is done.
func (s *Server) StartLimiterCleanup(ctx context.Context, interval time.Duration) {
	s.limiter.StartCleanup(ctx, interval)
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeInternalError hides the cause from the client; it is logged instead.
func writeInternalError(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger, err error) {
	requestLogger(logger, r).WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgProcessingError})
}
