package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/example/expedicoes/internal/ports/primary"
)

// HealthHandler reports whether the store is reachable.
type HealthHandler struct {
	svc    primary.MissionService
	logger logrus.FieldLogger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc primary.MissionService, logger logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// HandleHealth handles GET /healthz.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		requestLogger(h.logger, r).WithError(err).Warn("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
