// Package handler provides HTTP handlers for the oxygen calculator API.
package handler

import (
	"net/http"

	"github.com/vayura/oxygen-calculator/internal/api/models"
	"github.com/vayura/oxygen-calculator/internal/api/response"
)

// ServiceName identifies this service in health responses.
const ServiceName = "oxygen-calculator"

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version    string
	storeReady func() bool
}

// NewOpsHandler creates a new OpsHandler. storeReady reports whether the
// history store can take traffic; nil means no store is configured.
func NewOpsHandler(version string, storeReady func() bool) *OpsHandler {
	return &OpsHandler{
		version:    version,
		storeReady: storeReady,
	}
}

// HealthCheck handles GET / and GET /health - static liveness response.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:  "healthy",
		Service: ServiceName,
		Version: h.version,
	})
}

// ReadinessCheck handles GET /ready - readiness including the optional
// history store.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	readiness := models.Readiness{Status: "ok"}

	if h.storeReady != nil {
		if h.storeReady() {
			readiness.Dependencies = map[string]string{"history-store": "ok"}
		} else {
			readiness.Status = "degraded"
			readiness.Dependencies = map[string]string{"history-store": "unavailable"}
		}
	}

	response.JSON(w, r, http.StatusOK, readiness)
}
