// Package api provides the HTTP handlers and router for the clock service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/ws"
)

// Pinger checks backing-store connectivity. Memory-backed deployments pass
// nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	pinger    Pinger
	hub       *ws.Hub
	log       *logrus.Logger
	version   string
	backend   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(pinger Pinger, hub *ws.Hub, log *logrus.Logger, version, backend string) *HealthHandler {
	return &HealthHandler{
		pinger:    pinger,
		hub:       hub,
		log:       log,
		version:   version,
		backend:   backend,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Storage       string  `json:"storage"`
	Backend       string  `json:"backend"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health. A failing storage ping is reported but
// non-fatal for liveness.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Storage:       "connected",
		Backend:       h.backend,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			resp.Storage = "disconnected"
		}
	} else {
		resp.Storage = "in_memory"
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. Storage must answer a ping before the
// service accepts traffic.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"storage": "ok"}
	status := "ready"
	statusCode := http.StatusOK

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.log.WithError(err).Error("readiness: storage ping failed")
			checks["storage"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, readinessResponse{Status: status, Checks: checks})
}
