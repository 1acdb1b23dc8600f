package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuditHandler serves the action history.
type AuditHandler struct {
	audit AuditTrail
	log   *logrus.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit AuditTrail, log *logrus.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: log}
}

// List handles GET /api/v1/audit, newest entries first.
func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.audit.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing audit entries")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Clear handles DELETE /api/v1/audit.
func (h *AuditHandler) Clear(c *gin.Context) {
	if err := h.audit.Clear(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("clearing audit log")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
