package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Zer0x25/reloj-control/internal/httputil"
	"github.com/Zer0x25/reloj-control/internal/metrics"
	"github.com/Zer0x25/reloj-control/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeNotFound        = "not_found"
	ErrCodeConflict        = "conflict"
	ErrCodeInternalError   = "internal_error"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeValidationError = "validation_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// validationErrs enumerates the sentinel errors that indicate bad input
// rather than a server fault.
var validationErrs = []error{
	models.ErrMissingEmployeeID,
	models.ErrMissingName,
	models.ErrMissingResponsible,
	models.ErrInvalidShiftType,
	models.ErrInvalidDateTime,
	models.ErrInvalidPlate,
	models.ErrNegativeCompanions,
	models.ErrMissingNoteText,
	models.ErrTimeOrder,
	models.ErrValueTooLong,
}

// isValidationErr reports whether err belongs to the validation taxonomy.
func isValidationErr(err error) bool {
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
