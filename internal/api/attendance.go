package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// AttendanceHandler serves the clock in/out endpoints.
type AttendanceHandler struct {
	attendance Attendance
	log        *logrus.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendance Attendance, log *logrus.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, log: log}
}

type clockRequest struct {
	EmployeeID string           `json:"employee_id"`
	Kind       models.EventKind `json:"kind"`
}

// Clock handles POST /api/v1/clock. The request carries the employee and
// whether this is an entry or an exit; the service enforces the open-record
// rules either way.
func (h *AttendanceHandler) Clock(c *gin.Context) {
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}
	if !req.Kind.Valid() {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "kind must be entry or exit")

		return
	}

	rec, err := h.attendance.RegisterEvent(c.Request.Context(), req.EmployeeID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmployeeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")
		case errors.Is(err, models.ErrAlreadyClockedIn),
			errors.Is(err, models.ErrEntryTooSoon),
			errors.Is(err, models.ErrNoOpenEntry):
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("registering clock event")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusOK, rec)
}

// OpenRecord handles GET /api/v1/clock/open/:employeeId. A 404 means the
// employee has no open entry, which callers use to decide between offering
// clock-in and clock-out.
func (h *AttendanceHandler) OpenRecord(c *gin.Context) {
	rec, err := h.attendance.FindOpenRecord(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.log.WithError(err).Error("looking up open record")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}
	if rec == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "no open entry for employee")

		return
	}

	c.JSON(http.StatusOK, rec)
}
