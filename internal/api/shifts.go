package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// ShiftHandler serves the shift log lifecycle and archive.
type ShiftHandler struct {
	shifts ShiftLog
	log    *logrus.Logger
}

// NewShiftHandler creates a ShiftHandler.
func NewShiftHandler(shifts ShiftLog, log *logrus.Logger) *ShiftHandler {
	return &ShiftHandler{shifts: shifts, log: log}
}

// Open handles GET /api/v1/shifts/open. A 404 means no shift is open.
func (h *ShiftHandler) Open(c *gin.Context) {
	shift, err := h.shifts.Open(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("loading open shift")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}
	if shift == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "no shift is currently open")

		return
	}

	c.JSON(http.StatusOK, shift)
}

// Start handles POST /api/v1/shifts. Only one shift may be open at a time.
func (h *ShiftHandler) Start(c *gin.Context) {
	var req models.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	shift, err := h.shifts.StartShift(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrShiftAlreadyOpen):
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("starting shift")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusCreated, shift)
}

type closeShiftRequest struct {
	ClosingRemarks string `json:"closing_remarks"`
}

// Close handles POST /api/v1/shifts/close. The open shift is stamped,
// archived, and the open slot cleared.
func (h *ShiftHandler) Close(c *gin.Context) {
	var req closeShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	shift, err := h.shifts.CloseShift(c.Request.Context(), req.ClosingRemarks)
	if err != nil {
		if errors.Is(err, models.ErrNoOpenShift) {
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())

			return
		}

		h.log.WithError(err).Error("closing shift")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, shift)
}

// AddNote handles POST /api/v1/shifts/notes.
func (h *ShiftHandler) AddNote(c *gin.Context) {
	var req models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	note, err := h.shifts.AddNote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoOpenShift):
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("adding shift note")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusCreated, note)
}

// AddSupplierVisit handles POST /api/v1/shifts/suppliers.
func (h *ShiftHandler) AddSupplierVisit(c *gin.Context) {
	var req models.AddSupplierVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	visit, err := h.shifts.AddSupplierVisit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoOpenShift):
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("adding supplier visit")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusCreated, visit)
}

// NextFolio handles GET /api/v1/shifts/next-folio.
func (h *ShiftHandler) NextFolio(c *gin.Context) {
	folio, err := h.shifts.NextFolio(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("computing next folio")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"folio": folio})
}

// Archive handles GET /api/v1/shifts/archive. Shifts come back newest folio
// first.
func (h *ShiftHandler) Archive(c *gin.Context) {
	shifts, err := h.shifts.ListArchived(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing archived shifts")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}
