package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/export"
	"github.com/Zer0x25/reloj-control/internal/models"
)

const filterDateLayout = "2006-01-02"

// RecordHandler serves the attendance table, record edits, and exports.
type RecordHandler struct {
	attendance Attendance
	view       RecordView
	log        *logrus.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(attendance Attendance, view RecordView, log *logrus.Logger) *RecordHandler {
	return &RecordHandler{attendance: attendance, view: view, log: log}
}

// parseFilter builds a RecordFilter from query params. Dates are interpreted
// as local midnight; the service extends "to" to cover the whole day.
func parseFilter(c *gin.Context) (models.RecordFilter, error) {
	filter := models.RecordFilter{
		Name: c.Query("name"),
		Area: c.Query("area"),
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.ParseInLocation(filterDateLayout, raw, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q", raw)
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.ParseInLocation(filterDateLayout, raw, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q", raw)
		}
		filter.To = &t
	}

	return filter, nil
}

// List handles GET /api/v1/records. Without filters it shows the trailing
// shift window; with filters it searches the full history.
func (h *RecordHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	rows, err := h.view.VisibleRecords(c.Request.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("computing record view")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"records": rows})
}

type editFieldRequest struct {
	Field models.RecordField `json:"field"`
	Value string             `json:"value"`
}

// EditField handles PATCH /api/v1/records/:uid. It rewrites one timestamp of
// an existing record from a YYYY-MM-DDTHH:MM value.
func (h *RecordHandler) EditField(c *gin.Context) {
	var req editFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	err := h.attendance.EditRecordField(c.Request.Context(), c.Param("uid"), req.Field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("editing record field")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.Status(http.StatusNoContent)
}

type annotateRequest struct {
	Comment string `json:"comment"`
}

// Annotate handles PUT /api/v1/records/:uid/comment. An empty comment clears
// the existing one.
func (h *RecordHandler) Annotate(c *gin.Context) {
	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	err := h.attendance.Annotate(c.Request.Context(), c.Param("uid"), req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
		case isValidationErr(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("annotating record")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/records/:uid.
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.attendance.DeleteRecord(c.Request.Context(), c.Param("uid")); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "record not found")

			return
		}

		h.log.WithError(err).Error("deleting record")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}

// ExportCSV handles GET /api/v1/records/export/csv. The same filters as the
// list endpoint apply, so the download matches what the caller sees.
func (h *RecordHandler) ExportCSV(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		h.log.WithError(err).Error("rendering csv export")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles GET /api/v1/records/export/xlsx.
func (h *RecordHandler) ExportXLSX(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rows); err != nil {
		h.log.WithError(err).Error("rendering xlsx export")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *RecordHandler) exportRows(c *gin.Context) ([]models.ViewRow, bool) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return nil, false
	}

	rows, err := h.view.VisibleRecords(c.Request.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("computing export rows")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return nil, false
	}

	return rows, true
}

func exportFilename(ext string) string {
	return fmt.Sprintf("attendance-%s.%s", time.Now().Format(filterDateLayout), ext)
}
