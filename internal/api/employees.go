package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// EmployeeHandler serves roster CRUD endpoints.
type EmployeeHandler struct {
	directory Directory
	log       *logrus.Logger
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(directory Directory, log *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{directory: directory, log: log}
}

// List handles GET /api/v1/employees. An optional ?name= query switches to
// substring search for typeahead.
func (h *EmployeeHandler) List(c *gin.Context) {
	var (
		employees []models.Employee
		err       error
	)

	if query := c.Query("name"); query != "" {
		employees, err = h.directory.FindByName(c.Request.Context(), query)
	} else {
		employees, err = h.directory.List(c.Request.Context())
	}
	if err != nil {
		h.log.WithError(err).Error("listing employees")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// Get handles GET /api/v1/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}

		h.log.WithError(err).Error("getting employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, emp)
}

// NextID handles GET /api/v1/employees/next-id.
func (h *EmployeeHandler) NextID(c *gin.Context) {
	id, err := h.directory.NextSequentialID(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("computing next employee id")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Create handles POST /api/v1/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	emp, err := h.directory.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmployeeID) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "employee with this id already exists")

			return
		}
		if isValidationErr(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("creating employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, emp)
}

// Update handles PUT /api/v1/employees/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}
	req.ID = c.Param("id")

	emp, err := h.directory.Update(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}
		if isValidationErr(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("updating employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, emp)
}

// Delete handles DELETE /api/v1/employees/:id. The employee's attendance
// records are removed with them.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.directory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")

			return
		}

		h.log.WithError(err).Error("deleting employee")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
