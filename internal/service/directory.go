package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// EmployeeRoster is the store interface the directory depends on.
type EmployeeRoster interface {
	List(ctx context.Context) ([]models.Employee, error)
	Save(ctx context.Context, employees []models.Employee) error
}

// RecordCollection is the record-store interface shared by the directory
// (cascade deletes) and the attendance engine.
type RecordCollection interface {
	List(ctx context.Context) ([]models.AttendanceRecord, error)
	Save(ctx context.Context, records []models.AttendanceRecord) error
}

// DirectoryService manages the employee roster. Deleting an employee
// cascades to their attendance records so no dangling references survive.
type DirectoryService struct {
	employees EmployeeRoster
	records   RecordCollection
	audit     Auditor
	log       *logrus.Logger
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(employees EmployeeRoster, records RecordCollection, audit Auditor, log *logrus.Logger) *DirectoryService {
	return &DirectoryService{employees: employees, records: records, audit: audit, log: log}
}

// List returns the whole roster.
func (s *DirectoryService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employees.List(ctx)
}

// Get returns one employee by id.
func (s *DirectoryService) Get(ctx context.Context, id string) (*models.Employee, error) {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roster {
		if roster[i].ID == id {
			return &roster[i], nil
		}
	}

	return nil, models.ErrEmployeeNotFound
}

// Create adds a new employee. The id must not collide with an existing one.
func (s *DirectoryService) Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roster {
		if roster[i].ID == req.ID {
			return nil, models.ErrDuplicateEmployeeID
		}
	}

	emp := models.Employee{ID: req.ID, Name: req.Name, Title: req.Title, Area: req.Area}
	roster = append(roster, emp)

	if err := s.employees.Save(ctx, roster); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "employee.create", fmt.Sprintf("%s (%s)", emp.Name, emp.ID))

	return &emp, nil
}

// Update overwrites an existing employee's fields.
func (s *DirectoryService) Update(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roster {
		if roster[i].ID != req.ID {
			continue
		}

		roster[i].Name = req.Name
		roster[i].Title = req.Title
		roster[i].Area = req.Area

		if err := s.employees.Save(ctx, roster); err != nil {
			return nil, err
		}

		s.audit.Record(ctx, "employee.update", fmt.Sprintf("%s (%s)", req.Name, req.ID))

		return &roster[i], nil
	}

	return nil, models.ErrEmployeeNotFound
}

// Delete removes an employee and every attendance record referencing them.
func (s *DirectoryService) Delete(ctx context.Context, id string) error {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Employee, 0, len(roster))
	var removed *models.Employee
	for i := range roster {
		if roster[i].ID == id {
			emp := roster[i]
			removed = &emp
			continue
		}
		kept = append(kept, roster[i])
	}

	if removed == nil {
		return models.ErrEmployeeNotFound
	}

	if err := s.employees.Save(ctx, kept); err != nil {
		return err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return err
	}

	remaining := records[:0]
	for _, rec := range records {
		if rec.EmployeeID != id {
			remaining = append(remaining, rec)
		}
	}

	if dropped := len(records) - len(remaining); dropped > 0 {
		if err := s.records.Save(ctx, remaining); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"employee_id": id, "records": dropped}).Info("cascade-deleted attendance records")
	}

	s.audit.Record(ctx, "employee.delete", fmt.Sprintf("%s (%s)", removed.Name, removed.ID))

	return nil
}

// FindByName returns employees whose name contains the query,
// case-insensitively, for typeahead.
func (s *DirectoryService) FindByName(ctx context.Context, query string) ([]models.Employee, error) {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.Employee{}, nil
	}

	matches := make([]models.Employee, 0)
	for _, emp := range roster {
		if strings.Contains(strings.ToLower(emp.Name), query) {
			matches = append(matches, emp)
		}
	}

	return matches, nil
}

// seqIDWidth is the zero-padding width of generated employee ids.
const seqIDWidth = 4

// NextSequentialID returns the zero-padded successor of the highest numeric
// employee id. Non-numeric ids are ignored for the max computation.
func (s *DirectoryService) NextSequentialID(ctx context.Context) (string, error) {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return "", err
	}

	maxID := 0
	for _, emp := range roster {
		if n, err := strconv.Atoi(emp.ID); err == nil && n > maxID {
			maxID = n
		}
	}

	return fmt.Sprintf("%0*d", seqIDWidth, maxID+1), nil
}
