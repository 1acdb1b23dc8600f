package store

import (
	"context"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// EmployeeStore persists the employee roster as one blob.
type EmployeeStore struct {
	Base
}

// NewEmployeeStore creates an EmployeeStore.
func NewEmployeeStore(base Base) *EmployeeStore {
	return &EmployeeStore{Base: base}
}

// List returns all employees in stored order.
func (s *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.loadSlice(ctx, keyEmployees, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// Save replaces the whole roster.
func (s *EmployeeStore) Save(ctx context.Context, employees []models.Employee) error {
	if employees == nil {
		employees = []models.Employee{}
	}

	return s.saveJSON(ctx, keyEmployees, employees)
}
