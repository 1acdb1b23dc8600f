package client

import (
	"context"
	"net/url"
)

// EmployeeService handles roster operations.
type EmployeeService struct {
	c *Client
}

// employeeListResponse wraps the employee list response.
type employeeListResponse struct {
	Employees []Employee `json:"employees"`
}

// List returns the full roster, or the subset whose names contain nameQuery
// when it is non-empty.
func (s *EmployeeService) List(ctx context.Context, nameQuery string) ([]Employee, error) {
	params := url.Values{}
	if nameQuery != "" {
		params.Set("name", nameQuery)
	}
	var resp employeeListResponse
	if err := s.c.get(ctx, "/api/v1/employees", params, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// Get returns a single employee by ID.
func (s *EmployeeService) Get(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	if err := s.c.get(ctx, "/api/v1/employees/"+url.PathEscape(id), nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// NextID returns the next free sequential employee ID.
func (s *EmployeeService) NextID(ctx context.Context) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := s.c.get(ctx, "/api/v1/employees/next-id", nil, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Create adds a new employee. Requires the admin PIN.
func (s *EmployeeService) Create(ctx context.Context, req *EmployeeRequest) (*Employee, error) {
	var emp Employee
	if err := s.c.post(ctx, "/api/v1/employees", req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Update rewrites an existing employee. Requires the admin PIN.
func (s *EmployeeService) Update(ctx context.Context, id string, req *EmployeeRequest) (*Employee, error) {
	var emp Employee
	if err := s.c.put(ctx, "/api/v1/employees/"+url.PathEscape(id), req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Delete removes an employee and their attendance records. Requires the
// admin PIN.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/employees/"+url.PathEscape(id))
}
