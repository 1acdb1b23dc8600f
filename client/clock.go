package client

import (
	"context"
	"net/url"
)

// ClockService handles clock in/out operations.
type ClockService struct {
	c *Client
}

type clockRequest struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
}

// In registers an entry event for the employee.
func (s *ClockService) In(ctx context.Context, employeeID string) (*AttendanceRecord, error) {
	return s.clock(ctx, employeeID, "entry")
}

// Out registers an exit event, closing the employee's open record.
func (s *ClockService) Out(ctx context.Context, employeeID string) (*AttendanceRecord, error) {
	return s.clock(ctx, employeeID, "exit")
}

func (s *ClockService) clock(ctx context.Context, employeeID, kind string) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := s.c.post(ctx, "/api/v1/clock", clockRequest{EmployeeID: employeeID, Kind: kind}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// OpenRecord returns the employee's open attendance record, or a not-found
// error when they are clocked out.
func (s *ClockService) OpenRecord(ctx context.Context, employeeID string) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	if err := s.c.get(ctx, "/api/v1/clock/open/"+url.PathEscape(employeeID), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
