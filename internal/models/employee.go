// Package models defines the entities persisted by the reloj-control service
// and the request/response types exchanged with the API.
package models

import "strings"

// Field length limits enforced at validation time.
const (
	MaxIDLen      = 64
	MaxNameLen    = 255
	MaxTitleLen   = 255
	MaxAreaLen    = 255
	MaxCommentLen = 2000
)

// Employee is a roster entry. IDs are user-assigned or sequentially
// generated, unique at creation time.
type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Area  string `json:"area"`
}

// CreateEmployeeRequest is the payload for creating or updating an employee.
type CreateEmployeeRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Area  string `json:"area"`
}

// Validate checks required fields and length limits.
func (r *CreateEmployeeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Title = strings.TrimSpace(r.Title)
	r.Area = strings.TrimSpace(r.Area)

	if r.ID == "" {
		return ErrMissingEmployeeID
	}
	if len(r.ID) > MaxIDLen {
		return ErrFieldTooLong("id", MaxIDLen)
	}
	if r.Name == "" {
		return ErrMissingName
	}
	if len(r.Name) > MaxNameLen {
		return ErrFieldTooLong("name", MaxNameLen)
	}
	if len(r.Title) > MaxTitleLen {
		return ErrFieldTooLong("title", MaxTitleLen)
	}
	if len(r.Area) > MaxAreaLen {
		return ErrFieldTooLong("area", MaxAreaLen)
	}

	return nil
}
