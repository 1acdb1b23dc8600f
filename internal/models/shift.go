package models

import (
	"regexp"
	"strings"
	"time"
)

// ShiftType is the operator work period kind.
type ShiftType string

// Shift types.
const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
)

// Valid reports whether t is a known shift type.
func (t ShiftType) Valid() bool {
	return t == ShiftDay || t == ShiftNight
}

// ShiftNote is one incident annotation within a shift.
type ShiftNote struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// SupplierVisit is one visitor/vehicle entry logged during a shift.
type SupplierVisit struct {
	Time       time.Time `json:"time"`
	Plate      string    `json:"plate"`
	Driver     string    `json:"driver"`
	Companions int       `json:"companions"`
	Company    string    `json:"company"`
	Reason     string    `json:"reason"`
}

// Shift is an operator work period. At most one shift is open system-wide;
// closed shifts move to the archive with CloseTime and ClosingRemarks set.
type Shift struct {
	Folio          string          `json:"folio"`
	Date           string          `json:"date"` // YYYY-MM-DD
	Type           ShiftType       `json:"type"`
	Responsible    string          `json:"responsible"`
	Notes          []ShiftNote     `json:"notes"`
	SupplierVisits []SupplierVisit `json:"supplier_visits"`
	CloseTime      *time.Time      `json:"close_time"`
	ClosingRemarks string          `json:"closing_remarks"`
}

// StartShiftRequest is the payload for opening a shift.
type StartShiftRequest struct {
	Type        ShiftType `json:"type"`
	Responsible string    `json:"responsible"`
}

// Validate checks the shift parameters.
func (r *StartShiftRequest) Validate() error {
	r.Responsible = strings.TrimSpace(r.Responsible)

	if !r.Type.Valid() {
		return ErrInvalidShiftType
	}
	if r.Responsible == "" {
		return ErrMissingResponsible
	}
	if len(r.Responsible) > MaxNameLen {
		return ErrFieldTooLong("responsible", MaxNameLen)
	}

	return nil
}

// AddNoteRequest is the payload for logging an incident note.
type AddNoteRequest struct {
	Text string `json:"text"`
}

// Validate checks the note text.
func (r *AddNoteRequest) Validate() error {
	r.Text = strings.TrimSpace(r.Text)

	if r.Text == "" {
		return ErrMissingNoteText
	}
	if len(r.Text) > MaxCommentLen {
		return ErrFieldTooLong("text", MaxCommentLen)
	}

	return nil
}

// plateRe matches the two accepted vehicle plate formats: XX-XX-XX or XXXX-XX.
var plateRe = regexp.MustCompile(`^(?:[A-Z0-9]{2}-[A-Z0-9]{2}-[A-Z0-9]{2}|[A-Z0-9]{4}-[A-Z0-9]{2})$`)

// AddSupplierVisitRequest is the payload for logging a supplier entry.
type AddSupplierVisitRequest struct {
	Plate      string `json:"plate"`
	Driver     string `json:"driver"`
	Companions int    `json:"companions"`
	Company    string `json:"company"`
	Reason     string `json:"reason"`
}

// Validate checks required fields and the plate format. The plate is
// upper-cased before matching, mirroring the capture form.
func (r *AddSupplierVisitRequest) Validate() error {
	r.Plate = strings.ToUpper(strings.TrimSpace(r.Plate))
	r.Driver = strings.TrimSpace(r.Driver)
	r.Company = strings.TrimSpace(r.Company)
	r.Reason = strings.TrimSpace(r.Reason)

	if !plateRe.MatchString(r.Plate) {
		return ErrInvalidPlate
	}
	if r.Driver == "" {
		return ErrMissingName
	}
	if r.Companions < 0 {
		return ErrNegativeCompanions
	}
	if r.Company == "" || r.Reason == "" {
		return ErrMissingNoteText
	}

	return nil
}
