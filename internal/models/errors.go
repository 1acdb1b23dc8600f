package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingEmployeeID  = errors.New("employee id is required")
	ErrMissingName        = errors.New("name is required")
	ErrMissingResponsible = errors.New("responsible is required")
	ErrInvalidShiftType   = errors.New("shift type must be day or night")
	ErrInvalidDateTime    = errors.New("datetime must be in YYYY-MM-DDTHH:MM format")
	ErrInvalidPlate       = errors.New("plate must match XX-XX-XX or XXXX-XX")
	ErrNegativeCompanions = errors.New("companions must be zero or greater")
	ErrMissingNoteText    = errors.New("note text is required")
	ErrTimeOrder          = errors.New("entry time must not be after exit time")
)

// Sentinel errors for entity lookups.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrShiftNotFound    = errors.New("shift not found")
)

// Sentinel errors for state conflicts. These map to HTTP 409.
var (
	ErrDuplicateEmployeeID = errors.New("employee id already in use")
	ErrAlreadyClockedIn    = errors.New("employee already has an open entry")
	ErrNoOpenEntry         = errors.New("employee has no open entry to close")
	ErrExitAlreadyRecorded = errors.New("exit already recorded for this entry")
	ErrEntryTooSoon        = errors.New("entry rejected: too soon after previous entry")
	ErrShiftAlreadyOpen    = errors.New("a shift is already open")
	ErrNoOpenShift         = errors.New("no shift is currently open")
)

// ErrValueTooLong is the sentinel wrapped by ErrFieldTooLong.
var ErrValueTooLong = errors.New("value too long")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d: %w", field, maxLen, ErrValueTooLong)
}
