package models

import "time"

// EditDateTimeLayout is the wire format for retroactive record edits,
// matching an HTML datetime-local input.
const EditDateTimeLayout = "2006-01-02T15:04"

// EventKind distinguishes the two clock actions.
type EventKind string

// Clock event kinds.
const (
	EventEntry EventKind = "entry"
	EventExit  EventKind = "exit"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == EventEntry || k == EventExit
}

// AttendanceRecord is one attendance period for an employee. A record with
// Entry set and Exit unset is "open"; the engine guarantees at most one open
// record per employee.
type AttendanceRecord struct {
	UID        string     `json:"uid"`
	EmployeeID string     `json:"employee_id"`
	Entry      *time.Time `json:"entry_at"`
	Exit       *time.Time `json:"exit_at"`
	Comment    string     `json:"comment"`
}

// Open reports whether the record has an entry but no exit yet.
func (r *AttendanceRecord) Open() bool {
	return r.Entry != nil && r.Exit == nil
}

// RecordField names an editable timestamp field of an attendance record.
type RecordField string

// Editable record fields.
const (
	FieldEntry RecordField = "entry"
	FieldExit  RecordField = "exit"
)

// Valid reports whether f is an editable field.
func (f RecordField) Valid() bool {
	return f == FieldEntry || f == FieldExit
}

// RecordFilter narrows the visible record set. Zero values mean "no filter";
// when every field is zero the view applies its default recent-window policy.
type RecordFilter struct {
	Name string
	Area string
	From *time.Time
	To   *time.Time
}

// Empty reports whether no filter field is set.
func (f RecordFilter) Empty() bool {
	return f.Name == "" && f.Area == "" && f.From == nil && f.To == nil
}

// ViewRow is one rendered line of the attendance table. Entry and Exit carry
// display strings ("N/A" for a missing entry, "Pending" for a missing exit).
type ViewRow struct {
	UID     string `json:"uid"`
	Area    string `json:"area"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Entry   string `json:"entry"`
	Exit    string `json:"exit"`
	Comment string `json:"comment"`
}
