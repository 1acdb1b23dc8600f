package client

import "time"

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Storage       string  `json:"storage"`
	Backend       string  `json:"backend"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Employee is a roster entry.
type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Area  string `json:"area"`
}

// EmployeeRequest is the payload for creating or updating an employee.
type EmployeeRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Area  string `json:"area"`
}

// AttendanceRecord is one attendance period. A nil ExitAt means the record is
// still open.
type AttendanceRecord struct {
	UID        string     `json:"uid"`
	EmployeeID string     `json:"employee_id"`
	EntryAt    *time.Time `json:"entry_at"`
	ExitAt     *time.Time `json:"exit_at"`
	Comment    string     `json:"comment"`
}

// ViewRow is one rendered line of the attendance table. Entry and Exit are
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

// RecordFilter narrows the attendance table. Zero values mean "no filter".
// From and To use YYYY-MM-DD.
type RecordFilter struct {
	Name string
	Area string
	From string
	To   string
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

// Shift is an operator work period.
type Shift struct {
	Folio          string          `json:"folio"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Responsible    string          `json:"responsible"`
	Notes          []ShiftNote     `json:"notes"`
	SupplierVisits []SupplierVisit `json:"supplier_visits"`
	CloseTime      *time.Time      `json:"close_time"`
	ClosingRemarks string          `json:"closing_remarks"`
}

// StartShiftRequest is the payload for opening a shift.
type StartShiftRequest struct {
	Type        string `json:"type"`
	Responsible string `json:"responsible"`
}

// SupplierVisitRequest is the payload for logging a supplier entry.
type SupplierVisitRequest struct {
	Plate      string `json:"plate"`
	Driver     string `json:"driver"`
	Companions int    `json:"companions"`
	Company    string `json:"company"`
	Reason     string `json:"reason"`
}

// AuditEntry is one line of the action history.
type AuditEntry struct {
	Time    time.Time `json:"time"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
}
