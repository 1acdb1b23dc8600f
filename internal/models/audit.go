package models

import "time"

// AuditEntry is one line of the append-only action history. Subject carries
// free-form context about the affected entity (name, id, times).
type AuditEntry struct {
	Time    time.Time `json:"time"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
}
