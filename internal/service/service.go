// Package service implements the business logic of reloj-control: the
// employee directory, the attendance engine, the record view, the shift log
// state machine and the audit trail. Services sit between the API handlers
// and the collection stores.
package service

import (
	"context"
	"time"
)

// Publisher pushes domain events to live subscribers (the WebSocket hub).
// Implementations must not block.
type Publisher interface {
	Publish(eventType string, data any)
}

// Auditor records actions in the audit trail. Satisfied by *AuditService.
type Auditor interface {
	Record(ctx context.Context, action, subject string)
}

// displayTimeLayout is how timestamps are rendered in view rows and audit
// subjects.
const displayTimeLayout = "2006-01-02 15:04"

// nowFunc returns the current time; services hold one so tests can pin the
// clock.
type nowFunc func() time.Time
