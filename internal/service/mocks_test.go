package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// fakeRoster is an in-memory EmployeeRoster.
type fakeRoster struct {
	employees []models.Employee
	listErr   error
	saveErr   error
}

func (f *fakeRoster) List(_ context.Context) ([]models.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]models.Employee(nil), f.employees...), nil
}

func (f *fakeRoster) Save(_ context.Context, employees []models.Employee) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.employees = append([]models.Employee(nil), employees...)

	return nil
}

// fakeRecords is an in-memory RecordCollection.
type fakeRecords struct {
	records []models.AttendanceRecord
	listErr error
	saveErr error
}

func (f *fakeRecords) List(_ context.Context) ([]models.AttendanceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]models.AttendanceRecord(nil), f.records...), nil
}

func (f *fakeRecords) Save(_ context.Context, records []models.AttendanceRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append([]models.AttendanceRecord(nil), records...)

	return nil
}

// fakeAuditor records actions in memory.
type fakeAuditor struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAuditor) Record(_ context.Context, action, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

// fakePublisher collects published event types.
type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) Publish(eventType string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventType)
}

// fakeShiftSlot is an in-memory ShiftSlot.
type fakeShiftSlot struct {
	open     *models.Shift
	archived []models.Shift
}

func (f *fakeShiftSlot) GetOpen(_ context.Context) (*models.Shift, error) {
	if f.open == nil {
		return nil, nil
	}
	shift := *f.open

	return &shift, nil
}

func (f *fakeShiftSlot) SaveOpen(_ context.Context, shift *models.Shift) error {
	s := *shift
	f.open = &s

	return nil
}

func (f *fakeShiftSlot) ClearOpen(_ context.Context) error {
	f.open = nil

	return nil
}

func (f *fakeShiftSlot) ListArchived(_ context.Context) ([]models.Shift, error) {
	return append([]models.Shift(nil), f.archived...), nil
}

func (f *fakeShiftSlot) Archive(_ context.Context, shift models.Shift) error {
	f.archived = append(f.archived, shift)

	return nil
}

// fakeAuditStore is an in-memory AuditAppender.
type fakeAuditStore struct {
	entries   []models.AuditEntry
	appendErr error
}

func (f *fakeAuditStore) Append(_ context.Context, entry models.AuditEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)

	return nil
}

func (f *fakeAuditStore) List(_ context.Context) ([]models.AuditEntry, error) {
	return append([]models.AuditEntry(nil), f.entries...), nil
}

func (f *fakeAuditStore) Clear(_ context.Context) error {
	f.entries = nil

	return nil
}

func fixedNow(t time.Time) nowFunc {
	return func() time.Time { return t }
}

func mustParse(layout, value string) time.Time {
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		panic(err)
	}

	return t
}

func tp(t time.Time) *time.Time { return &t }
