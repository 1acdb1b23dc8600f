package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/metrics"
	"github.com/Zer0x25/reloj-control/internal/models"
)

// minReEntryInterval rejects a fresh entry this soon after the employee's
// previous entry, suppressing accidental double-taps at the clock.
const minReEntryInterval = 3 * time.Minute

// AttendanceService validates and records clock events and owns the
// attendance record lifecycle. The single-open-record-per-employee invariant
// is enforced here, not by the storage layer.
type AttendanceService struct {
	records   RecordCollection
	employees EmployeeRoster
	audit     Auditor
	events    Publisher
	log       *logrus.Logger
	now       nowFunc
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(records RecordCollection, employees EmployeeRoster, audit Auditor, events Publisher, log *logrus.Logger) *AttendanceService {
	return &AttendanceService{
		records:   records,
		employees: employees,
		audit:     audit,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// RegisterEvent records a clock entry or exit for the employee at the
// current time. Entries fail while any open record exists for the employee
// and within minReEntryInterval of their previous entry. Exits close the
// most recent open record, even one spanning midnight.
func (s *AttendanceService) RegisterEvent(ctx context.Context, employeeID string, kind models.EventKind) (*models.AttendanceRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}

	emp, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if kind == models.EventEntry {
		return s.registerEntry(ctx, records, emp, now)
	}

	return s.registerExit(ctx, records, emp, now)
}

func (s *AttendanceService) registerEntry(ctx context.Context, records []models.AttendanceRecord, emp *models.Employee, now time.Time) (*models.AttendanceRecord, error) {
	if open := openRecord(records, emp.ID); open != nil {
		return nil, models.ErrAlreadyClockedIn
	}

	if last := latestEntry(records, emp.ID); last != nil && now.Sub(*last) < minReEntryInterval {
		return nil, models.ErrEntryTooSoon
	}

	rec := models.AttendanceRecord{
		UID:        uuid.NewString(),
		EmployeeID: emp.ID,
		Entry:      &now,
	}
	records = append(records, rec)

	if err := s.records.Save(ctx, records); err != nil {
		return nil, err
	}

	metrics.ClockEventsTotal.WithLabelValues("entry").Inc()
	s.audit.Record(ctx, "record.clock_in", fmt.Sprintf("%s (%s) at %s", emp.Name, emp.ID, now.Format(displayTimeLayout)))
	s.publish("record.clock_in", rec)

	return &rec, nil
}

func (s *AttendanceService) registerExit(ctx context.Context, records []models.AttendanceRecord, emp *models.Employee, now time.Time) (*models.AttendanceRecord, error) {
	open := openRecord(records, emp.ID)
	if open == nil {
		return nil, models.ErrNoOpenEntry
	}
	if open.Exit != nil {
		return nil, models.ErrExitAlreadyRecorded
	}

	open.Exit = &now

	if err := s.records.Save(ctx, records); err != nil {
		return nil, err
	}

	metrics.ClockEventsTotal.WithLabelValues("exit").Inc()
	s.audit.Record(ctx, "record.clock_out", fmt.Sprintf("%s (%s) at %s", emp.Name, emp.ID, now.Format(displayTimeLayout)))
	s.publish("record.clock_out", *open)

	return open, nil
}

// FindOpenRecord returns the employee's open record (entry set, exit unset)
// with the latest entry time, or nil when none exists.
func (s *AttendanceService) FindOpenRecord(ctx context.Context, employeeID string) (*models.AttendanceRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	open := openRecord(records, employeeID)
	if open == nil {
		return nil, nil
	}

	rec := *open

	return &rec, nil
}

// EditRecordField retroactively overwrites the entry or exit timestamp of a
// record. Edits that would leave the entry after the exit are rejected.
func (s *AttendanceService) EditRecordField(ctx context.Context, uid string, field models.RecordField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown record field %q", field)
	}

	t, err := time.ParseInLocation(models.EditDateTimeLayout, value, time.Local)
	if err != nil {
		return models.ErrInvalidDateTime
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return err
	}

	rec := findByUID(records, uid)
	if rec == nil {
		return models.ErrRecordNotFound
	}

	switch field {
	case models.FieldEntry:
		if rec.Exit != nil && t.After(*rec.Exit) {
			return models.ErrTimeOrder
		}
		rec.Entry = &t
	case models.FieldExit:
		if rec.Entry != nil && t.Before(*rec.Entry) {
			return models.ErrTimeOrder
		}
		rec.Exit = &t
	}

	if err := s.records.Save(ctx, records); err != nil {
		return err
	}

	s.audit.Record(ctx, "record.edit_"+string(field), fmt.Sprintf("record %s set to %s", uid, t.Format(displayTimeLayout)))
	s.publish("record.edited", *rec)

	return nil
}

// Annotate sets the record's comment. Any string is accepted, including the
// empty string, so re-saving an unchanged comment is idempotent. Prompt-side
// validation of empty input belongs to the caller.
func (s *AttendanceService) Annotate(ctx context.Context, uid, comment string) error {
	if len(comment) > models.MaxCommentLen {
		return models.ErrFieldTooLong("comment", models.MaxCommentLen)
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return err
	}

	rec := findByUID(records, uid)
	if rec == nil {
		return models.ErrRecordNotFound
	}

	rec.Comment = comment

	if err := s.records.Save(ctx, records); err != nil {
		return err
	}

	s.audit.Record(ctx, "record.annotate", fmt.Sprintf("record %s of %s", uid, rec.EmployeeID))

	return nil
}

// DeleteRecord removes a record by uid.
func (s *AttendanceService) DeleteRecord(ctx context.Context, uid string) error {
	records, err := s.records.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.AttendanceRecord, 0, len(records))
	var deleted *models.AttendanceRecord
	for i := range records {
		if records[i].UID == uid {
			rec := records[i]
			deleted = &rec
			continue
		}
		remaining = append(remaining, records[i])
	}

	if deleted == nil {
		return models.ErrRecordNotFound
	}

	if err := s.records.Save(ctx, remaining); err != nil {
		return err
	}

	s.audit.Record(ctx, "record.delete", fmt.Sprintf("record %s of %s", uid, deleted.EmployeeID))
	s.publish("record.deleted", *deleted)

	return nil
}

func (s *AttendanceService) lookupEmployee(ctx context.Context, id string) (*models.Employee, error) {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range roster {
		if roster[i].ID == id {
			return &roster[i], nil
		}
	}

	return nil, models.ErrEmployeeNotFound
}

func (s *AttendanceService) publish(eventType string, data any) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}

// openRecord returns a pointer into records to the employee's open record
// with the latest entry time, or nil.
func openRecord(records []models.AttendanceRecord, employeeID string) *models.AttendanceRecord {
	var open *models.AttendanceRecord
	for i := range records {
		rec := &records[i]
		if rec.EmployeeID != employeeID || !rec.Open() {
			continue
		}
		if open == nil || rec.Entry.After(*open.Entry) {
			open = rec
		}
	}

	return open
}

// latestEntry returns the employee's most recent entry timestamp across all
// records, or nil for an employee with no records.
func latestEntry(records []models.AttendanceRecord, employeeID string) *time.Time {
	var latest *time.Time
	for i := range records {
		rec := &records[i]
		if rec.EmployeeID != employeeID || rec.Entry == nil {
			continue
		}
		if latest == nil || rec.Entry.After(*latest) {
			latest = rec.Entry
		}
	}

	return latest
}

func findByUID(records []models.AttendanceRecord, uid string) *models.AttendanceRecord {
	for i := range records {
		if records[i].UID == uid {
			return &records[i]
		}
	}

	return nil
}
