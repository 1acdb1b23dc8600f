package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zer0x25/reloj-control/internal/models"
)

func newAttendanceFixture(records *fakeRecords, roster *fakeRoster, now time.Time) (*AttendanceService, *fakeAuditor, *fakePublisher) {
	audit := &fakeAuditor{}
	events := &fakePublisher{}
	svc := NewAttendanceService(records, roster, audit, events, testLogger())
	svc.now = fixedNow(now)

	return svc, audit, events
}

func TestRegisterEventFullDay(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{{ID: "0001", Name: "Maria Soto"}}}
	records := &fakeRecords{}

	morning := mustParse(models.EditDateTimeLayout, "2024-03-11T09:00")
	svc, audit, events := newAttendanceFixture(records, roster, morning)

	rec, err := svc.RegisterEvent(context.Background(), "0001", models.EventEntry)
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if rec.UID == "" {
		t.Error("expected a generated uid")
	}
	if !rec.Open() {
		t.Error("fresh record should be open")
	}

	evening := mustParse(models.EditDateTimeLayout, "2024-03-11T17:30")
	svc.now = fixedNow(evening)

	closed, err := svc.RegisterEvent(context.Background(), "0001", models.EventExit)
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if closed.UID != rec.UID {
		t.Errorf("exit closed record %s, want %s", closed.UID, rec.UID)
	}
	if closed.Exit == nil || !closed.Exit.Equal(evening) {
		t.Errorf("exit = %v, want %v", closed.Exit, evening)
	}

	wantActions := []string{"record.clock_in", "record.clock_out"}
	for i, want := range wantActions {
		if audit.actions[i] != want {
			t.Errorf("audit[%d] = %q, want %q", i, audit.actions[i], want)
		}
	}
	if len(events.events) != 2 {
		t.Errorf("published %d events, want 2", len(events.events))
	}
}

func TestRegisterEntryRejectedWhileOpen(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{{ID: "0001", Name: "Maria Soto"}}}
	yesterday := mustParse(models.EditDateTimeLayout, "2024-03-10T22:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Entry: tp(yesterday)},
	}}

	now := mustParse(models.EditDateTimeLayout, "2024-03-11T08:00")
	svc, _, _ := newAttendanceFixture(records, roster, now)

	_, err := svc.RegisterEvent(context.Background(), "0001", models.EventEntry)
	if !errors.Is(err, models.ErrAlreadyClockedIn) {
		t.Fatalf("err = %v, want ErrAlreadyClockedIn", err)
	}
	if len(records.records) != 1 {
		t.Errorf("records mutated on rejected entry: %d", len(records.records))
	}
}

func TestRegisterEntryTooSoonAfterPrevious(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{{ID: "0001", Name: "Maria Soto"}}}
	entry := mustParse(models.EditDateTimeLayout, "2024-03-11T09:00")
	exit := entry.Add(time.Minute)
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Entry: tp(entry), Exit: tp(exit)},
	}}

	svc, _, _ := newAttendanceFixture(records, roster, entry.Add(2*time.Minute))

	_, err := svc.RegisterEvent(context.Background(), "0001", models.EventEntry)
	if !errors.Is(err, models.ErrEntryTooSoon) {
		t.Fatalf("err = %v, want ErrEntryTooSoon", err)
	}

	// At exactly the interval boundary the entry is accepted.
	svc.now = fixedNow(entry.Add(minReEntryInterval))
	if _, err := svc.RegisterEvent(context.Background(), "0001", models.EventEntry); err != nil {
		t.Fatalf("entry at interval boundary: %v", err)
	}
}

func TestRegisterExitWithoutOpenEntry(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{{ID: "0001", Name: "Maria Soto"}}}
	records := &fakeRecords{}

	svc, _, _ := newAttendanceFixture(records, roster, time.Now())

	_, err := svc.RegisterEvent(context.Background(), "0001", models.EventExit)
	if !errors.Is(err, models.ErrNoOpenEntry) {
		t.Fatalf("err = %v, want ErrNoOpenEntry", err)
	}
}

func TestRegisterExitClosesCrossMidnightRecord(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{{ID: "0001", Name: "Maria Soto"}}}
	nightEntry := mustParse(models.EditDateTimeLayout, "2024-03-10T22:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Entry: tp(nightEntry)},
	}}

	after := mustParse(models.EditDateTimeLayout, "2024-03-11T06:00")
	svc, _, _ := newAttendanceFixture(records, roster, after)

	rec, err := svc.RegisterEvent(context.Background(), "0001", models.EventExit)
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if rec.UID != "r1" {
		t.Errorf("closed %s, want r1", rec.UID)
	}
	if rec.Exit == nil || !rec.Exit.Equal(after) {
		t.Errorf("exit = %v, want %v", rec.Exit, after)
	}
}

func TestRegisterEventUnknownEmployee(t *testing.T) {
	svc, _, _ := newAttendanceFixture(&fakeRecords{}, &fakeRoster{}, time.Now())

	_, err := svc.RegisterEvent(context.Background(), "nope", models.EventEntry)
	if !errors.Is(err, models.ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestFindOpenRecord(t *testing.T) {
	entry := mustParse(models.EditDateTimeLayout, "2024-03-11T09:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Entry: tp(entry.Add(-24 * time.Hour)), Exit: tp(entry.Add(-16 * time.Hour))},
		{UID: "r2", EmployeeID: "0001", Entry: tp(entry)},
		{UID: "r3", EmployeeID: "0002", Entry: tp(entry)},
	}}
	svc, _, _ := newAttendanceFixture(records, &fakeRoster{}, time.Now())

	rec, err := svc.FindOpenRecord(context.Background(), "0001")
	if err != nil {
		t.Fatalf("FindOpenRecord: %v", err)
	}
	if rec == nil || rec.UID != "r2" {
		t.Fatalf("got %+v, want r2", rec)
	}

	none, err := svc.FindOpenRecord(context.Background(), "0003")
	if err != nil {
		t.Fatalf("FindOpenRecord: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for employee with no open record, got %+v", none)
	}
}

func TestEditRecordField(t *testing.T) {
	entry := mustParse(models.EditDateTimeLayout, "2024-03-11T09:00")
	exit := mustParse(models.EditDateTimeLayout, "2024-03-11T17:00")

	tests := []struct {
		name    string
		uid     string
		field   models.RecordField
		value   string
		wantErr error
	}{
		{"edit entry", "r1", models.FieldEntry, "2024-03-11T08:30", nil},
		{"edit exit", "r1", models.FieldExit, "2024-03-11T18:00", nil},
		{"entry after exit", "r1", models.FieldEntry, "2024-03-11T19:00", models.ErrTimeOrder},
		{"exit before entry", "r1", models.FieldExit, "2024-03-11T08:00", models.ErrTimeOrder},
		{"bad format", "r1", models.FieldEntry, "11/03/2024 09:00", models.ErrInvalidDateTime},
		{"missing record", "zz", models.FieldEntry, "2024-03-11T08:30", models.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &fakeRecords{records: []models.AttendanceRecord{
				{UID: "r1", EmployeeID: "0001", Entry: tp(entry), Exit: tp(exit)},
			}}
			svc, _, _ := newAttendanceFixture(records, &fakeRoster{}, time.Now())

			err := svc.EditRecordField(context.Background(), tt.uid, tt.field, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}

				return
			}
			if err != nil {
				t.Fatalf("EditRecordField: %v", err)
			}

			want := mustParse(models.EditDateTimeLayout, tt.value)
			got := records.records[0].Entry
			if tt.field == models.FieldExit {
				got = records.records[0].Exit
			}
			if got == nil || !got.Equal(want) {
				t.Errorf("field = %v, want %v", got, want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Comment: "old"},
	}}
	svc, audit, _ := newAttendanceFixture(records, &fakeRoster{}, time.Now())

	if err := svc.Annotate(context.Background(), "r1", "forgot badge"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if records.records[0].Comment != "forgot badge" {
		t.Errorf("comment = %q", records.records[0].Comment)
	}

	// Empty comment clears.
	if err := svc.Annotate(context.Background(), "r1", ""); err != nil {
		t.Fatalf("Annotate empty: %v", err)
	}
	if records.records[0].Comment != "" {
		t.Errorf("comment not cleared: %q", records.records[0].Comment)
	}

	if err := svc.Annotate(context.Background(), "zz", "x"); !errors.Is(err, models.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
	if len(audit.actions) != 2 {
		t.Errorf("audit actions = %d, want 2", len(audit.actions))
	}
}

func TestDeleteRecord(t *testing.T) {
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001"},
		{UID: "r2", EmployeeID: "0002"},
	}}
	svc, _, events := newAttendanceFixture(records, &fakeRoster{}, time.Now())

	if err := svc.DeleteRecord(context.Background(), "r1"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if len(records.records) != 1 || records.records[0].UID != "r2" {
		t.Errorf("remaining = %+v", records.records)
	}
	if len(events.events) != 1 || events.events[0] != "record.deleted" {
		t.Errorf("events = %v", events.events)
	}

	if err := svc.DeleteRecord(context.Background(), "r1"); !errors.Is(err, models.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}
