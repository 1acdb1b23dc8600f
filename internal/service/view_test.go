package service

import (
	"context"
	"testing"
	"time"

	"github.com/Zer0x25/reloj-control/internal/models"
)

func newViewFixture(records *fakeRecords, roster *fakeRoster, now time.Time) *ViewService {
	svc := NewViewService(records, roster, testLogger())
	svc.now = fixedNow(now)

	return svc
}

func TestVisibleRecordsDefaultWindow(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{
		{ID: "0001", Name: "Maria Soto", Area: "Porteria"},
	}}

	now := mustParse(models.EditDateTimeLayout, "2024-01-01T10:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "old", EmployeeID: "0001", Entry: tp(mustParse(models.EditDateTimeLayout, "2023-12-31T08:00"))},
		{UID: "recent", EmployeeID: "0001", Entry: tp(mustParse(models.EditDateTimeLayout, "2024-01-01T09:00"))},
	}}

	svc := newViewFixture(records, roster, now)

	rows, err := svc.VisibleRecords(context.Background(), models.RecordFilter{})
	if err != nil {
		t.Fatalf("VisibleRecords: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].UID != "recent" {
		t.Errorf("row = %q, want recent", rows[0].UID)
	}
	if rows[0].Exit != "Pending" {
		t.Errorf("exit display = %q, want Pending", rows[0].Exit)
	}
}

func TestVisibleRecordsDateRangeInclusive(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{
		{ID: "0001", Name: "Maria Soto", Area: "Porteria"},
	}}

	lastOfDay := mustParse("2006-01-02 15:04:05", "2024-01-01 23:59:59")
	nextDay := mustParse("2006-01-02 15:04:05", "2024-01-02 00:00:01")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "in-range", EmployeeID: "0001", Entry: tp(lastOfDay)},
		{UID: "out-of-range", EmployeeID: "0001", Entry: tp(nextDay)},
	}}

	svc := newViewFixture(records, roster, time.Now())

	to := mustParse("2006-01-02", "2024-01-01")
	rows, err := svc.VisibleRecords(context.Background(), models.RecordFilter{To: tp(to)})
	if err != nil {
		t.Fatalf("VisibleRecords: %v", err)
	}
	if len(rows) != 1 || rows[0].UID != "in-range" {
		t.Fatalf("rows = %+v, want only in-range", rows)
	}
}

func TestVisibleRecordsFilters(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{
		{ID: "0001", Name: "Maria Soto", Area: "Porteria"},
		{ID: "0002", Name: "Juan Perez", Area: "Bodega"},
	}}
	entry := mustParse(models.EditDateTimeLayout, "2024-01-01T09:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "r1", EmployeeID: "0001", Entry: tp(entry)},
		{UID: "r2", EmployeeID: "0002", Entry: tp(entry)},
	}}

	svc := newViewFixture(records, roster, time.Now())

	tests := []struct {
		name   string
		filter models.RecordFilter
		want   []string
	}{
		{"name substring ci", models.RecordFilter{Name: "SOTO"}, []string{"r1"}},
		{"area substring ci", models.RecordFilter{Area: "bode"}, []string{"r2"}},
		{"no match", models.RecordFilter{Name: "nadie"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.VisibleRecords(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("VisibleRecords: %v", err)
			}
			if len(rows) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.want))
			}
			for i, uid := range tt.want {
				if rows[i].UID != uid {
					t.Errorf("row[%d] = %q, want %q", i, rows[i].UID, uid)
				}
			}
		})
	}
}

func TestVisibleRecordsExcludesDanglingEmployees(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{
		{ID: "0001", Name: "Maria Soto"},
	}}
	entry := mustParse(models.EditDateTimeLayout, "2024-01-01T09:00")
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "kept", EmployeeID: "0001", Entry: tp(entry)},
		{UID: "orphan", EmployeeID: "gone", Entry: tp(entry)},
	}}

	svc := newViewFixture(records, roster, time.Now())

	rows, err := svc.VisibleRecords(context.Background(), models.RecordFilter{Name: "soto"})
	if err != nil {
		t.Fatalf("VisibleRecords: %v", err)
	}
	if len(rows) != 1 || rows[0].UID != "kept" {
		t.Fatalf("rows = %+v, want only kept", rows)
	}
}

func TestVisibleRecordsSortDescending(t *testing.T) {
	roster := &fakeRoster{employees: []models.Employee{
		{ID: "0001", Name: "Maria Soto"},
	}}
	records := &fakeRecords{records: []models.AttendanceRecord{
		{UID: "early", EmployeeID: "0001", Entry: tp(mustParse(models.EditDateTimeLayout, "2024-01-01T08:00"))},
		{UID: "late", EmployeeID: "0001", Entry: tp(mustParse(models.EditDateTimeLayout, "2024-01-01T12:00"))},
		{UID: "mid", EmployeeID: "0001", Entry: tp(mustParse(models.EditDateTimeLayout, "2024-01-01T10:00"))},
	}}

	svc := newViewFixture(records, roster, time.Now())

	rows, err := svc.VisibleRecords(context.Background(), models.RecordFilter{Name: "soto"})
	if err != nil {
		t.Fatalf("VisibleRecords: %v", err)
	}
	want := []string{"late", "mid", "early"}
	for i, uid := range want {
		if rows[i].UID != uid {
			t.Errorf("row[%d] = %q, want %q", i, rows[i].UID, uid)
		}
	}
}
