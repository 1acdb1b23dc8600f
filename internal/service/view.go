package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// defaultViewWindow is the trailing window shown when no filter is active,
// keeping the default view small and operationally relevant instead of a
// full history dump.
const defaultViewWindow = 18 * time.Hour

// ViewService joins attendance records with the roster and renders filtered,
// sorted table rows.
type ViewService struct {
	records   RecordCollection
	employees EmployeeRoster
	log       *logrus.Logger
	now       nowFunc
}

// NewViewService creates a ViewService.
func NewViewService(records RecordCollection, employees EmployeeRoster, log *logrus.Logger) *ViewService {
	return &ViewService{records: records, employees: employees, log: log, now: time.Now}
}

// VisibleRecords computes the row set for the attendance table. Records
// whose employee id no longer resolves are silently excluded as data
// hygiene. With no filter set, only records whose entry falls within the
// trailing default window appear. Name and area filter by case-insensitive
// substring; the date range is inclusive on both ends, with the upper bound
// extended to the end of that day. Rows sort most-recent-entry first;
// ties keep insertion order.
func (s *ViewService) VisibleRecords(ctx context.Context, filter models.RecordFilter) ([]models.ViewRow, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}

	type joined struct {
		rec models.AttendanceRecord
		emp models.Employee
	}

	var cutoff time.Time
	now := s.now()
	if filter.Empty() {
		cutoff = now.Add(-defaultViewWindow)
	}

	visible := make([]joined, 0, len(records))
	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			continue
		}

		if filter.Empty() {
			if rec.Entry == nil || rec.Entry.Before(cutoff) || rec.Entry.After(now) {
				continue
			}
		} else if !matchesFilter(rec, emp, filter) {
			continue
		}

		visible = append(visible, joined{rec: rec, emp: emp})
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return entryTime(visible[i].rec).After(entryTime(visible[j].rec))
	})

	rows := make([]models.ViewRow, 0, len(visible))
	for _, v := range visible {
		rows = append(rows, models.ViewRow{
			UID:     v.rec.UID,
			Area:    v.emp.Area,
			Name:    v.emp.Name,
			Title:   v.emp.Title,
			Entry:   formatStamp(v.rec.Entry, "N/A"),
			Exit:    formatStamp(v.rec.Exit, "Pending"),
			Comment: v.rec.Comment,
		})
	}

	return rows, nil
}

func matchesFilter(rec models.AttendanceRecord, emp models.Employee, filter models.RecordFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Area != "" && !strings.Contains(strings.ToLower(emp.Area), strings.ToLower(filter.Area)) {
		return false
	}

	if filter.From != nil || filter.To != nil {
		if rec.Entry == nil {
			return false
		}
		if filter.From != nil && rec.Entry.Before(*filter.From) {
			return false
		}
		if filter.To != nil {
			// Inclusive upper bound: anything before the start of the
			// following day passes.
			endExclusive := filter.To.AddDate(0, 0, 1)
			if !rec.Entry.Before(endExclusive) {
				return false
			}
		}
	}

	return true
}

// entryTime treats a missing entry as the zero time so such records sink to
// the bottom of the descending sort.
func entryTime(rec models.AttendanceRecord) time.Time {
	if rec.Entry == nil {
		return time.Time{}
	}

	return *rec.Entry
}

func formatStamp(t *time.Time, absent string) string {
	if t == nil {
		return absent
	}

	return t.Format(displayTimeLayout)
}
