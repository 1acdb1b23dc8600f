package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/kv"
	"github.com/Zer0x25/reloj-control/internal/models"
)

// RecordStore persists the attendance record collection as one blob.
//
// Two stored shapes exist in the wild: the canonical one (entry_at/exit_at
// RFC 3339 timestamps) and a legacy flat one carrying a date plus separate
// entry/exit times of day. Load normalizes everything to the canonical shape
// so business logic never branches on schema variants; the next Save
// rewrites the blob canonically.
type RecordStore struct {
	Base
}

// NewRecordStore creates a RecordStore.
func NewRecordStore(base Base) *RecordStore {
	return &RecordStore{Base: base}
}

// recordDoc is the stored shape of one record, superset of the canonical and
// legacy field sets.
type recordDoc struct {
	UID        string     `json:"uid"`
	EmployeeID string     `json:"employee_id,omitempty"`
	Entry      *time.Time `json:"entry_at,omitempty"`
	Exit       *time.Time `json:"exit_at,omitempty"`
	Comment    string     `json:"comment,omitempty"`

	// Legacy flat variant.
	LegacyEmployeeID string `json:"empleadoId,omitempty"`
	LegacyDate       string `json:"fecha,omitempty"`   // YYYY-MM-DD
	LegacyEntry      string `json:"entrada,omitempty"` // HH:MM
	LegacyExit       string `json:"salida,omitempty"`  // HH:MM
	LegacyComment    string `json:"comentario,omitempty"`
}

// List returns all records normalized to the canonical shape. Records that
// cannot be normalized (no parseable entry) are dropped with a warning
// rather than failing the whole load.
func (s *RecordStore) List(ctx context.Context) ([]models.AttendanceRecord, error) {
	data, err := s.KV.Get(ctx, keyRecords)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []models.AttendanceRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var docs []recordDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding blob %q: %w", keyRecords, err)
	}

	records := make([]models.AttendanceRecord, 0, len(docs))
	for _, doc := range docs {
		rec, err := doc.normalize()
		if err != nil {
			s.Log.WithFields(logrus.Fields{"uid": doc.UID}).WithError(err).Warn("dropping unreadable attendance record")
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// Save replaces the whole record collection, always in canonical shape.
func (s *RecordStore) Save(ctx context.Context, records []models.AttendanceRecord) error {
	if records == nil {
		records = []models.AttendanceRecord{}
	}

	return s.saveJSON(ctx, keyRecords, records)
}

// normalize maps a stored doc onto the canonical record shape.
func (d *recordDoc) normalize() (models.AttendanceRecord, error) {
	rec := models.AttendanceRecord{
		UID:        d.UID,
		EmployeeID: d.EmployeeID,
		Entry:      d.Entry,
		Exit:       d.Exit,
		Comment:    d.Comment,
	}

	if rec.EmployeeID == "" {
		rec.EmployeeID = d.LegacyEmployeeID
	}
	if rec.Comment == "" {
		rec.Comment = d.LegacyComment
	}

	if rec.Entry == nil && d.LegacyDate != "" && d.LegacyEntry != "" {
		t, err := parseLegacyDateTime(d.LegacyDate, d.LegacyEntry)
		if err != nil {
			return models.AttendanceRecord{}, fmt.Errorf("legacy entry: %w", err)
		}
		rec.Entry = &t
	}
	if rec.Exit == nil && d.LegacyDate != "" && d.LegacyExit != "" {
		t, err := parseLegacyDateTime(d.LegacyDate, d.LegacyExit)
		if err != nil {
			return models.AttendanceRecord{}, fmt.Errorf("legacy exit: %w", err)
		}
		rec.Exit = &t
	}

	if rec.UID == "" || rec.EmployeeID == "" || rec.Entry == nil {
		return models.AttendanceRecord{}, errors.New("record missing uid, employee id or entry")
	}

	return rec, nil
}

// parseLegacyDateTime combines the legacy date and time-of-day columns in
// local time. Constructing via ParseInLocation avoids the timezone-ambiguous
// string concatenation that caused off-by-one-day bugs upstream.
func parseLegacyDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}
