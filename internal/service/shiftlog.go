package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/metrics"
	"github.com/Zer0x25/reloj-control/internal/models"
)

// folioWidth is the zero-padding width of sequential shift folios.
const folioWidth = 4

// ShiftSlot is the store interface the shift log depends on: the open-shift
// singleton slot plus the archive of closed shifts.
type ShiftSlot interface {
	GetOpen(ctx context.Context) (*models.Shift, error)
	SaveOpen(ctx context.Context, shift *models.Shift) error
	ClearOpen(ctx context.Context) error
	ListArchived(ctx context.Context) ([]models.Shift, error)
	Archive(ctx context.Context, shift models.Shift) error
}

// ShiftLogService drives the shift lifecycle: at most one shift is open
// process-wide; incident notes and supplier visits accumulate on the open
// shift; closing stamps the close time and moves the shift to the archive.
type ShiftLogService struct {
	shifts ShiftSlot
	audit  Auditor
	events Publisher
	log    *logrus.Logger
	now    nowFunc
}

// NewShiftLogService creates a ShiftLogService.
func NewShiftLogService(shifts ShiftSlot, audit Auditor, events Publisher, log *logrus.Logger) *ShiftLogService {
	return &ShiftLogService{shifts: shifts, audit: audit, events: events, log: log, now: time.Now}
}

// IsOpen reports whether a shift is currently open.
func (s *ShiftLogService) IsOpen(ctx context.Context) (bool, error) {
	shift, err := s.shifts.GetOpen(ctx)
	if err != nil {
		return false, err
	}

	return shift != nil, nil
}

// Open returns the currently open shift with notes and visits ordered
// newest-first for display, or nil when no shift is open. Stored order
// remains insertion order.
func (s *ShiftLogService) Open(ctx context.Context) (*models.Shift, error) {
	shift, err := s.shifts.GetOpen(ctx)
	if err != nil || shift == nil {
		return nil, err
	}

	return sortedForDisplay(shift), nil
}

// StartShift opens a new shift with a freshly assigned folio. Fails while
// another shift is open, leaving it unmodified.
func (s *ShiftLogService) StartShift(ctx context.Context, req models.StartShiftRequest) (*models.Shift, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	open, err := s.shifts.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, models.ErrShiftAlreadyOpen
	}

	folio, err := s.NextFolio(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	shift := &models.Shift{
		Folio:          folio,
		Date:           now.Format("2006-01-02"),
		Type:           req.Type,
		Responsible:    req.Responsible,
		Notes:          []models.ShiftNote{},
		SupplierVisits: []models.SupplierVisit{},
	}

	if err := s.shifts.SaveOpen(ctx, shift); err != nil {
		return nil, err
	}

	metrics.OpenShift.Set(1)
	s.audit.Record(ctx, "shift.start", fmt.Sprintf("folio %s (%s) by %s", shift.Folio, shift.Type, shift.Responsible))
	s.publish("shift.opened", shift)

	return shift, nil
}

// AddNote appends an incident note to the open shift.
func (s *ShiftLogService) AddNote(ctx context.Context, req models.AddNoteRequest) (*models.ShiftNote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, models.ErrNoOpenShift
	}

	note := models.ShiftNote{Time: s.now(), Text: req.Text}
	shift.Notes = append(shift.Notes, note)

	if err := s.shifts.SaveOpen(ctx, shift); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "shift.note", fmt.Sprintf("folio %s: %s", shift.Folio, req.Text))
	s.publish("shift.note_added", note)

	return &note, nil
}

// AddSupplierVisit appends a visitor/vehicle entry to the open shift.
func (s *ShiftLogService) AddSupplierVisit(ctx context.Context, req models.AddSupplierVisitRequest) (*models.SupplierVisit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, models.ErrNoOpenShift
	}

	visit := models.SupplierVisit{
		Time:       s.now(),
		Plate:      req.Plate,
		Driver:     req.Driver,
		Companions: req.Companions,
		Company:    req.Company,
		Reason:     req.Reason,
	}
	shift.SupplierVisits = append(shift.SupplierVisits, visit)

	if err := s.shifts.SaveOpen(ctx, shift); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "shift.supplier_visit", fmt.Sprintf("folio %s: %s (%s)", shift.Folio, visit.Driver, visit.Plate))
	s.publish("shift.visit_added", visit)

	return &visit, nil
}

// CloseShift stamps the close time, archives the open shift with everything
// logged while it was open, and clears the open slot.
func (s *ShiftLogService) CloseShift(ctx context.Context, closingRemarks string) (*models.Shift, error) {
	shift, err := s.shifts.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, models.ErrNoOpenShift
	}

	now := s.now()
	shift.CloseTime = &now
	shift.ClosingRemarks = closingRemarks

	if err := s.shifts.Archive(ctx, *shift); err != nil {
		return nil, err
	}
	if err := s.shifts.ClearOpen(ctx); err != nil {
		return nil, err
	}

	metrics.OpenShift.Set(0)
	s.audit.Record(ctx, "shift.close", fmt.Sprintf("folio %s at %s", shift.Folio, now.Format(displayTimeLayout)))
	s.publish("shift.closed", shift)

	return shift, nil
}

// NextFolio computes the next sequential folio: one past the highest numeric
// folio in the archive, zero-padded. Non-numeric legacy folios count as
// zero, so an archive of only legacy shifts still yields "0001".
func (s *ShiftLogService) NextFolio(ctx context.Context) (string, error) {
	archived, err := s.shifts.ListArchived(ctx)
	if err != nil {
		return "", err
	}

	maxFolio := 0
	for _, shift := range archived {
		if n, err := strconv.Atoi(shift.Folio); err == nil && n > maxFolio {
			maxFolio = n
		}
	}

	return fmt.Sprintf("%0*d", folioWidth, maxFolio+1), nil
}

// ListArchived returns closed shifts ordered by folio, highest first.
// Legacy non-numeric folios sort as zero.
func (s *ShiftLogService) ListArchived(ctx context.Context) ([]models.Shift, error) {
	archived, err := s.shifts.ListArchived(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(archived, func(i, j int) bool {
		return folioNum(archived[i].Folio) > folioNum(archived[j].Folio)
	})

	return archived, nil
}

func (s *ShiftLogService) publish(eventType string, data any) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}

func folioNum(folio string) int {
	n, err := strconv.Atoi(folio)
	if err != nil {
		return 0
	}

	return n
}

// sortedForDisplay returns a copy of the shift with notes and visits ordered
// by time descending.
func sortedForDisplay(shift *models.Shift) *models.Shift {
	out := *shift

	out.Notes = append([]models.ShiftNote(nil), shift.Notes...)
	sort.SliceStable(out.Notes, func(i, j int) bool {
		return out.Notes[i].Time.After(out.Notes[j].Time)
	})

	out.SupplierVisits = append([]models.SupplierVisit(nil), shift.SupplierVisits...)
	sort.SliceStable(out.SupplierVisits, func(i, j int) bool {
		return out.SupplierVisits[i].Time.After(out.SupplierVisits[j].Time)
	})

	return &out
}
