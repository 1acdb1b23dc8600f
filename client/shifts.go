package client

import "context"

// ShiftService handles the shift log lifecycle.
type ShiftService struct {
	c *Client
}

// Open returns the currently open shift, or a not-found error when none is
// open.
func (s *ShiftService) Open(ctx context.Context) (*Shift, error) {
	var shift Shift
	if err := s.c.get(ctx, "/api/v1/shifts/open", nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// Start opens a new shift.
func (s *ShiftService) Start(ctx context.Context, req *StartShiftRequest) (*Shift, error) {
	var shift Shift
	if err := s.c.post(ctx, "/api/v1/shifts", req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

type closeShiftRequest struct {
	ClosingRemarks string `json:"closing_remarks"`
}

// Close closes the open shift and archives it.
func (s *ShiftService) Close(ctx context.Context, closingRemarks string) (*Shift, error) {
	var shift Shift
	if err := s.c.post(ctx, "/api/v1/shifts/close", closeShiftRequest{ClosingRemarks: closingRemarks}, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

type addNoteRequest struct {
	Text string `json:"text"`
}

// AddNote logs an incident note on the open shift.
func (s *ShiftService) AddNote(ctx context.Context, text string) (*ShiftNote, error) {
	var note ShiftNote
	if err := s.c.post(ctx, "/api/v1/shifts/notes", addNoteRequest{Text: text}, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// AddSupplierVisit logs a supplier entry on the open shift.
func (s *ShiftService) AddSupplierVisit(ctx context.Context, req *SupplierVisitRequest) (*SupplierVisit, error) {
	var visit SupplierVisit
	if err := s.c.post(ctx, "/api/v1/shifts/suppliers", req, &visit); err != nil {
		return nil, err
	}
	return &visit, nil
}

// NextFolio returns the folio the next shift will receive.
func (s *ShiftService) NextFolio(ctx context.Context) (string, error) {
	var resp struct {
		Folio string `json:"folio"`
	}
	if err := s.c.get(ctx, "/api/v1/shifts/next-folio", nil, &resp); err != nil {
		return "", err
	}
	return resp.Folio, nil
}

type shiftListResponse struct {
	Shifts []Shift `json:"shifts"`
}

// Archive returns closed shifts, newest folio first.
func (s *ShiftService) Archive(ctx context.Context) ([]Shift, error) {
	var resp shiftListResponse
	if err := s.c.get(ctx, "/api/v1/shifts/archive", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Shifts, nil
}
