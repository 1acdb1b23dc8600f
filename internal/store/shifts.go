package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Zer0x25/reloj-control/internal/kv"
	"github.com/Zer0x25/reloj-control/internal/models"
)

// ShiftStore owns the open-shift singleton slot and the archive of closed
// shifts. The slot holds at most one shift object; absence of the key means
// no shift is open.
type ShiftStore struct {
	Base
}

// NewShiftStore creates a ShiftStore.
func NewShiftStore(base Base) *ShiftStore {
	return &ShiftStore{Base: base}
}

// GetOpen returns the currently open shift, or nil when the slot is empty.
func (s *ShiftStore) GetOpen(ctx context.Context) (*models.Shift, error) {
	data, err := s.KV.Get(ctx, keyOpenShift)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var shift models.Shift
	if err := json.Unmarshal(data, &shift); err != nil {
		return nil, fmt.Errorf("decoding blob %q: %w", keyOpenShift, err)
	}

	return &shift, nil
}

// SaveOpen writes the open-shift slot.
func (s *ShiftStore) SaveOpen(ctx context.Context, shift *models.Shift) error {
	return s.saveJSON(ctx, keyOpenShift, shift)
}

// ClearOpen empties the open-shift slot.
func (s *ShiftStore) ClearOpen(ctx context.Context) error {
	return s.KV.Delete(ctx, keyOpenShift)
}

// ListArchived returns all closed shifts in stored (append) order.
func (s *ShiftStore) ListArchived(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.loadSlice(ctx, keyShiftArch, &shifts); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Archive appends a closed shift to the archive.
func (s *ShiftStore) Archive(ctx context.Context, shift models.Shift) error {
	shifts, err := s.ListArchived(ctx)
	if err != nil {
		return err
	}

	shifts = append(shifts, shift)

	return s.saveJSON(ctx, keyShiftArch, shifts)
}
