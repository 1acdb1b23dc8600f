package store

import (
	"context"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// AuditStore persists the append-only action history.
type AuditStore struct {
	Base
}

// NewAuditStore creates an AuditStore.
func NewAuditStore(base Base) *AuditStore {
	return &AuditStore{Base: base}
}

// Append adds an entry to the history.
func (s *AuditStore) Append(ctx context.Context, entry models.AuditEntry) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	return s.saveJSON(ctx, keyAuditLog, entries)
}

// List returns all entries in append (oldest-first) order. Display ordering
// is a view concern.
func (s *AuditStore) List(ctx context.Context) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := s.loadSlice(ctx, keyAuditLog, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Clear deletes the whole history.
func (s *AuditStore) Clear(ctx context.Context) error {
	return s.KV.Delete(ctx, keyAuditLog)
}
