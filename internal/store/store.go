// Package store provides focused, single-concern collection stores over the
// key-value blob layer.
//
// Each store owns one logical key (employees, attendance records, audit log,
// open shift, shift archive) and persists its whole collection as one JSON
// blob per mutation. Callers therefore get read-modify-write atomicity per
// operation but no isolation across keys — the same contract the original
// single-operator system ran on. Stores never import each other; cross-
// collection workflows (such as cascade deletes) are composed in the service
// layer.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/kv"
)

// Logical blob keys. One key per collection plus the open-shift singleton slot.
const (
	keyEmployees = "employees"
	keyRecords   = "attendance-records"
	keyAuditLog  = "audit-log"
	keyOpenShift = "shift-open"
	keyShiftArch = "shift-archive"
)

// Base contains shared dependencies for all stores. Embed this in each
// store struct.
type Base struct {
	KV  kv.Store
	Log *logrus.Logger
}

// loadSlice reads a JSON array blob into out. An absent key yields an empty
// collection rather than an error.
func (b *Base) loadSlice(ctx context.Context, key string, out any) error {
	data, err := b.KV.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding blob %q: %w", key, err)
	}

	return nil
}

// saveJSON encodes v and writes it under key.
func (b *Base) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding blob %q: %w", key, err)
	}

	return b.KV.Set(ctx, key, data)
}
