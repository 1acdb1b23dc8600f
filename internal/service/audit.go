package service

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// AuditAppender is the store interface the audit trail writes through.
type AuditAppender interface {
	Append(ctx context.Context, entry models.AuditEntry) error
	List(ctx context.Context) ([]models.AuditEntry, error)
	Clear(ctx context.Context) error
}

// AuditService records and serves the append-only action history.
type AuditService struct {
	store AuditAppender
	log   *logrus.Logger
	now   nowFunc
}

// NewAuditService creates an AuditService.
func NewAuditService(store AuditAppender, log *logrus.Logger) *AuditService {
	return &AuditService{store: store, log: log, now: time.Now}
}

// Record appends an action to the history. Failures are logged and swallowed
// so a full audit blob never blocks the operation that triggered it.
func (s *AuditService) Record(ctx context.Context, action, subject string) {
	entry := models.AuditEntry{Time: s.now(), Action: action, Subject: subject}

	if err := s.store.Append(ctx, entry); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"action": action, "subject": subject}).
			Warn("appending audit entry failed")

		return
	}

	s.log.WithFields(logrus.Fields{"action": action, "subject": subject}).Info("audit")
}

// List returns the history newest-first.
func (s *AuditService) List(ctx context.Context) ([]models.AuditEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})

	return entries, nil
}

// Clear erases the whole history.
func (s *AuditService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.log.Info("audit log cleared")

	return nil
}
