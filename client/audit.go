package client

import "context"

// AuditService reads and clears the action history.
type AuditService struct {
	c *Client
}

type auditListResponse struct {
	Entries []AuditEntry `json:"entries"`
}

// List returns audit entries, newest first.
func (s *AuditService) List(ctx context.Context) ([]AuditEntry, error) {
	var resp auditListResponse
	if err := s.c.get(ctx, "/api/v1/audit", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// Clear wipes the audit log. Requires the admin PIN.
func (s *AuditService) Clear(ctx context.Context) error {
	return s.c.del(ctx, "/api/v1/audit")
}
