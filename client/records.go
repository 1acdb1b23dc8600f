package client

import (
	"context"
	"net/url"
)

// RecordService handles the attendance table and record corrections.
type RecordService struct {
	c *Client
}

type recordListResponse struct {
	Records []ViewRow `json:"records"`
}

func (f *RecordFilter) values() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Name != "" {
		params.Set("name", f.Name)
	}
	if f.Area != "" {
		params.Set("area", f.Area)
	}
	if f.From != "" {
		params.Set("from", f.From)
	}
	if f.To != "" {
		params.Set("to", f.To)
	}
	return params
}

// List returns the visible attendance rows. A nil filter shows the default
// recent window.
func (s *RecordService) List(ctx context.Context, filter *RecordFilter) ([]ViewRow, error) {
	var resp recordListResponse
	if err := s.c.get(ctx, "/api/v1/records", filter.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

type editFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// EditField rewrites one timestamp of a record. Field is "entry" or "exit";
// value uses YYYY-MM-DDTHH:MM. Requires the admin PIN.
func (s *RecordService) EditField(ctx context.Context, uid, field, value string) error {
	return s.c.patch(ctx, "/api/v1/records/"+url.PathEscape(uid), editFieldRequest{Field: field, Value: value}, nil)
}

type annotateRequest struct {
	Comment string `json:"comment"`
}

// Annotate sets a record's comment. An empty comment clears it. Requires the
// admin PIN.
func (s *RecordService) Annotate(ctx context.Context, uid, comment string) error {
	return s.c.put(ctx, "/api/v1/records/"+url.PathEscape(uid)+"/comment", annotateRequest{Comment: comment}, nil)
}

// Delete removes a record. Requires the admin PIN.
func (s *RecordService) Delete(ctx context.Context, uid string) error {
	return s.c.del(ctx, "/api/v1/records/"+url.PathEscape(uid))
}

// ExportCSV downloads the filtered rows as CSV.
func (s *RecordService) ExportCSV(ctx context.Context, filter *RecordFilter) ([]byte, error) {
	return s.c.download(ctx, "/api/v1/records/export/csv", filter.values())
}

// ExportXLSX downloads the filtered rows as a spreadsheet.
func (s *RecordService) ExportXLSX(ctx context.Context, filter *RecordFilter) ([]byte, error) {
	return s.c.download(ctx, "/api/v1/records/export/xlsx", filter.values())
}
