package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zer0x25/reloj-control/internal/api"
	"github.com/Zer0x25/reloj-control/internal/models"
)

func newClockRouter(att *mockAttendance) *gin.Engine {
	r := gin.New()
	h := api.NewAttendanceHandler(att, testLogger())
	r.POST("/api/v1/clock", h.Clock)
	r.GET("/api/v1/clock/open/:employeeId", h.OpenRecord)

	return r
}

func TestClockEntry(t *testing.T) {
	now := time.Now()
	att := &mockAttendance{
		registerFn: func(_ context.Context, employeeID string, kind models.EventKind) (*models.AttendanceRecord, error) {
			if employeeID != "0001" || kind != models.EventEntry {
				t.Errorf("got %s/%s", employeeID, kind)
			}

			return &models.AttendanceRecord{UID: "r1", EmployeeID: employeeID, Entry: &now}, nil
		},
	}
	r := newClockRouter(att)

	w := doRequest(r, http.MethodPost, "/api/v1/clock", `{"employee_id":"0001","kind":"entry"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestClockRejectsUnknownKind(t *testing.T) {
	r := newClockRouter(&mockAttendance{})

	w := doRequest(r, http.MethodPost, "/api/v1/clock", `{"employee_id":"0001","kind":"lunch"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestClockConflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"already clocked in", models.ErrAlreadyClockedIn},
		{"too soon", models.ErrEntryTooSoon},
		{"no open entry", models.ErrNoOpenEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := &mockAttendance{
				registerFn: func(_ context.Context, _ string, _ models.EventKind) (*models.AttendanceRecord, error) {
					return nil, tt.err
				},
			}
			r := newClockRouter(att)

			w := doRequest(r, http.MethodPost, "/api/v1/clock", `{"employee_id":"0001","kind":"entry"}`)
			if w.Code != http.StatusConflict {
				t.Errorf("status = %d, want 409", w.Code)
			}
		})
	}
}

func TestClockUnknownEmployee(t *testing.T) {
	att := &mockAttendance{
		registerFn: func(_ context.Context, _ string, _ models.EventKind) (*models.AttendanceRecord, error) {
			return nil, models.ErrEmployeeNotFound
		},
	}
	r := newClockRouter(att)

	w := doRequest(r, http.MethodPost, "/api/v1/clock", `{"employee_id":"nope","kind":"entry"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestOpenRecordLookup(t *testing.T) {
	now := time.Now()
	att := &mockAttendance{
		findOpenFn: func(_ context.Context, employeeID string) (*models.AttendanceRecord, error) {
			if employeeID == "0001" {
				return &models.AttendanceRecord{UID: "r1", EmployeeID: "0001", Entry: &now}, nil
			}

			return nil, nil
		},
	}
	r := newClockRouter(att)

	w := doRequest(r, http.MethodGet, "/api/v1/clock/open/0001", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/clock/open/0002", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for clocked-out employee", w.Code)
	}
}
