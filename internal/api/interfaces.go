package api

import (
	"context"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// Directory is the roster service interface the employee handler depends on.
type Directory interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, query string) ([]models.Employee, error)
	NextSequentialID(ctx context.Context) (string, error)
}

// Attendance is the clock-engine interface the attendance handler depends on.
type Attendance interface {
	RegisterEvent(ctx context.Context, employeeID string, kind models.EventKind) (*models.AttendanceRecord, error)
	FindOpenRecord(ctx context.Context, employeeID string) (*models.AttendanceRecord, error)
	EditRecordField(ctx context.Context, uid string, field models.RecordField, value string) error
	Annotate(ctx context.Context, uid, comment string) error
	DeleteRecord(ctx context.Context, uid string) error
}

// RecordView computes the filtered, sorted attendance table.
type RecordView interface {
	VisibleRecords(ctx context.Context, filter models.RecordFilter) ([]models.ViewRow, error)
}

// ShiftLog is the shift-lifecycle interface the shift handler depends on.
type ShiftLog interface {
	IsOpen(ctx context.Context) (bool, error)
	Open(ctx context.Context) (*models.Shift, error)
	StartShift(ctx context.Context, req models.StartShiftRequest) (*models.Shift, error)
	AddNote(ctx context.Context, req models.AddNoteRequest) (*models.ShiftNote, error)
	AddSupplierVisit(ctx context.Context, req models.AddSupplierVisitRequest) (*models.SupplierVisit, error)
	CloseShift(ctx context.Context, closingRemarks string) (*models.Shift, error)
	NextFolio(ctx context.Context) (string, error)
	ListArchived(ctx context.Context) ([]models.Shift, error)
}

// AuditTrail serves the action history.
type AuditTrail interface {
	List(ctx context.Context) ([]models.AuditEntry, error)
	Clear(ctx context.Context) error
}
