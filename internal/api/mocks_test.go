package api_test

import (
	"context"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// mockDirectory implements api.Directory for testing.
type mockDirectory struct {
	listFn       func(ctx context.Context) ([]models.Employee, error)
	getFn        func(ctx context.Context, id string) (*models.Employee, error)
	createFn     func(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	updateFn     func(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	deleteFn     func(ctx context.Context, id string) error
	findByNameFn func(ctx context.Context, query string) ([]models.Employee, error)
	nextIDFn     func(ctx context.Context) (string, error)
}

func (m *mockDirectory) List(ctx context.Context) ([]models.Employee, error) {
	return m.listFn(ctx)
}

func (m *mockDirectory) Get(ctx context.Context, id string) (*models.Employee, error) {
	return m.getFn(ctx, id)
}

func (m *mockDirectory) Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	return m.createFn(ctx, req)
}

func (m *mockDirectory) Update(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	return m.updateFn(ctx, req)
}

func (m *mockDirectory) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDirectory) FindByName(ctx context.Context, query string) ([]models.Employee, error) {
	return m.findByNameFn(ctx, query)
}

func (m *mockDirectory) NextSequentialID(ctx context.Context) (string, error) {
	return m.nextIDFn(ctx)
}

// mockAttendance implements api.Attendance for testing.
type mockAttendance struct {
	registerFn func(ctx context.Context, employeeID string, kind models.EventKind) (*models.AttendanceRecord, error)
	findOpenFn func(ctx context.Context, employeeID string) (*models.AttendanceRecord, error)
	editFn     func(ctx context.Context, uid string, field models.RecordField, value string) error
	annotateFn func(ctx context.Context, uid, comment string) error
	deleteFn   func(ctx context.Context, uid string) error
}

func (m *mockAttendance) RegisterEvent(ctx context.Context, employeeID string, kind models.EventKind) (*models.AttendanceRecord, error) {
	return m.registerFn(ctx, employeeID, kind)
}

func (m *mockAttendance) FindOpenRecord(ctx context.Context, employeeID string) (*models.AttendanceRecord, error) {
	return m.findOpenFn(ctx, employeeID)
}

func (m *mockAttendance) EditRecordField(ctx context.Context, uid string, field models.RecordField, value string) error {
	return m.editFn(ctx, uid, field, value)
}

func (m *mockAttendance) Annotate(ctx context.Context, uid, comment string) error {
	return m.annotateFn(ctx, uid, comment)
}

func (m *mockAttendance) DeleteRecord(ctx context.Context, uid string) error {
	return m.deleteFn(ctx, uid)
}

// mockView implements api.RecordView for testing.
type mockView struct {
	visibleFn func(ctx context.Context, filter models.RecordFilter) ([]models.ViewRow, error)
}

func (m *mockView) VisibleRecords(ctx context.Context, filter models.RecordFilter) ([]models.ViewRow, error) {
	return m.visibleFn(ctx, filter)
}

// mockShiftLog implements api.ShiftLog for testing.
type mockShiftLog struct {
	isOpenFn    func(ctx context.Context) (bool, error)
	openFn      func(ctx context.Context) (*models.Shift, error)
	startFn     func(ctx context.Context, req models.StartShiftRequest) (*models.Shift, error)
	addNoteFn   func(ctx context.Context, req models.AddNoteRequest) (*models.ShiftNote, error)
	addVisitFn  func(ctx context.Context, req models.AddSupplierVisitRequest) (*models.SupplierVisit, error)
	closeFn     func(ctx context.Context, closingRemarks string) (*models.Shift, error)
	nextFolioFn func(ctx context.Context) (string, error)
	archivedFn  func(ctx context.Context) ([]models.Shift, error)
}

func (m *mockShiftLog) IsOpen(ctx context.Context) (bool, error) {
	return m.isOpenFn(ctx)
}

func (m *mockShiftLog) Open(ctx context.Context) (*models.Shift, error) {
	return m.openFn(ctx)
}

func (m *mockShiftLog) StartShift(ctx context.Context, req models.StartShiftRequest) (*models.Shift, error) {
	return m.startFn(ctx, req)
}

func (m *mockShiftLog) AddNote(ctx context.Context, req models.AddNoteRequest) (*models.ShiftNote, error) {
	return m.addNoteFn(ctx, req)
}

func (m *mockShiftLog) AddSupplierVisit(ctx context.Context, req models.AddSupplierVisitRequest) (*models.SupplierVisit, error) {
	return m.addVisitFn(ctx, req)
}

func (m *mockShiftLog) CloseShift(ctx context.Context, closingRemarks string) (*models.Shift, error) {
	return m.closeFn(ctx, closingRemarks)
}

func (m *mockShiftLog) NextFolio(ctx context.Context) (string, error) {
	return m.nextFolioFn(ctx)
}

func (m *mockShiftLog) ListArchived(ctx context.Context) ([]models.Shift, error) {
	return m.archivedFn(ctx)
}

// mockAuditTrail implements api.AuditTrail for testing.
type mockAuditTrail struct {
	listFn  func(ctx context.Context) ([]models.AuditEntry, error)
	clearFn func(ctx context.Context) error
}

func (m *mockAuditTrail) List(ctx context.Context) ([]models.AuditEntry, error) {
	return m.listFn(ctx)
}

func (m *mockAuditTrail) Clear(ctx context.Context) error {
	return m.clearFn(ctx)
}
