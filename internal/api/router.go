package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/middleware"
	"github.com/Zer0x25/reloj-control/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Hub         *ws.Hub
	Directory   Directory
	Attendance  Attendance
	View        RecordView
	ShiftLog    ShiftLog
	Audit       AuditTrail
	Pinger      Pinger
	CORSOrigins []string
	AdminPIN    string
	Version     string
	Backend     string
}

// maxBodySize caps request bodies. Payloads here are small JSON documents.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.PINHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pinger, deps.Hub, log, deps.Version, deps.Backend)
	employees := NewEmployeeHandler(deps.Directory, log)
	attendance := NewAttendanceHandler(deps.Attendance, log)
	records := NewRecordHandler(deps.Attendance, deps.View, log)
	shifts := NewShiftHandler(deps.ShiftLog, log)
	audit := NewAuditHandler(deps.Audit, log)

	pinGate := middleware.PINGate(deps.AdminPIN)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Roster. Mutations sit behind the admin PIN.
	api.GET("/employees", employees.List)
	api.GET("/employees/next-id", employees.NextID)
	api.GET("/employees/:id", employees.Get)
	api.POST("/employees", pinGate, employees.Create)
	api.PUT("/employees/:id", pinGate, employees.Update)
	api.DELETE("/employees/:id", pinGate, employees.Delete)

	// Clock events.
	api.POST("/clock", attendance.Clock)
	api.GET("/clock/open/:employeeId", attendance.OpenRecord)

	// Attendance table, corrections, exports.
	api.GET("/records", records.List)
	api.GET("/records/export/csv", records.ExportCSV)
	api.GET("/records/export/xlsx", records.ExportXLSX)
	api.PATCH("/records/:uid", pinGate, records.EditField)
	api.PUT("/records/:uid/comment", pinGate, records.Annotate)
	api.DELETE("/records/:uid", pinGate, records.Delete)

	// Shift log.
	api.GET("/shifts/open", shifts.Open)
	api.GET("/shifts/next-folio", shifts.NextFolio)
	api.GET("/shifts/archive", shifts.Archive)
	api.POST("/shifts", shifts.Start)
	api.POST("/shifts/close", shifts.Close)
	api.POST("/shifts/notes", shifts.AddNote)
	api.POST("/shifts/suppliers", shifts.AddSupplierVisit)

	// Audit trail. Clearing it is admin-only.
	api.GET("/audit", audit.List)
	api.DELETE("/audit", pinGate, audit.Clear)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
