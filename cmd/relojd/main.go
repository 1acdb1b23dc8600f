// Command relojd runs the time clock and shift log HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Zer0x25/reloj-control/internal/api"
	"github.com/Zer0x25/reloj-control/internal/config"
	"github.com/Zer0x25/reloj-control/internal/db"
	"github.com/Zer0x25/reloj-control/internal/db/migrations"
	"github.com/Zer0x25/reloj-control/internal/kv"
	"github.com/Zer0x25/reloj-control/internal/metrics"
	"github.com/Zer0x25/reloj-control/internal/service"
	"github.com/Zer0x25/reloj-control/internal/store"
	"github.com/Zer0x25/reloj-control/internal/ws"
)

// Version is set at build time via ldflags.
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("relojd exited with error")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kvStore, pinger, cleanup, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	metrics.Register(prometheus.DefaultRegisterer)

	base := store.Base{KV: kvStore, Log: log}
	employees := store.NewEmployeeStore(base)
	records := store.NewRecordStore(base)
	shifts := store.NewShiftStore(base)
	auditStore := store.NewAuditStore(base)

	hub := ws.NewHub(log)

	audit := service.NewAuditService(auditStore, log)
	directory := service.NewDirectoryService(employees, records, audit, log)
	attendance := service.NewAttendanceService(records, employees, audit, hub, log)
	view := service.NewViewService(records, employees, log)
	shiftLog := service.NewShiftLogService(shifts, audit, hub, log)

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Hub:         hub,
		Directory:   directory,
		Attendance:  attendance,
		View:        view,
		ShiftLog:    shiftLog,
		Audit:       audit,
		Pinger:      pinger,
		CORSOrigins: cfg.CORSOrigins,
		AdminPIN:    cfg.AdminPIN.Value(),
		Version:     Version,
		Backend:     cfg.StorageBackend,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"backend": cfg.StorageBackend,
			"version": Version,
		}).Info("relojd listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStorage builds the configured key-value backend. The returned cleanup
// is safe to call exactly once.
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (kv.Store, api.Pinger, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pg, err := kv.NewPostgresStore(ctx, cfg.DatabaseURL.Value())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(ctx, pg, log, migrations.FS); err != nil {
			pg.Close()

			return nil, nil, nil, err
		}

		return pg, pg, pg.Close, nil

	case config.BackendRedis:
		rd, err := kv.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword.Value(), cfg.RedisDB)
		if err != nil {
			return nil, nil, nil, err
		}

		return rd, rd, func() {
			if err := rd.Close(); err != nil {
				log.WithError(err).Warn("closing redis connection")
			}
		}, nil

	default:
		log.Warn("using in-memory storage, data is lost on restart")

		return kv.NewMemoryStore(), nil, func() {}, nil
	}
}
