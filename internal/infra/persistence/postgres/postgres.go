package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/lifecycle"
	"coffeeshop/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// store owns the coffee database handle for the lifetime of the app.
type store struct {
	db          *gorm.DB
	sqlDB       *sql.DB
	logger      *slog.Logger
	autoMigrate bool
	stopMonitor context.CancelFunc
}

// New creates the GORM client for the coffee store and registers its lifecycle hooks.
// On start the primary is pinged and, when database.autoMigrate is set, the
// coffees/flavors/events schema is migrated before any server accepts traffic.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-step writes go through TransactionManager, so single statements skip GORM's implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	s := &store{
		db:          db,
		sqlDB:       sqlDB,
		logger:      params.Logger,
		autoMigrate: params.Config.Database != nil && params.Config.Database.AutoMigrate,
	}
	params.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})

	return db, nil
}

func (s *store) start(startCtx context.Context) error {
	ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if s.autoMigrate {
		if err := AutoMigrate(ctx, s.db); err != nil {
			return err
		}
		s.logger.Info("Coffee schema migrated")
	}

	monitorCtx, stop := context.WithCancel(context.Background())
	s.stopMonitor = stop
	go monitorPool(monitorCtx, s.logger, s.sqlDB, poolMonitorInterval)

	return nil
}

func (s *store) stop(_ context.Context) error {
	if s.stopMonitor != nil {
		s.stopMonitor()
	}

	return errors.WithStack(s.sqlDB.Close())
}

// monitorPool reports connection pool waits. A recommendation burst shows up
// here first, since every recommend holds a connection for its transaction.
func monitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
