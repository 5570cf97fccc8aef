// Package database provides sqlite connection management with lifecycle
// coordination. The store is opened on an in-memory DSN by default: schema
// and seed data are applied on startup and nothing outlives the process.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"rukun/pkg/lifecycle"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// System manages the database connection and lifecycle coordination.
type System interface {
	// Connection returns the underlying database connection pool.
	Connection() *sql.DB
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration

	// anchor pins one connection for the lifetime of the process. A shared
	// in-memory sqlite database is destroyed when its last connection
	// closes, so the pool must never drain completely.
	anchor *sql.Conn
}

// New creates a database system with the given configuration.
// It calls sql.Open to validate the DSN and configure pool parameters,
// but does not establish a connection until Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(0)

	return &database{
		conn:        db,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database")

	lc.OnStartup(func() {
		startCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
		defer cancel()

		anchor, err := d.conn.Conn(startCtx)
		if err != nil {
			d.logger.Error("database connection failed", "error", err)
			return
		}
		d.anchor = anchor

		if err := Migrate(d.conn); err != nil {
			d.logger.Error("database migration failed", "error", err)
			return
		}

		d.logger.Info("database ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database")

		if d.anchor != nil {
			d.anchor.Close()
		}
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}

		d.logger.Info("database closed")
	})

	return nil
}

// Migrate applies all embedded up migrations (schema and seed records)
// against the given connection pool.
func Migrate(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
