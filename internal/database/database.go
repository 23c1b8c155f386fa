// Package database manages the sqlite state store holding the seeded
// restaurant catalog.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // register the sqlite driver

	"github.com/ravico/dinefinder/internal/logging"
)

//go:embed migrations
var migrationsFS embed.FS

// DB manages the database connection
type DB struct {
	conn   *sql.DB
	logger zerolog.Logger
	dbPath string
}

// New opens a database connection using the provided options. Mode and
// cache travel in the DSN; the remaining settings are applied as PRAGMAs
// once the connection is up.
func New(opts SQLiteOptions) (*DB, error) {
	connStr := opts.buildConnectionString()
	logger := logging.GetLogger("database").With().Str("db_path", opts.Path).Logger()
	logger.Debug().Str("connection_string", connStr).Msg("Opening database connection")

	conn, err := sql.Open("sqlite", connStr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open database")
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := applyPragmas(conn, opts, logger); err != nil {
		conn.Close()
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection opened and configured")

	return &DB{conn: conn, logger: logger, dbPath: opts.Path}, nil
}

// buildConnectionString assembles the DSN from the URI-supported options.
func (o SQLiteOptions) buildConnectionString() string {
	params := url.Values{}
	if o.Mode != "" {
		params.Set("mode", o.Mode)
	}
	if o.Cache != "" {
		params.Set("cache", string(o.Cache))
	}

	connStr := "file:" + o.Path
	if encoded := params.Encode(); encoded != "" {
		connStr += "?" + encoded
	}
	return connStr
}

// applyPragmas executes the PRAGMA commands not expressible in the DSN.
// All failures are collected so a single bad PRAGMA does not mask others.
func applyPragmas(conn *sql.DB, opts SQLiteOptions, logger zerolog.Logger) error {
	pragmas := map[string]string{}
	if opts.Journal != "" {
		pragmas["journal_mode"] = string(opts.Journal)
	}
	if opts.Synchronous != "" {
		pragmas["synchronous"] = string(opts.Synchronous)
	}
	pragmas["busy_timeout"] = fmt.Sprintf("%d", opts.BusyTimeout)
	if opts.ForeignKeys {
		pragmas["foreign_keys"] = "1"
	} else {
		pragmas["foreign_keys"] = "0"
	}

	var errs []error
	for name, value := range pragmas {
		query := fmt.Sprintf("PRAGMA %s = %s;", name, value)
		logger.Debug().Str("pragma", name).Str("value", value).Msg("Applying PRAGMA")
		if _, err := conn.Exec(query); err != nil {
			logger.Error().Err(err).Str("pragma", name).Str("value", value).Msg("Failed to apply PRAGMA")
			errs = append(errs, fmt.Errorf("failed to apply PRAGMA %s=%s: %w", name, value, err))
		}
	}
	return errors.Join(errs...)
}

// Conn returns the underlying database connection
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// WithTransaction executes fn within a transaction, rolling back when fn
// returns an error and committing otherwise.
func (db *DB) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		db.logger.Error().Err(err).Msg("Failed to start transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			db.logger.Error().Interface("panic", p).Msg("Panic during transaction, rolling back")
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				db.logger.Error().Err(rollbackErr).Msg("Failed to rollback transaction during panic recovery")
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			db.logger.Error().Err(rollbackErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		db.logger.Error().Err(err).Msg("Failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	db.logger.Debug().Msg("Closing database connection")
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// MigrateDatabase brings the schema up to date using the embedded
// migration files.
func (db *DB) MigrateDatabase() error {
	db.logger.Debug().Msg("Starting database migration")

	driver, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	subFS, err := fs.Sub(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("failed to create migration sub-filesystem: %w", err)
	}

	sourceInstance, err := iofs.New(subFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceInstance, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.logger.Error().Err(err).Msg("Migration failed")
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	db.logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database schema up to date")
	return nil
}
