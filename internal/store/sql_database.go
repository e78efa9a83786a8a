package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/migrations"
)

// DB is a pooled database handle together with the dialect-specific pieces
// the repositories need: the squirrel statement builder (placeholder format)
// and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN.
//
// postgres:// and postgresql:// URLs are opened with pgx; every other DSN is
// treated as an SQLite database file (an optional sqlite:// or sqlite: prefix
// is stripped).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, sqlitePath(dsn), log)
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// statementError maps a failed INSERT to a store sentinel where one applies
// and wraps it as [ErrExecutingStatement] otherwise.
func (db *DB) statementError(err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrDanglingReference, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// sqlitePath accepts SQLAlchemy-style URLs: sqlite:////tmp/x.db is the
// absolute path /tmp/x.db and sqlite:///x.db the relative path x.db.
func sqlitePath(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "sqlite:///"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		return rest
	}
	return dsn
}
