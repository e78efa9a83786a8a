package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("x"), want: Unclassified},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: UniqueViolation},
		{name: "wrapped fk", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), want: ForeignKeyViolation},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Unclassified},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Unclassified},
		{name: "syntax", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: Unclassified},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "plain error", err: errors.New("x"), want: Unclassified},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "fk", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: ForeignKeyViolation},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Unclassified},
		{name: "not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, want: Unclassified},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", ForeignKeyViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "/tmp/test.db", sqlitePath("sqlite:////tmp/test.db"))
	assert.Equal(t, "test.db", sqlitePath("sqlite:///test.db"))
	assert.Equal(t, "test.db", sqlitePath("sqlite:test.db"))
	assert.Equal(t, "/tmp/test.db", sqlitePath("/tmp/test.db"))
}
