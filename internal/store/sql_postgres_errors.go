package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories whether a failed statement hit a constraint.
type ErrorClassification int

const (
	// Unclassified covers every failure that is not a constraint violation.
	// Repositories return these wrapped as is.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a unique or primary key constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates an insert referencing a missing row.
	ForeignKeyViolation
)

// String implements fmt.Stringer for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "unclassified"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps the SQLSTATE of pgErr to an [ErrorClassification]:
// 23505 unique_violation and 23503 foreign_key_violation. Any other code is
// [Unclassified].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	default:
		return Unclassified
	}
}
