package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintClass is the result type returned by [ClassifyConstraintError].
// It names the category of integrity-constraint failure reported by
// PostgreSQL so that repositories can translate driver errors into the
// domain error taxonomy without leaking raw SQLSTATE codes upward.
type ConstraintClass int

const (
	// NoConstraint indicates the error is not an integrity-constraint
	// violation (or not a PostgreSQL driver error at all).
	NoConstraint ConstraintClass = iota

	// UniqueConstraint covers SQLSTATE 23505: a duplicate key, e.g. a
	// second user with the same name or a second catalog for one seller.
	UniqueConstraint

	// ReferenceConstraint covers SQLSTATE 23503 and 23502: a foreign key
	// pointing at a missing row, or a NOT NULL column fed from an empty
	// subselect. Both mean the referenced entity does not exist.
	ReferenceConstraint
)

// ClassifyConstraintError attempts to unwrap err as a *pgconn.PgError and
// maps its SQLSTATE code to a [ConstraintClass].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes. Only Class 23 (integrity constraint
// violations) is distinguished; everything else is [NoConstraint].
func ClassifyConstraintError(err error) ConstraintClass {
	if err == nil {
		return NoConstraint
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NoConstraint
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueConstraint

	case pgerrcode.ForeignKeyViolation,
		pgerrcode.NotNullViolation:
		return ReferenceConstraint
	}

	return NoConstraint
}
