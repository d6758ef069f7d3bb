package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by gateway methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConstraintViolation is returned when an INSERT collides with an
	// existing primary key or unique column (duplicate generated identifier,
	// duplicate username). It is always either retried with a fresh
	// identifier or reported as a user-facing message, never fatal.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrExecutingQuery is returned (wrapped) when executing a statement
	// against the database fails for a reason other than a constraint.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the target model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")
)

// isConstraintViolation reports whether err is an SQLite integrity
// constraint failure (duplicate primary key, unique column, foreign key).
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
