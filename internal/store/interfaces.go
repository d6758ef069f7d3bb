package store

import (
	"context"

	"todoterm/internal/logger"
	"todoterm/models"
)

// Gateway is the narrow persistence interface the controllers depend on.
// All identifiers are caller-generated 32-bit values; methods report
// duplicate identifiers via [ErrConstraintViolation] so callers can retry
// with a fresh one.
type Gateway interface {
	// CreateUser inserts a new account row. Fails with
	// [ErrConstraintViolation] when the username or user_id already exists.
	CreateUser(ctx context.Context, username, password string, userID uint32) error

	// Authenticate returns the user records matching the exact
	// username/password pair: zero or one given the username uniqueness
	// constraint. Used both to log in and to verify absence before account
	// creation.
	Authenticate(ctx context.Context, username, password string) ([]models.User, error)

	// LoadLists reconstructs the full list/item tree owned by userID.
	// An unknown user yields an empty slice, not an error.
	LoadLists(ctx context.Context, userID uint32) ([]models.TodoList, error)

	// InsertList persists a new list row for userID.
	InsertList(ctx context.Context, name string, listID, userID uint32) error

	// InsertItem persists a new item row for listID, recording the creation
	// timestamp.
	InsertItem(ctx context.Context, name string, itemID, listID uint32, complete bool) error

	// RemoveList deletes the items owned by listID and then the list row,
	// inside a single transaction.
	RemoveList(ctx context.Context, listID, userID uint32) error

	// RemoveItem deletes one item row.
	RemoveItem(ctx context.Context, itemID, listID uint32) error

	// UpdateItemComplete persists a new completion flag together with the
	// completion timestamp.
	UpdateItemComplete(ctx context.Context, itemID, listID uint32, complete bool) error

	// RemoveUser deletes the user's items, lists and account row, inside a
	// single transaction.
	RemoveUser(ctx context.Context, userID uint32) error
}

// NewGateway constructs a [Gateway] backed by the provided database
// connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewGateway(db *DB, log *logger.Logger) Gateway {
	log.Debug().Msg("creating todo gateway")
	return &gateway{
		db:     db,
		logger: log,
	}
}

type gateway struct {
	db     *DB
	logger *logger.Logger
}
