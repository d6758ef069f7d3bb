package store

import (
	"context"
	"fmt"

	"todoterm/internal/logger"
	"todoterm/models"
)

// CreateUser persists a new account row with a caller-generated user_id.
//
// Error handling:
//   - SQLite constraint failure (duplicate username or user_id) →
//     [ErrConstraintViolation].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (g *gateway) CreateUser(ctx context.Context, username, password string, userID uint32) error {
	log := logger.FromContext(ctx)

	if _, err := g.db.ExecContext(ctx, createUser, username, password, userID); err != nil {
		if isConstraintViolation(err) {
			log.Debug().
				Str("func", "*gateway.CreateUser").
				Str("username", username).
				Msg("constraint violation on user insert")
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}

		log.Err(err).Str("func", "*gateway.CreateUser").Msg("failed to insert user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Authenticate looks up user records by exact username/password equality.
// The result carries zero or one entries; the caller decides what either
// cardinality means (login hit, or room for a new account).
func (g *gateway) Authenticate(ctx context.Context, username, password string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAuthenticateQuery(username, password)
	if err != nil {
		log.Err(err).Str("func", "*gateway.Authenticate").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gateway.Authenticate").Msg("failed to execute credentials query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 1)
	for rows.Next() {
		var u models.User
		if scanErr := rows.Scan(&u.UserID, &u.Username, &u.Password); scanErr != nil {
			log.Err(scanErr).Str("func", "*gateway.Authenticate").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// RemoveUser deletes the user's items, lists and account row as one
// transaction, so a partial failure cannot strand orphaned rows.
func (g *gateway) RemoveUser(ctx context.Context, userID uint32) error {
	log := logger.FromContext(ctx)

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*gateway.RemoveUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, removeUserItems, userID); err != nil {
		log.Err(err).Str("func", "*gateway.RemoveUser").Msg("failed to delete user items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, removeUserLists, userID); err != nil {
		log.Err(err).Str("func", "*gateway.RemoveUser").Msg("failed to delete user lists")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, removeUser, userID); err != nil {
		log.Err(err).Str("func", "*gateway.RemoveUser").Msg("failed to delete user row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
