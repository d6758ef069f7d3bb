package store

import (
	"context"
	"fmt"
	"time"

	"todoterm/internal/logger"
	"todoterm/models"
)

// timestamp formats the creation/completion time strings stored next to
// each item row.
func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// LoadLists reconstructs the user's full list/item tree in insertion order.
// A user with no rows yields an empty slice.
func (g *gateway) LoadLists(ctx context.Context, userID uint32) ([]models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserListsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*gateway.LoadLists").Msg("failed to build lists query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*gateway.LoadLists").
			Uint32("user_id", userID).
			Msg("failed to query lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.TodoList, 0, 8)
	for rows.Next() {
		var l models.TodoList
		if scanErr := rows.Scan(&l.ListID, &l.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*gateway.LoadLists").Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lists = append(lists, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for i := range lists {
		items, itemsErr := g.loadListItems(ctx, lists[i].ListID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		lists[i].Items = items
	}

	return lists, nil
}

func (g *gateway) loadListItems(ctx context.Context, listID uint32) ([]models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(listID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*gateway.loadListItems").
			Uint32("list_id", listID).
			Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.TodoItem, 0, 16)
	for rows.Next() {
		var it models.TodoItem
		var complete int
		if scanErr := rows.Scan(&it.ItemID, &it.Name, &complete, &it.CreatedAt, &it.CompletedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*gateway.loadListItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		it.Complete = complete > 0
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// InsertList persists a new list row. A duplicate list_id surfaces as
// [ErrConstraintViolation] so the caller can regenerate the identifier.
func (g *gateway) InsertList(ctx context.Context, name string, listID, userID uint32) error {
	log := logger.FromContext(ctx)

	if _, err := g.db.ExecContext(ctx, insertList, listID, userID, name); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		log.Err(err).
			Str("func", "*gateway.InsertList").
			Uint32("list_id", listID).
			Msg("failed to insert list")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// InsertItem persists a new item row, stamping date_created with the current
// time and date_complete with the not-complete marker (unless the item is
// born complete).
func (g *gateway) InsertItem(ctx context.Context, name string, itemID, listID uint32, complete bool) error {
	log := logger.FromContext(ctx)

	completeFlag := 0
	completedAt := models.NotComplete
	if complete {
		completeFlag = 1
		completedAt = timestamp()
	}

	if _, err := g.db.ExecContext(ctx, insertItem, itemID, listID, name, timestamp(), completedAt, completeFlag); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		log.Err(err).
			Str("func", "*gateway.InsertItem").
			Uint32("item_id", itemID).
			Uint32("list_id", listID).
			Msg("failed to insert item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveList deletes the list's items and the list row as one transaction.
func (g *gateway) RemoveList(ctx context.Context, listID, userID uint32) error {
	log := logger.FromContext(ctx)

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*gateway.RemoveList").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, removeListItems, listID); err != nil {
		log.Err(err).
			Str("func", "*gateway.RemoveList").
			Uint32("list_id", listID).
			Msg("failed to delete list items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, removeList, listID, userID); err != nil {
		log.Err(err).
			Str("func", "*gateway.RemoveList").
			Uint32("list_id", listID).
			Msg("failed to delete list row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveItem deletes one item row.
func (g *gateway) RemoveItem(ctx context.Context, itemID, listID uint32) error {
	log := logger.FromContext(ctx)

	if _, err := g.db.ExecContext(ctx, removeItem, listID, itemID); err != nil {
		log.Err(err).
			Str("func", "*gateway.RemoveItem").
			Uint32("item_id", itemID).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpdateItemComplete persists a new completion flag, stamping or clearing
// date_complete to match.
func (g *gateway) UpdateItemComplete(ctx context.Context, itemID, listID uint32, complete bool) error {
	log := logger.FromContext(ctx)

	completeFlag := 0
	completedAt := models.NotComplete
	if complete {
		completeFlag = 1
		completedAt = timestamp()
	}

	if _, err := g.db.ExecContext(ctx, updateItemComplete, completeFlag, completedAt, itemID, listID); err != nil {
		log.Err(err).
			Str("func", "*gateway.UpdateItemComplete").
			Uint32("item_id", itemID).
			Msg("failed to update item completion")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
