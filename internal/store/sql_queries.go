package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `
		INSERT INTO users (username, password, user_id)
		VALUES (?, ?, ?);`

	insertList = `
		INSERT INTO lists (list_id, user_id, list_name)
		VALUES (?, ?, ?);`

	insertItem = `
		INSERT INTO items (
			item_id,
			list_id,
			item_name,
			date_created,
			date_complete,
			complete
		) VALUES (?, ?, ?, ?, ?, ?);`

	removeListItems = `
		DELETE FROM items WHERE list_id = ?;`

	removeList = `
		DELETE FROM lists WHERE list_id = ? AND user_id = ?;`

	removeItem = `
		DELETE FROM items WHERE list_id = ? AND item_id = ?;`

	updateItemComplete = `
		UPDATE items
		SET complete = ?, date_complete = ?
		WHERE item_id = ? AND list_id = ?;`

	removeUserItems = `
		DELETE FROM items
		WHERE list_id IN (SELECT list_id FROM lists WHERE user_id = ?);`

	removeUserLists = `
		DELETE FROM lists WHERE user_id = ?;`

	removeUser = `
		DELETE FROM users WHERE user_id = ?;`
)

// buildAuthenticateQuery builds the credential lookup. Conditions are added
// one by one so the argument order stays deterministic for tests.
func buildAuthenticateQuery(username, password string) (string, []any, error) {
	return sq.Select("user_id", "username", "password").
		From("users").
		Where(sq.Eq{"username": username}).
		Where(sq.Eq{"password": password}).
		ToSql()
}

func buildUserListsQuery(userID uint32) (string, []any, error) {
	return sq.Select("list_id", "list_name").
		From("lists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("rowid").
		ToSql()
}

func buildListItemsQuery(listID uint32) (string, []any, error) {
	return sq.Select("item_id", "item_name", "complete", "date_created", "date_complete").
		From("items").
		Where(sq.Eq{"list_id": listID}).
		OrderBy("rowid").
		ToSql()
}
