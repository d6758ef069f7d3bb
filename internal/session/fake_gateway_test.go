package session

import (
	"context"
	"fmt"

	"todoterm/internal/store"
	"todoterm/models"
)

// fakeGateway is an in-memory store.Gateway. It enforces the same
// uniqueness rules as the real store and doubles as the reference model for
// round-trip assertions.
type fakeGateway struct {
	users map[uint32]models.User
	lists []fakeList
	items map[uint32][]fakeItem

	// forcedConstraints makes the next N inserts fail with a constraint
	// violation regardless of the identifier.
	forcedConstraints int
	// failNext makes the next mutating call fail with this error.
	failNext error

	insertCalls int
}

type fakeList struct {
	id     uint32
	userID uint32
	name   string
}

type fakeItem struct {
	id       uint32
	name     string
	complete bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		users: make(map[uint32]models.User),
		items: make(map[uint32][]fakeItem),
	}
}

func (f *fakeGateway) takeErr() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func constraintErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", store.ErrConstraintViolation, fmt.Sprintf(format, args...))
}

func (f *fakeGateway) CreateUser(_ context.Context, username, password string, userID uint32) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	if f.forcedConstraints > 0 {
		f.forcedConstraints--
		return constraintErr("forced")
	}
	if _, ok := f.users[userID]; ok {
		return constraintErr("duplicate user_id %d", userID)
	}
	for _, u := range f.users {
		if u.Username == username {
			return constraintErr("duplicate username %q", username)
		}
	}
	f.users[userID] = models.User{UserID: userID, Username: username, Password: password}
	return nil
}

func (f *fakeGateway) Authenticate(_ context.Context, username, password string) ([]models.User, error) {
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	matches := make([]models.User, 0, 1)
	for _, u := range f.users {
		if u.Username == username && u.Password == password {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (f *fakeGateway) LoadLists(_ context.Context, userID uint32) ([]models.TodoList, error) {
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	out := make([]models.TodoList, 0, len(f.lists))
	for _, l := range f.lists {
		if l.userID != userID {
			continue
		}
		list := models.TodoList{ListID: l.id, Name: l.name}
		for _, it := range f.items[l.id] {
			list.Items = append(list.Items, models.TodoItem{
				ItemID:      it.id,
				Name:        it.name,
				Complete:    it.complete,
				CompletedAt: models.NotComplete,
			})
		}
		out = append(out, list)
	}
	return out, nil
}

func (f *fakeGateway) InsertList(_ context.Context, name string, listID, userID uint32) error {
	f.insertCalls++
	if err := f.takeErr(); err != nil {
		return err
	}
	if f.forcedConstraints > 0 {
		f.forcedConstraints--
		return constraintErr("forced")
	}
	for _, l := range f.lists {
		if l.id == listID {
			return constraintErr("duplicate list_id %d", listID)
		}
	}
	f.lists = append(f.lists, fakeList{id: listID, userID: userID, name: name})
	return nil
}

func (f *fakeGateway) InsertItem(_ context.Context, name string, itemID, listID uint32, complete bool) error {
	f.insertCalls++
	if err := f.takeErr(); err != nil {
		return err
	}
	if f.forcedConstraints > 0 {
		f.forcedConstraints--
		return constraintErr("forced")
	}
	for _, items := range f.items {
		for _, it := range items {
			if it.id == itemID {
				return constraintErr("duplicate item_id %d", itemID)
			}
		}
	}
	f.items[listID] = append(f.items[listID], fakeItem{id: itemID, name: name, complete: complete})
	return nil
}

func (f *fakeGateway) RemoveList(_ context.Context, listID, userID uint32) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	delete(f.items, listID)
	for i, l := range f.lists {
		if l.id == listID && l.userID == userID {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeGateway) RemoveItem(_ context.Context, itemID, listID uint32) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	items := f.items[listID]
	for i, it := range items {
		if it.id == itemID {
			f.items[listID] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeGateway) UpdateItemComplete(_ context.Context, itemID, listID uint32, complete bool) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	items := f.items[listID]
	for i := range items {
		if items[i].id == itemID {
			items[i].complete = complete
			break
		}
	}
	return nil
}

func (f *fakeGateway) RemoveUser(_ context.Context, userID uint32) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	kept := f.lists[:0]
	for _, l := range f.lists {
		if l.userID == userID {
			delete(f.items, l.id)
			continue
		}
		kept = append(kept, l)
	}
	f.lists = kept
	delete(f.users, userID)
	return nil
}

func (f *fakeGateway) itemsOf(listID uint32) []fakeItem {
	return f.items[listID]
}

var _ store.Gateway = (*fakeGateway)(nil)
