package tui

import (
	"context"

	"todoterm/internal/store"
	"todoterm/models"
)

// stubGateway is a minimal in-memory store.Gateway for driving the Bubble Tea
// models through their key routing.
type stubGateway struct {
	users map[string]models.User
	lists []models.TodoList
}

func newStubGateway() *stubGateway {
	return &stubGateway{users: make(map[string]models.User)}
}

func (s *stubGateway) CreateUser(_ context.Context, username, password string, userID uint32) error {
	s.users[username] = models.User{UserID: userID, Username: username, Password: password}
	return nil
}

func (s *stubGateway) Authenticate(_ context.Context, username, password string) ([]models.User, error) {
	if u, ok := s.users[username]; ok && u.Password == password {
		return []models.User{u}, nil
	}
	return nil, nil
}

func (s *stubGateway) LoadLists(context.Context, uint32) ([]models.TodoList, error) {
	return s.lists, nil
}

func (s *stubGateway) InsertList(_ context.Context, name string, listID, _ uint32) error {
	s.lists = append(s.lists, models.TodoList{ListID: listID, Name: name})
	return nil
}

func (s *stubGateway) InsertItem(context.Context, string, uint32, uint32, bool) error {
	return nil
}

func (s *stubGateway) RemoveList(_ context.Context, listID, _ uint32) error {
	for i, l := range s.lists {
		if l.ListID == listID {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubGateway) RemoveItem(context.Context, uint32, uint32) error { return nil }

func (s *stubGateway) UpdateItemComplete(context.Context, uint32, uint32, bool) error { return nil }

func (s *stubGateway) RemoveUser(_ context.Context, userID uint32) error {
	for name, u := range s.users {
		if u.UserID == userID {
			delete(s.users, name)
		}
	}
	return nil
}

var _ store.Gateway = (*stubGateway)(nil)
