package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoterm/internal/logger"
	"todoterm/internal/session"
	"todoterm/models"
)

func newTestSessionModel(t *testing.T, gw *stubGateway) (sessionModel, *session.Controller) {
	t.Helper()

	user := models.User{UserID: 3, Username: "alice"}
	ctl, err := session.NewController(context.Background(), user, gw, logger.Nop())
	require.NoError(t, err)

	return newSessionModel(context.Background(), ctl), ctl
}

func TestSessionModelCaptureFlow(t *testing.T) {
	m, ctl := newTestSessionModel(t, newStubGateway())

	var model tea.Model = m
	model, _ = press(model, runeKey("1"))
	require.Equal(t, session.StateCaptureInput, ctl.State())

	model, _ = press(model, runeKey("Groceries"))
	assert.Equal(t, "Groceries", ctl.ListInput())

	model, _ = press(model, specialKey(tea.KeyEnter))
	require.Len(t, ctl.Lists(), 1)
	assert.Equal(t, "Groceries", ctl.Lists()[0].Name)

	_, _ = press(model, specialKey(tea.KeyEsc))
	assert.Equal(t, session.StateDefault, ctl.State())
}

func TestSessionModelSpaceTypesIntoBuffer(t *testing.T) {
	m, ctl := newTestSessionModel(t, newStubGateway())

	var model tea.Model = m
	model, _ = press(model, runeKey("1"))
	model, _ = press(model, runeKey("Weekend"))
	model, _ = press(model, specialKey(tea.KeySpace))
	_, _ = press(model, runeKey("Chores"))

	assert.Equal(t, "Weekend Chores", ctl.ListInput())
}

func TestSessionModelNavigationRouting(t *testing.T) {
	gw := newStubGateway()
	gw.lists = []models.TodoList{
		{ListID: 1, Name: "Groceries"},
		{ListID: 2, Name: "Chores"},
	}
	m, ctl := newTestSessionModel(t, gw)

	var model tea.Model = m
	model, _ = press(model, runeKey("2"))
	require.Equal(t, session.StateNavigate, ctl.State())
	require.Equal(t, session.PaneLists, ctl.Pane())

	model, _ = press(model, specialKey(tea.KeyDown))
	assert.Equal(t, 1, ctl.ListIndex())

	model, _ = press(model, specialKey(tea.KeyRight))
	assert.Equal(t, session.PaneItems, ctl.Pane())

	_, _ = press(model, specialKey(tea.KeyLeft))
	assert.Equal(t, session.PaneLists, ctl.Pane())
}

func TestSessionModelDeleteListViaBackspace(t *testing.T) {
	gw := newStubGateway()
	gw.lists = []models.TodoList{{ListID: 1, Name: "Groceries"}}
	m, ctl := newTestSessionModel(t, gw)

	var model tea.Model = m
	model, _ = press(model, runeKey("2"))
	_, _ = press(model, specialKey(tea.KeyBackspace))

	assert.Empty(t, ctl.Lists())
	assert.Empty(t, gw.lists)
}

func TestSessionModelQuitKeys(t *testing.T) {
	m, _ := newTestSessionModel(t, newStubGateway())

	_, cmd := press(m, runeKey("q"))
	assert.True(t, isQuit(t, cmd))

	m2, _ := newTestSessionModel(t, newStubGateway())
	_, cmd = press(m2, specialKey(tea.KeyCtrlC))
	assert.True(t, isQuit(t, cmd))
}

func TestSessionModelQTypesWhileCapturing(t *testing.T) {
	m, ctl := newTestSessionModel(t, newStubGateway())

	var model tea.Model = m
	model, _ = press(model, runeKey("1"))
	_, cmd := press(model, runeKey("q"))

	assert.False(t, isQuit(t, cmd), "q is a literal character while capturing input")
	assert.Equal(t, "q", ctl.ListInput())
}

func TestSessionModelCopyCommandOnSelectedItem(t *testing.T) {
	gw := newStubGateway()
	gw.lists = []models.TodoList{{
		ListID: 1,
		Name:   "Groceries",
		Items:  []models.TodoItem{{ItemID: 10, Name: "Milk", CompletedAt: models.NotComplete}},
	}}
	m, _ := newTestSessionModel(t, gw)

	var model tea.Model = m
	model, _ = press(model, runeKey("2"))
	model, _ = press(model, specialKey(tea.KeyRight))
	_, cmd := press(model, runeKey("c"))

	assert.NotNil(t, cmd, "copy produces a clipboard command")
}

func TestSessionModelNoticeLifecycle(t *testing.T) {
	m, _ := newTestSessionModel(t, newStubGateway())

	var model tea.Model = m
	model, cmd := press(model, copiedMsg{})
	assert.Contains(t, model.View(), "Copied!")
	assert.NotNil(t, cmd, "a clear is scheduled")

	model, _ = press(model, clearStatusMsg{})
	assert.NotContains(t, model.View(), "Copied!")
}

func TestSessionModelViewStates(t *testing.T) {
	gw := newStubGateway()
	gw.lists = []models.TodoList{{
		ListID: 1,
		Name:   "Groceries",
		Items: []models.TodoItem{
			{ItemID: 10, Name: "Milk", Complete: true, CompletedAt: "2026-08-31T09:00:00Z"},
			{ItemID: 11, Name: "Eggs", CompletedAt: models.NotComplete},
		},
	}}
	m, _ := newTestSessionModel(t, gw)

	view := m.View()
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[ ]")
	assert.Contains(t, view, "alice")

	var model tea.Model = m
	model, _ = press(model, runeKey("1"))
	view = model.View()
	assert.Contains(t, view, "New list")
	assert.Contains(t, view, "New item")
}

func TestSessionModelEmptyView(t *testing.T) {
	m, _ := newTestSessionModel(t, newStubGateway())

	view := m.View()
	assert.Contains(t, view, "No Active Lists")
}
