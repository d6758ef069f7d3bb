package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/logger"
	"todoterm/internal/session"
	"todoterm/internal/store"
	"todoterm/models"
)

// ErrUserQuit reports that the user left the program before logging in.
var ErrUserQuit = errors.New("user quit")

// TUI owns the two consecutive interactive programs: the authentication
// flow and the main session loop.
type TUI struct {
	store store.Gateway
	log   *logger.Logger
}

func New(gw store.Gateway, log *logger.Logger) *TUI {
	return &TUI{store: gw, log: log}
}

// AuthFlow runs the authentication screens until a login succeeds or the
// user quits. On success the authenticated identity is returned.
func (t *TUI) AuthFlow(ctx context.Context) (models.User, error) {
	auth := session.NewAuth(t.store, t.log)

	model := newAuthModel(ctx, auth)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(authModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	user, ok := auth.Identity()
	if !ok {
		return models.User{}, ErrUserQuit
	}

	return user, nil
}

// MainLoop loads the user's lists and drives the session until exit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) error {
	ctl, err := session.NewController(ctx, user, t.store, t.log)
	if err != nil {
		return err
	}

	model := newSessionModel(ctx, ctl)
	if _, err = tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return nil
}
