package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/session"
)

// authModel is the Bubble Tea wrapper around the authentication controller.
// It only translates key events into controller calls and renders the
// controller's state; all authentication logic lives in [session.Auth].
type authModel struct {
	ctx  context.Context
	auth *session.Auth

	quitByUser bool
}

func newAuthModel(ctx context.Context, auth *session.Auth) authModel {
	return authModel{ctx: ctx, auth: auth}
}

func (m authModel) Init() tea.Cmd {
	return nil
}

func (m authModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.auth.State() {
	case session.AuthDefault:
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.auth.EnterInput()
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		}

	case session.AuthUserInput:
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.auth.Escape()
		case key.Matches(keyMsg, keys.up):
			m.auth.PrevFocus()
		case key.Matches(keyMsg, keys.down):
			m.auth.NextFocus()
		case key.Matches(keyMsg, keys.del):
			m.auth.Backspace()
		case key.Matches(keyMsg, keys.enter):
			m.auth.Confirm(m.ctx)
		default:
			if keyMsg.Type == tea.KeyRunes {
				for _, r := range keyMsg.Runes {
					m.auth.AddChar(r)
				}
			}
		}

	case session.AuthLoggedIn:
		// Any key hands control over to the session loop.
		return m, tea.Quit
	}

	return m, nil
}

func (m authModel) View() string {
	var body string

	switch m.auth.State() {
	case session.AuthDefault:
		body = m.auth.Message()
		return appStyle.Render(renderPage("Todo Terminal", body, "enter: login/create account │ q: quit"))

	case session.AuthUserInput, session.AuthLoggedIn:
		var b strings.Builder
		focus := m.auth.Focus()

		b.WriteString(inputBox("Username", m.auth.UsernameInput(), focus == session.FocusUsername))
		b.WriteString("\n")
		b.WriteString(inputBox("Password", strings.Repeat("*", len(m.auth.PasswordInput())), focus == session.FocusPassword))
		b.WriteString("\n\n")
		b.WriteString(button("Login", focus == session.FocusLogin))
		b.WriteString("\n")
		b.WriteString(button("Create Account", focus == session.FocusCreateAccount))
		b.WriteString("\n\n")
		b.WriteString(m.auth.Message())

		return appStyle.Render(renderPage("Todo Terminal — Login", b.String(), "up/down: move │ enter: confirm │ esc: back"))
	}

	return ""
}

func button(label string, focused bool) string {
	if focused {
		return selectedStyle.Render("> [" + label + "]")
	}
	return "  [" + label + "]"
}
