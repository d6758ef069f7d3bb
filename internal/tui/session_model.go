package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/session"
)

// sessionModel is the Bubble Tea wrapper around the session controller. Key
// events are translated into controller calls; each event is processed
// synchronously to completion (persistence included) before the next one is
// accepted.
type sessionModel struct {
	ctx context.Context
	ctl *session.Controller

	notice string
}

func newSessionModel(ctx context.Context, ctl *session.Controller) sessionModel {
	return sessionModel{ctx: ctx, ctl: ctl}
}

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.notice = "Copied!"
		return m, cmdClearNotice()
	case copyFailedMsg:
		m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearNotice()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m sessionModel) handleKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.ctl.State() {
	case session.StateDefault:
		switch {
		case key.Matches(keyMsg, keys.capture):
			m.ctl.EnterCapture()
		case key.Matches(keyMsg, keys.navigate):
			m.ctl.EnterNavigate()
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		}

	case session.StateCaptureInput:
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.ctl.EscapeToDefault()
		case key.Matches(keyMsg, keys.left):
			m.ctl.HandleLeft()
		case key.Matches(keyMsg, keys.right):
			m.ctl.HandleRight()
		case key.Matches(keyMsg, keys.enter):
			m.ctl.HandleConfirm(m.ctx)
		case key.Matches(keyMsg, keys.del):
			m.ctl.HandleDelete(m.ctx)
		default:
			if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
				for _, r := range keyRunes(keyMsg) {
					m.ctl.HandleChar(r)
				}
			}
		}

	case session.StateNavigate:
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.ctl.EscapeToDefault()
		case key.Matches(keyMsg, keys.left):
			m.ctl.HandleLeft()
		case key.Matches(keyMsg, keys.right):
			m.ctl.HandleRight()
		case key.Matches(keyMsg, keys.up):
			m.ctl.HandleUp()
		case key.Matches(keyMsg, keys.down):
			m.ctl.HandleDown()
		case key.Matches(keyMsg, keys.enter):
			m.ctl.HandleConfirm(m.ctx)
		case key.Matches(keyMsg, keys.del):
			m.ctl.HandleDelete(m.ctx)
		case key.Matches(keyMsg, keys.copyName):
			if item, ok := m.ctl.CurrentItem(); ok {
				return m, cmdCopyToClipboard(item.Name)
			}
		}
	}

	return m, nil
}

func (m sessionModel) View() string {
	var b strings.Builder

	listSelected := m.ctl.State() == session.StateNavigate && m.ctl.Pane() == session.PaneLists
	itemSelected := m.ctl.State() == session.StateNavigate && m.ctl.Pane() == session.PaneItems

	b.WriteString("Lists")
	if listSelected {
		b.WriteString("  ◂▸")
	}
	b.WriteString("\n")
	if len(m.ctl.Lists()) == 0 {
		b.WriteString("  No Active Lists\n")
	}
	for i, list := range m.ctl.Lists() {
		cursor := "  "
		if i == m.ctl.ListIndex() {
			cursor = "> "
		}
		line := cursor + list.Name
		if i == m.ctl.ListIndex() && listSelected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Items — ")
	b.WriteString(m.ctl.CurrentListName())
	if itemSelected {
		b.WriteString("  ◂▸")
	}
	b.WriteString("\n")
	if list, ok := m.ctl.CurrentList(); ok {
		for i, item := range list.Items {
			cursor := "  "
			if i == m.ctl.ItemIndex() {
				cursor = "> "
			}
			check := "[ ] "
			name := item.Name
			if item.Complete {
				check = "[x] "
				name = completeStyle.Render(name)
			}
			line := cursor + check + name
			if i == m.ctl.ItemIndex() && itemSelected {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.ctl.State() == session.StateCaptureInput {
		b.WriteString("\n")
		b.WriteString(inputBox("New list", m.ctl.ListInput(), m.ctl.Box() == session.BoxList))
		b.WriteString("\n")
		b.WriteString(inputBox("New item", m.ctl.ItemInput(), m.ctl.Box() == session.BoxItem))
		b.WriteString("\n")
	}

	footer := m.ctl.Status()
	if m.notice != "" {
		footer = m.notice + "\n" + footer
	}

	title := fmt.Sprintf("Todo Terminal — %s (%s)", m.ctl.Username(), m.ctl.Mode())
	return appStyle.Render(renderPage(title, b.String(), footer))
}

func keyRunes(keyMsg tea.KeyMsg) []rune {
	if keyMsg.Type == tea.KeySpace {
		return []rune{' '}
	}
	return keyMsg.Runes
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
