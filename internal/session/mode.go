package session

import (
	"context"
	"time"
)

// mode is the per-state input handler. Each action state implements it, so
// transition logic lives with the state it belongs to and illegal
// state/sub-selection combinations cannot be routed.
type mode interface {
	handleChar(r rune)
	handleConfirm(ctx context.Context)
	handleDelete(ctx context.Context)
	handleHorizontal()
	handleVertical(delta int)
}

func (c *Controller) currentMode() mode {
	switch c.state {
	case StateCaptureInput:
		return captureMode{c}
	case StateNavigate:
		return navigateMode{c}
	default:
		return defaultMode{}
	}
}

// defaultMode ignores everything; mode switching and quitting are decided by
// the caller feeding the controller.
type defaultMode struct{}

func (defaultMode) handleChar(rune)               {}
func (defaultMode) handleConfirm(context.Context) {}
func (defaultMode) handleDelete(context.Context)  {}
func (defaultMode) handleHorizontal()             {}
func (defaultMode) handleVertical(int)            {}

// captureMode edits the active name buffer and submits it on confirm.
type captureMode struct{ c *Controller }

func (m captureMode) handleChar(r rune) {
	switch m.c.box {
	case BoxList:
		m.c.inputList += string(r)
	case BoxItem:
		m.c.inputItem += string(r)
	}
}

func (m captureMode) handleConfirm(ctx context.Context) {
	switch m.c.box {
	case BoxList:
		m.c.addList(ctx)
	case BoxItem:
		m.c.addItem(ctx)
	}
}

// Backspace/delete erases one character while typing.
func (m captureMode) handleDelete(context.Context) {
	switch m.c.box {
	case BoxList:
		m.c.inputList = dropLastChar(m.c.inputList)
	case BoxItem:
		m.c.inputItem = dropLastChar(m.c.inputItem)
	}
}

func (m captureMode) handleHorizontal() {
	if m.c.box == BoxList {
		m.c.box = BoxItem
	} else {
		m.c.box = BoxList
	}
}

func (m captureMode) handleVertical(int) {}

// navigateMode moves the cursors and applies completion/deletion actions.
type navigateMode struct{ c *Controller }

func (navigateMode) handleChar(rune) {}

func (m navigateMode) handleConfirm(ctx context.Context) {
	switch m.c.pane {
	case PaneLists:
		// Selecting a list opens input capture for it.
		m.c.EnterCapture()
	case PaneItems:
		m.c.toggleComplete(ctx)
	}
}

func (m navigateMode) handleDelete(ctx context.Context) {
	switch m.c.pane {
	case PaneLists:
		m.c.deleteList(ctx)
	case PaneItems:
		m.c.deleteItem(ctx)
	}
}

func (m navigateMode) handleHorizontal() {
	if m.c.pane == PaneLists {
		m.c.pane = PaneItems
	} else {
		m.c.pane = PaneLists
	}
}

func (m navigateMode) handleVertical(delta int) { m.c.moveCursor(delta) }

func timestampNow() string {
	return time.Now().Format(time.RFC3339)
}
