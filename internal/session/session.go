package session

import (
	"context"
	"fmt"

	"todoterm/internal/logger"
	"todoterm/internal/store"
	"todoterm/models"
)

// ActionState is the session controller's primary state axis.
type ActionState int

const (
	// StateDefault allows switching into input capture or navigation, or
	// quitting the session.
	StateDefault ActionState = iota
	// StateCaptureInput routes keystrokes into the list/item name buffers.
	StateCaptureInput
	// StateNavigate moves the cursors across lists and items.
	StateNavigate
)

// InputBox selects which buffer receives keystrokes while capturing input.
type InputBox int

const (
	BoxList InputBox = iota
	BoxItem
)

// Pane selects which cursor navigation moves.
type Pane int

const (
	PaneLists Pane = iota
	PaneItems
)

// Per-mode footer help, carried over from the interactive flow this replaces.
const (
	defaultFooter  = "Press 1 to enter input. Press 2 to navigate. Press q to exit app."
	captureFooter  = "Press left or right arrow key to choose input box. Type a name and press enter to add it. Press esc to return to default."
	navigateFooter = "Press arrow keys to navigate. Press enter to cross off an item. Press backspace to remove an item or list. Press esc to return to default."
)

// Controller is the session state machine. It owns the in-memory list
// collection, both selection cursors and the in-progress input buffers, and
// keeps the persistence gateway in step with every mutation.
//
// Storage failures on mutating calls never abort the session: the in-memory
// state has already changed and stays authoritative, and the failure is
// logged and surfaced through Status.
type Controller struct {
	store store.Gateway
	log   *logger.Logger
	user  models.User

	lists []models.TodoList

	listIndex int
	itemIndex int

	state ActionState
	box   InputBox
	pane  Pane

	inputList string
	inputItem string

	status string
}

// NewController loads the user's full list tree and returns a controller in
// the default state. A load failure here is a startup failure and is
// returned to the caller.
func NewController(ctx context.Context, user models.User, gw store.Gateway, log *logger.Logger) (*Controller, error) {
	lists, err := gw.LoadLists(ctx, user.UserID)
	if err != nil {
		log.Err(err).Uint32("user_id", user.UserID).Msg("loading user lists failed")
		return nil, fmt.Errorf("load lists for user %q: %w", user.Username, err)
	}

	return &Controller{
		store:  gw,
		log:    log,
		user:   user,
		lists:  lists,
		status: defaultFooter,
	}, nil
}

// State returns the current action state.
func (c *Controller) State() ActionState { return c.state }

// Box returns the capture-input sub-selection.
func (c *Controller) Box() InputBox { return c.box }

// Pane returns the navigation sub-selection.
func (c *Controller) Pane() Pane { return c.pane }

// Lists returns the in-memory list collection.
func (c *Controller) Lists() []models.TodoList { return c.lists }

// ListIndex returns the list selection cursor.
func (c *Controller) ListIndex() int { return c.listIndex }

// ItemIndex returns the item selection cursor.
func (c *Controller) ItemIndex() int { return c.itemIndex }

// ListInput returns the pending list-name buffer.
func (c *Controller) ListInput() string { return c.inputList }

// ItemInput returns the pending item-name buffer.
func (c *Controller) ItemInput() string { return c.inputItem }

// Status returns the footer/status line.
func (c *Controller) Status() string { return c.status }

// Username returns the owning user's name.
func (c *Controller) Username() string { return c.user.Username }

// Mode names the current action state for display.
func (c *Controller) Mode() string {
	switch c.state {
	case StateCaptureInput:
		return "Input"
	case StateNavigate:
		return "Navigation"
	default:
		return "Default"
	}
}

// CurrentList returns the selected list. The second return is false when no
// lists exist.
func (c *Controller) CurrentList() (*models.TodoList, bool) {
	if len(c.lists) == 0 {
		return nil, false
	}
	return &c.lists[c.listIndex], true
}

// CurrentListName returns the selected list's name or a placeholder.
func (c *Controller) CurrentListName() string {
	if list, ok := c.CurrentList(); ok {
		return list.Name
	}
	return "No Active Lists"
}

// CurrentItem returns the selected item of the selected list. The second
// return is false when there is none.
func (c *Controller) CurrentItem() (models.TodoItem, bool) {
	list, ok := c.CurrentList()
	if !ok || list.Len() == 0 {
		return models.TodoItem{}, false
	}
	return list.Items[c.itemIndex], true
}

// EnterCapture switches into input capture with the list box active.
func (c *Controller) EnterCapture() {
	c.state = StateCaptureInput
	c.box = BoxList
	c.status = captureFooter
}

// EnterNavigate switches into navigation with the list pane active.
func (c *Controller) EnterNavigate() {
	c.state = StateNavigate
	c.pane = PaneLists
	c.status = navigateFooter
}

// EscapeToDefault backs out to the default state, discarding any in-progress
// input buffers.
func (c *Controller) EscapeToDefault() {
	c.state = StateDefault
	c.inputList = ""
	c.inputItem = ""
	c.status = defaultFooter
}

// HandleChar routes a character keystroke to the current mode.
func (c *Controller) HandleChar(r rune) { c.currentMode().handleChar(r) }

// HandleConfirm routes an enter keystroke to the current mode.
func (c *Controller) HandleConfirm(ctx context.Context) { c.currentMode().handleConfirm(ctx) }

// HandleDelete routes a backspace/delete keystroke to the current mode:
// while capturing input it erases a character, while navigating it deletes
// the selected list or item.
func (c *Controller) HandleDelete(ctx context.Context) { c.currentMode().handleDelete(ctx) }

// HandleLeft toggles the current mode's sub-selection.
func (c *Controller) HandleLeft() { c.currentMode().handleHorizontal() }

// HandleRight toggles the current mode's sub-selection.
func (c *Controller) HandleRight() { c.currentMode().handleHorizontal() }

// HandleUp moves the active cursor towards the front, wrapping at index 0.
func (c *Controller) HandleUp() { c.currentMode().handleVertical(-1) }

// HandleDown moves the active cursor towards the back, wrapping at the end.
func (c *Controller) HandleDown() { c.currentMode().handleVertical(+1) }

// addList drains the list buffer and persists a new list before appending it
// to the in-memory collection. Empty input is a silent no-op.
func (c *Controller) addList(ctx context.Context) {
	name := c.inputList
	c.inputList = ""
	if name == "" {
		return
	}

	listID, err := insertWithFreshID(ctx, func(ctx context.Context, id uint32) error {
		return c.store.InsertList(ctx, name, id, c.user.UserID)
	})
	if err != nil {
		c.fail("saving list", err)
		return
	}

	c.lists = append(c.lists, models.TodoList{ListID: listID, Name: name})
}

// addItem drains the item buffer and persists a new item into the selected
// list. Empty input is a silent no-op; with no list selected the input is
// dropped and a hint is shown.
func (c *Controller) addItem(ctx context.Context) {
	name := c.inputItem
	c.inputItem = ""
	if name == "" {
		return
	}

	list, ok := c.CurrentList()
	if !ok {
		c.status = "Create a list before adding items."
		return
	}

	itemID, err := insertWithFreshID(ctx, func(ctx context.Context, id uint32) error {
		return c.store.InsertItem(ctx, name, id, list.ListID, false)
	})
	if err != nil {
		c.fail("saving item", err)
		return
	}

	list.Add(models.TodoItem{
		ItemID:      itemID,
		Name:        name,
		CreatedAt:   timestampNow(),
		CompletedAt: models.NotComplete,
	})
}

// deleteList removes the selected list in memory first, then issues the
// cascading delete against the gateway. Deleting the last-indexed list moves
// the cursor to the new last list.
func (c *Controller) deleteList(ctx context.Context) {
	n := len(c.lists)
	if n == 0 {
		return
	}

	listID := c.lists[c.listIndex].ListID
	cleared := c.lists[c.listIndex].Clear()
	c.lists = append(c.lists[:c.listIndex], c.lists[c.listIndex+1:]...)

	if cleared {
		if err := c.store.RemoveList(ctx, listID, c.user.UserID); err != nil {
			c.fail("removing list", err)
		}
	}

	if n-1 > 0 && c.listIndex == n-1 {
		c.listIndex--
	}
	c.itemIndex = 0
}

// deleteItem removes the selected item of the selected list, in memory first
// and then from storage, adjusting the cursor when the last element went.
func (c *Controller) deleteItem(ctx context.Context) {
	list, ok := c.CurrentList()
	if !ok {
		return
	}

	n := list.Len()
	if n == 0 {
		return
	}

	itemID := list.Items[c.itemIndex].ItemID
	if list.RemoveIndex(c.itemIndex) {
		if err := c.store.RemoveItem(ctx, itemID, list.ListID); err != nil {
			c.fail("removing item", err)
		}
	}

	if n-1 > 0 && c.itemIndex == n-1 {
		c.itemIndex--
	}
}

// toggleComplete flips the selected item's completion state and persists the
// new flag.
func (c *Controller) toggleComplete(ctx context.Context) {
	list, ok := c.CurrentList()
	if !ok || list.Len() == 0 {
		return
	}

	item := &list.Items[c.itemIndex]
	item.Toggle()
	if item.Complete {
		item.CompletedAt = timestampNow()
	} else {
		item.CompletedAt = models.NotComplete
	}

	if err := c.store.UpdateItemComplete(ctx, item.ItemID, list.ListID, item.Complete); err != nil {
		c.fail("updating item", err)
	}
}

// moveCursor shifts the active pane's cursor by delta with wraparound.
// Empty collections are a no-op. Changing the selected list resets the item
// cursor so it always points into the current list.
func (c *Controller) moveCursor(delta int) {
	switch c.pane {
	case PaneLists:
		n := len(c.lists)
		if n == 0 {
			return
		}
		c.listIndex = (c.listIndex + delta + n) % n
		c.itemIndex = 0
	case PaneItems:
		list, ok := c.CurrentList()
		if !ok {
			return
		}
		n := list.Len()
		if n == 0 {
			return
		}
		c.itemIndex = (c.itemIndex + delta + n) % n
	}
}

func (c *Controller) fail(op string, err error) {
	c.log.Err(err).Str("op", op).Msg("storage call failed")
	c.status = fmt.Sprintf("Storage error while %s: %v", op, err)
}
