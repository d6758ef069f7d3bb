package models

// NotComplete is the date_complete marker stored for items that have not
// been checked off yet.
const NotComplete = "Not Complete"

// TodoItem is a single entry inside a TodoList.
type TodoItem struct {
	// ItemID uniquely identifies the item in the backing store.
	// math.MaxUint32 is reserved as a sentinel and is never issued.
	ItemID uint32

	// Name is the user-entered item text.
	Name string

	// Complete reports whether the item has been checked off.
	Complete bool

	// CreatedAt is the timestamp string recorded when the item was added.
	CreatedAt string

	// CompletedAt is the timestamp string recorded when the item was last
	// checked off, or NotComplete.
	CompletedAt string
}

// TableName returns the name of the database table
// associated with the TodoItem model.
func (i TodoItem) TableName() string {
	return "items"
}

// Toggle flips the completion state.
func (i *TodoItem) Toggle() {
	i.Complete = !i.Complete
}

// TodoList is a named, insertion-ordered collection of items owned by a user.
type TodoList struct {
	// ListID uniquely identifies the list in the backing store.
	// math.MaxUint32 is reserved as a sentinel and is never issued.
	ListID uint32

	// Name is the user-entered list name. No dedup constraint applies.
	Name string

	// Items holds the list entries in insertion order.
	Items []TodoItem
}

// TableName returns the name of the database table
// associated with the TodoList model.
func (l TodoList) TableName() string {
	return "lists"
}

// Add appends a new item to the list.
func (l *TodoList) Add(item TodoItem) {
	l.Items = append(l.Items, item)
}

// RemoveIndex removes the item at index. Returns false when index is out of
// bounds.
func (l *TodoList) RemoveIndex(index int) bool {
	if index < 0 || index >= len(l.Items) {
		return false
	}
	l.Items = append(l.Items[:index], l.Items[index+1:]...)
	return true
}

// Clear drops every item from the list. Returns true once the list is empty.
func (l *TodoList) Clear() bool {
	l.Items = l.Items[:0]
	return len(l.Items) == 0
}

// Len returns the number of items in the list.
func (l *TodoList) Len() int {
	return len(l.Items)
}
