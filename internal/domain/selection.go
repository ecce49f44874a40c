package domain

// SelectionStore is the single shared cell holding the id of the
// currently selected feed item. One instance is created per session
// and injected into every view that reads or writes it; mutation and
// read both happen on the UI event loop, so a plain field suffices.
type SelectionStore struct {
	selected string
}

// NewSelectionStore creates a selection store with no selection.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{}
}

// Get returns the currently selected feed item id, or "" if none.
func (s *SelectionStore) Get() string {
	return s.selected
}

// Set replaces the current selection. Readers observe the new value
// synchronously.
func (s *SelectionStore) Set(id string) {
	s.selected = id
}

// Clear removes the current selection.
func (s *SelectionStore) Clear() {
	s.selected = ""
}
