package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Views and tabs
	ToggleView key.Binding // Switch between Inbox and Archive
	ToggleTab  key.Binding // Switch between All and Unread
	ToggleNav  key.Binding // Collapse/expand the nav pane

	// Item actions
	Read      key.Binding // Mark selected item as read
	Unread    key.Binding // Mark selected item as unread
	Archive   key.Binding // Archive selected item (marks read first)
	Unarchive key.Binding // Unarchive selected item
	Comment   key.Binding // Open the comment composer

	// Filters
	FilterStatus key.Binding // Open the status filter picker
	FilterLabel  key.Binding // Open the label filter picker
	ClearFilters key.Binding // Reset both filters

	// View
	Refresh key.Binding // Refetch the feed
	Help    key.Binding // Show help

	// General
	Quit   key.Binding // Quit application
	Escape key.Binding // Cancel/back
	Enter  key.Binding // Confirm selection
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "inbox/archive"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all/unread"),
		),
		ToggleNav: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle nav"),
		),
		Read: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark read"),
		),
		Unread: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "mark unread"),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		Unarchive: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "unarchive"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status filter"),
		),
		FilterLabel: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "label filter"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleTab, k.ToggleView, k.Read, k.Archive, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleTab, k.ToggleView, k.ToggleNav},    // Navigation
		{k.Read, k.Unread, k.Archive, k.Unarchive, k.Comment},     // Item actions
		{k.FilterStatus, k.FilterLabel, k.ClearFilters},           // Filters
		{k.Refresh, k.Help, k.Quit},                               // General
	}
}
