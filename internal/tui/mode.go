// Package tui provides the terminal user interface for the inbox demo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal       Mode = iota // Default navigation mode
	ModeFilterStatus             // Status filter picker
	ModeFilterLabel              // Label filter picker
	ModeCompose                  // Comment composer
	ModeComposeDone              // Confirmation after comment submit
	ModeHelp                     // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilterStatus:
		return "filter_status"
	case ModeFilterLabel:
		return "filter_label"
	case ModeCompose:
		return "compose"
	case ModeComposeDone:
		return "compose_done"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts free text input.
func (m Mode) IsInputMode() bool {
	return m == ModeCompose
}

// View identifies which feed partition is on screen.
type View int

const (
	ViewInbox   View = iota // Active (non-archived) items
	ViewArchive             // Archived items
)

// String returns the display name of the view.
func (v View) String() string {
	if v == ViewArchive {
		return "Archive"
	}
	return "Inbox"
}

// Tab restricts the inbox view to all or unread items.
type Tab int

const (
	TabAll Tab = iota
	TabUnread
)

// String returns the display name of the tab.
func (t Tab) String() string {
	if t == TabUnread {
		return "Unread"
	}
	return "All"
}

// FetchState tracks the lifecycle of the async feed fetch.
type FetchState int

const (
	FetchIdle    FetchState = iota
	FetchPending            // Request in flight; re-trigger is a no-op
	FetchSuccess
	FetchFailed
)

// String returns the string representation of the fetch state.
func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchPending:
		return "pending"
	case FetchSuccess:
		return "success"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}
