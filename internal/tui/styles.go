package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Feed item state
	UnreadDot lipgloss.Color

	// Priority colors
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color

	// Issue status colors
	Backlog    lipgloss.Color
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Open       lipgloss.Color
	Closed     lipgloss.Color
}{
	Primary:   lipgloss.Color("#E94F2E"), // Knock red
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	UnreadDot: lipgloss.Color("#E94F2E"),

	PriorityHigh:   lipgloss.Color("#D63031"),
	PriorityMedium: lipgloss.Color("#FDCB6E"),
	PriorityLow:    lipgloss.Color("#74B9FF"),

	Backlog:    lipgloss.Color("#636E72"), // Gray
	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Open:       lipgloss.Color("#00B894"), // Green
	Closed:     lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Nav pane
	Nav            lipgloss.Style
	NavItem        lipgloss.Style
	NavItemActive  lipgloss.Style
	NavUnreadCount lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Feed list
	ItemTitle         lipgloss.Style
	ItemTitleSelected lipgloss.Style
	ItemDesc          lipgloss.Style
	ItemTime          lipgloss.Style
	ItemLabel         lipgloss.Style
	ItemLabelSelected lipgloss.Style
	UnreadDot         lipgloss.Style
	SelectionCursor   lipgloss.Style

	// Detail pane
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	DetailBody  lipgloss.Style
	Comment     lipgloss.Style

	// Picker
	PickerCursor lipgloss.Style
	PickerItem   lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Nav: lipgloss.NewStyle().
			PaddingRight(2),

		NavItem: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		NavItemActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		NavUnreadCount: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Padding(0, 1).
			Underline(true),

		ItemTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		ItemTime: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ItemLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ItemLabelSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		UnreadDot: lipgloss.NewStyle().
			Foreground(Colors.UnreadDot).
			Bold(true),

		SelectionCursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),

		DetailBody: lipgloss.NewStyle().
			Foreground(Colors.DescNormal).
			MarginTop(1),

		Comment: lipgloss.NewStyle().
			Foreground(Colors.DescNormal).
			PaddingLeft(2),

		PickerCursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		PickerItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusStyle returns the style for a given issue status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusBacklog:
		return lipgloss.NewStyle().Foreground(Colors.Backlog)
	case domain.StatusTodo:
		return lipgloss.NewStyle().Foreground(Colors.Todo)
	case domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(Colors.InProgress)
	case domain.StatusOpen:
		return lipgloss.NewStyle().Foreground(Colors.Open)
	case domain.StatusClosed:
		return lipgloss.NewStyle().Foreground(Colors.Closed)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Muted)
	}
}

// PriorityStyle returns the style for a given issue priority.
func (s Styles) PriorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(Colors.PriorityHigh)
	case domain.PriorityMedium:
		return lipgloss.NewStyle().Foreground(Colors.PriorityMedium)
	case domain.PriorityLow:
		return lipgloss.NewStyle().Foreground(Colors.PriorityLow)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Muted)
	}
}

// PriorityIcon returns an icon for a given priority.
func PriorityIcon(priority domain.Priority) string {
	switch priority {
	case domain.PriorityHigh:
		return "▲"
	case domain.PriorityMedium:
		return "■"
	case domain.PriorityLow:
		return "▽"
	default:
		return "·"
	}
}
