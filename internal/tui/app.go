package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/infra/layoutstore"
	"github.com/knocklabs/inbox-example-app/internal/projection"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
)

// Model is the main bubbletea model for the inbox TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Feed state
	items    []domain.FeedItem
	metadata domain.FeedMetadata

	// Facets for the filter pickers (first-seen order)
	facetStatuses []string
	facetLabels   []string

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	feedList list.Model

	// Input state
	commentInput textinput.Model

	// Layout
	layout layoutstore.Layout

	// Filters ("" or "all" = inactive)
	statusFilter string
	labelFilter  string

	// Numeric state (smaller types last)
	mode         Mode
	view         View
	tab          Tab
	fetchState   FetchState
	width        int
	height       int
	pickerCursor int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ci := textinput.New()
	ci.Placeholder = "Leave a comment..."
	ci.CharLimit = 500

	styles := DefaultStyles()
	delegate := newFeedDelegate(styles)
	feedList := list.New([]list.Item{}, delegate, 0, 0)
	feedList.SetShowTitle(false)
	feedList.SetShowStatusBar(false)
	feedList.SetShowHelp(false)
	feedList.SetShowPagination(false)
	feedList.SetFilteringEnabled(false)
	feedList.DisableQuitKeybindings()

	layout := layoutstore.DefaultLayout()
	if c != nil && c.Layout != nil {
		layout = c.Layout.Load()
	}

	return &Model{
		container:    c,
		mode:         ModeNormal,
		view:         ViewInbox,
		tab:          TabAll,
		fetchState:   FetchIdle,
		keys:         DefaultKeyMap(),
		styles:       styles,
		help:         help.New(),
		feedList:     feedList,
		commentInput: ci,
		layout:       layout,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.fetchFeed()
}

// fetchFeed returns a command that fetches the feed. The pending guard
// makes a second trigger while one is in flight a no-op.
func (m *Model) fetchFeed() tea.Cmd {
	if m.fetchState == FetchPending {
		return nil
	}
	m.fetchState = FetchPending
	return func() tea.Msg {
		out, err := m.container.FetchFeedUseCase().Execute(context.Background())
		if err != nil {
			return MsgFeedFailed{Err: err}
		}
		return MsgFeedLoaded{Items: out.Items, Metadata: out.Metadata}
	}
}

// markItem returns a command that applies a mark action to an item.
func (m *Model) markItem(itemID string, action usecase.MarkAction) tea.Cmd {
	return func() tea.Msg {
		err := m.container.MarkItemUseCase().Execute(context.Background(), usecase.MarkItemInput{
			ItemID: itemID,
			Action: action,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgItemMarked{ItemID: itemID, Action: action}
	}
}

// saveLayout returns a command that persists the pane layout.
func (m *Model) saveLayout() tea.Cmd {
	if m.container == nil || m.container.Layout == nil {
		return nil
	}
	layout := m.layout
	store := m.container.Layout
	return func() tea.Msg {
		return MsgLayoutSaved{Err: store.Save(layout)}
	}
}

// SelectedItem returns the currently selected feed item, or nil if none.
func (m *Model) SelectedItem() *domain.FeedItem {
	if fi, ok := m.feedList.SelectedItem().(feedListItem); ok {
		item := fi.item
		return &item
	}
	return nil
}

// visibleItems computes the on-screen slice of the feed for the current
// view, tab and filters.
func (m *Model) visibleItems() []domain.FeedItem {
	issues := m.container.Issues.All()
	active, archived := projection.Partition(m.items)

	switch {
	case m.view == ViewArchive:
		return projection.ApplyFilters(archived, m.statusFilter, m.labelFilter, issues)
	case m.tab == TabUnread:
		return projection.Unread(active, m.statusFilter, m.labelFilter, issues)
	default:
		return projection.ApplyFilters(active, m.statusFilter, m.labelFilter, issues)
	}
}

// updateFeedList refreshes the list component from the feed state and
// mirrors the cursor into the selection store.
func (m *Model) updateFeedList() {
	visible := m.visibleItems()
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, feedListItem{item: it})
	}
	m.feedList.SetItems(items)
	m.syncSelection()
}

// syncSelection writes the list cursor through to the selection store.
func (m *Model) syncSelection() {
	if m.container == nil || m.container.Selection == nil {
		return
	}
	if item := m.SelectedItem(); item != nil {
		m.container.Selection.Set(item.ID)
	} else {
		m.container.Selection.Clear()
	}
}

// updateFacets recomputes the filter picker options from the issue store.
func (m *Model) updateFacets() {
	m.facetStatuses, m.facetLabels = projection.Facets(m.container.Issues.All())
}

// pickerOptions returns the options for the active filter picker,
// prefixed with the "all" sentinel that clears the filter.
func (m *Model) pickerOptions() []string {
	var values []string
	if m.mode == ModeFilterStatus {
		values = m.facetStatuses
	} else {
		values = m.facetLabels
	}
	return append([]string{projection.FilterAll}, values...)
}
