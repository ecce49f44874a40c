package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/projection"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizePanes()
		return m, nil

	case MsgFeedLoaded:
		m.fetchState = FetchSuccess
		m.items = msg.Items
		m.metadata = msg.Metadata
		m.updateFacets()
		m.updateFeedList()
		return m, nil

	case MsgFeedFailed:
		m.fetchState = FetchFailed
		m.err = msg.Err
		return m, nil

	case MsgItemMarked:
		// Refetch so read/archive state reflects the service.
		return m, m.fetchFeed()

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil

	case MsgLayoutSaved:
		// Persistence failures are non-fatal; keep the in-memory layout.
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear a stale error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilterStatus, ModeFilterLabel:
		return m.handlePickerMode(msg)
	case ModeCompose:
		return m.handleComposeMode(msg)
	case ModeComposeDone:
		return m.handleComposeDoneMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.feedList, cmd = m.feedList.Update(msg)
		m.syncSelection()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleView):
		if m.view == ViewInbox {
			m.view = ViewArchive
		} else {
			m.view = ViewInbox
		}
		m.updateFeedList()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTab):
		if m.view != ViewInbox {
			return m, nil
		}
		if m.tab == TabAll {
			m.tab = TabUnread
		} else {
			m.tab = TabAll
		}
		m.updateFeedList()
		return m, nil

	case key.Matches(msg, m.keys.ToggleNav):
		m.layout.Collapsed = !m.layout.Collapsed
		m.resizePanes()
		return m, m.saveLayout()

	case key.Matches(msg, m.keys.Read):
		if item := m.SelectedItem(); item != nil {
			return m, m.markItem(item.ID, usecase.MarkRead)
		}
		return m, nil

	case key.Matches(msg, m.keys.Unread):
		if item := m.SelectedItem(); item != nil {
			return m, m.markItem(item.ID, usecase.MarkUnread)
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		if item := m.SelectedItem(); item != nil && !item.IsArchived() {
			return m, m.markItem(item.ID, usecase.MarkArchived)
		}
		return m, nil

	case key.Matches(msg, m.keys.Unarchive):
		if item := m.SelectedItem(); item != nil && item.IsArchived() {
			return m, m.markItem(item.ID, usecase.MarkUnarchived)
		}
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		if m.SelectedItem() == nil {
			return m, nil
		}
		m.mode = ModeCompose
		m.commentInput.Reset()
		m.commentInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.FilterStatus):
		m.mode = ModeFilterStatus
		m.pickerCursor = m.currentPickerIndex(m.statusFilter)
		return m, nil

	case key.Matches(msg, m.keys.FilterLabel):
		m.mode = ModeFilterLabel
		m.pickerCursor = m.currentPickerIndex(m.labelFilter)
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.statusFilter = ""
		m.labelFilter = ""
		m.updateFeedList()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchFeed()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	// Everything else goes to the list (page up/down etc).
	var cmd tea.Cmd
	m.feedList, cmd = m.feedList.Update(msg)
	m.syncSelection()
	return m, cmd
}

// currentPickerIndex returns the cursor position matching the active
// filter value, so the picker opens on the current selection.
func (m *Model) currentPickerIndex(current string) int {
	if current == "" || current == projection.FilterAll {
		return 0
	}
	var values []string
	if m.mode == ModeFilterStatus {
		values = m.facetStatuses
	} else {
		values = m.facetLabels
	}
	for i, v := range values {
		if v == current {
			return i + 1 // offset for the "all" entry
		}
	}
	return 0
}

func (m *Model) handlePickerMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.pickerOptions()

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(options)-1 {
			m.pickerCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		choice := options[m.pickerCursor]
		if choice == projection.FilterAll {
			choice = ""
		}
		if m.mode == ModeFilterStatus {
			m.statusFilter = choice
		} else {
			m.labelFilter = choice
		}
		m.mode = ModeNormal
		m.updateFeedList()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleComposeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.commentInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		// Submission is intentionally local-only: the demo confirms the
		// comment without sending it anywhere.
		if strings.TrimSpace(m.commentInput.Value()) == "" {
			m.err = domain.ErrEmptyComment
			return m, nil
		}
		m.mode = ModeComposeDone
		m.commentInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m *Model) handleComposeDoneMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the confirmation.
	m.mode = ModeNormal
	m.commentInput.Reset()
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}

// resizePanes recomputes component sizes from the window and layout.
func (m *Model) resizePanes() {
	if m.width == 0 {
		return
	}
	listWidth := m.paneWidth(1)
	listHeight := m.height - 8
	if listHeight < 5 {
		listHeight = 5
	}
	m.feedList.SetSize(listWidth, listHeight)
}

// paneWidth returns the width of pane i (0 nav, 1 list, 2 detail) from
// the persisted percentages. A collapsed nav gives its share to the
// detail pane.
func (m *Model) paneWidth(i int) int {
	usable := m.width - 6
	if usable < 40 {
		usable = 40
	}
	sizes := m.layout.Sizes
	if m.layout.Collapsed {
		sizes = [3]float64{0, sizes[1], sizes[2] + sizes[0]}
	}
	return int(float64(usable) * sizes[i] / 100)
}
