package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeFilterStatus, ModeFilterLabel, ModeCompose, ModeComposeDone:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the three-pane inbox layout with any active overlay.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	panes := []string{}
	if !m.layout.Collapsed {
		panes = append(panes, m.viewNav())
	}
	panes = append(panes, m.viewList(), m.viewDetail())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay
	case ModeFilterStatus, ModeFilterLabel:
		b.WriteString("\n")
		b.WriteString(m.viewPicker())
	case ModeCompose:
		b.WriteString("\n")
		b.WriteString(m.viewCompose())
	case ModeComposeDone:
		b.WriteString("\n")
		b.WriteString(m.viewComposeDone())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title bar with view name, tabs and fetch state.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(m.view.String())

	var tabs string
	if m.view == ViewInbox {
		all := m.styles.Tab.Render(TabAll.String())
		unread := m.styles.Tab.Render(fmt.Sprintf("%s (%d)", TabUnread, m.metadata.UnreadCount))
		if m.tab == TabAll {
			all = m.styles.TabActive.Render(TabAll.String())
		} else {
			unread = m.styles.TabActive.Render(fmt.Sprintf("%s (%d)", TabUnread, m.metadata.UnreadCount))
		}
		tabs = all + unread
	}

	var state string
	switch m.fetchState {
	case FetchPending:
		state = lipgloss.NewStyle().Foreground(Colors.Warning).Render("fetching...")
	case FetchFailed:
		state = m.styles.ErrorMsg.Render("fetch failed")
	case FetchIdle, FetchSuccess:
		state = lipgloss.NewStyle().Foreground(Colors.Muted).Render(
			fmt.Sprintf("%d notifications", m.metadata.TotalCount))
	}

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	left := title + "  " + tabs
	spacing := headerWidth - lipgloss.Width(left) - lipgloss.Width(state)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(left + strings.Repeat(" ", spacing) + state)
}

// viewNav renders the collapsible navigation pane.
func (m *Model) viewNav() string {
	width := m.paneWidth(0)
	var b strings.Builder

	for _, v := range []View{ViewInbox, ViewArchive} {
		style := m.styles.NavItem
		marker := "  "
		if v == m.view {
			style = m.styles.NavItemActive
			marker = "> "
		}
		line := marker + v.String()
		if v == ViewInbox && m.metadata.UnreadCount > 0 {
			line += " " + m.styles.NavUnreadCount.Render(fmt.Sprintf("(%d)", m.metadata.UnreadCount))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusFilter != "" {
		b.WriteString(m.styles.NavItem.Render("  status: "+m.statusFilter) + "\n")
	}
	if m.labelFilter != "" {
		b.WriteString(m.styles.NavItem.Render("  label: "+m.labelFilter) + "\n")
	}

	return m.styles.Nav.Width(width).Render(b.String())
}

// viewList renders the feed list pane.
func (m *Model) viewList() string {
	if len(m.feedList.Items()) == 0 {
		return lipgloss.NewStyle().Width(m.paneWidth(1)).Render(m.viewEmptyState())
	}
	return m.feedList.View()
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.view == ViewArchive {
		b.WriteString(m.styles.Footer.Render("  Nothing archived yet"))
	} else if m.tab == TabUnread {
		b.WriteString(m.styles.Footer.Render("  All caught up"))
	} else {
		b.WriteString(m.styles.Footer.Render("  No notifications yet\n\n"))
		b.WriteString(m.styles.Footer.Render("  Run "))
		b.WriteString(m.styles.FooterKey.Render("inbox seed"))
		b.WriteString(m.styles.Footer.Render(" to populate the feed"))
	}
	b.WriteString("\n")
	return b.String()
}

// viewDetail renders the detail pane for the selected item.
func (m *Model) viewDetail() string {
	width := m.paneWidth(2)
	item := m.SelectedItem()
	if item == nil {
		return lipgloss.NewStyle().Width(width).Render(
			m.styles.Footer.Render("  No notification selected"))
	}

	var b strings.Builder
	labelStyle := m.styles.DetailLabel
	valueStyle := m.styles.DetailValue

	b.WriteString(m.styles.DetailTitle.Render(item.EventDescription()))
	b.WriteString("\n")
	b.WriteString(m.styles.ItemTitleSelected.Render(item.Payload.Title))
	b.WriteString("\n\n")

	badges := m.styles.PriorityStyle(item.Payload.Priority).Render(
		PriorityIcon(item.Payload.Priority)+" "+string(item.Payload.Priority)) + "  " +
		m.styles.StatusStyle(item.Payload.Status).Render(string(item.Payload.Status))
	if item.Payload.Type != "" {
		badges += "  " + m.styles.ItemLabel.Render(item.Payload.Type)
	}
	b.WriteString(badges)
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Issue"))
	b.WriteString(valueStyle.Render(item.Payload.IssueID))
	b.WriteString("\n")

	if item.Payload.Assignee != "" {
		b.WriteString(labelStyle.Render("Assignee"))
		b.WriteString(valueStyle.Render(item.Payload.Assignee))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Received"))
	b.WriteString(valueStyle.Render(humanize.Time(item.InsertedAt)))
	b.WriteString("\n")

	if len(item.Payload.Labels) > 0 {
		b.WriteString(labelStyle.Render("Labels"))
		b.WriteString(m.styles.ItemLabel.Render(strings.Join(item.Payload.Labels, ", ")))
		b.WriteString("\n")
	}

	if body := m.detailBody(item); body != "" {
		b.WriteString(m.styles.DetailBody.Width(width - 4).Render(body))
		b.WriteString("\n")
	}

	if len(item.Payload.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Comments"))
		b.WriteString("\n")
		for _, c := range item.Payload.Comments {
			line := fmt.Sprintf("%s  %s\n%s", c.Author, humanize.Time(c.Time), c.Text)
			b.WriteString(m.styles.Comment.Width(width - 4).Render(line))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(b.String())
}

// detailBody picks the most specific text for the detail pane: the
// rendered feed body, then the comment text, then the description.
func (m *Model) detailBody(item *domain.FeedItem) string {
	if item.Body != "" {
		return item.Body
	}
	if item.Payload.Event == domain.EventComment && item.Payload.Text != "" {
		return item.Payload.Text
	}
	return item.Payload.Description
}

// viewPicker renders the status/label filter picker.
func (m *Model) viewPicker() string {
	name := "status"
	if m.mode == ModeFilterLabel {
		name = "label"
	}
	title := m.styles.DialogTitle.Render("Filter by " + name)

	var rows strings.Builder
	for i, opt := range m.pickerOptions() {
		if i == m.pickerCursor {
			rows.WriteString("  " + m.styles.PickerCursor.Render("▸ "+opt))
		} else {
			rows.WriteString("    " + m.styles.PickerItem.Render(opt))
		}
		rows.WriteString("\n")
	}

	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" apply  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", rows.String(), hint)
	return m.styles.Dialog.Render(content)
}

// viewCompose renders the comment composer dialog.
func (m *Model) viewCompose() string {
	item := m.SelectedItem()
	if item == nil {
		return ""
	}

	title := m.styles.DialogTitle.Render("Comment on " + item.Payload.IssueID)
	issueTitle := m.styles.Footer.Render(item.Payload.Title)
	label := m.styles.InputPrompt.Render("Comment")
	input := m.commentInput.View()
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" submit  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, issueTitle, "", label, input, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewComposeDone renders the local submission confirmation.
func (m *Model) viewComposeDone() string {
	title := m.styles.DialogTitle.Foreground(Colors.Success).Render("✓ Comment submitted")
	prompt := m.styles.DialogPrompt.Render("Press any key to continue")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt)
	return m.styles.Dialog.BorderForeground(Colors.Success).Render(content)
}

// viewFooter renders the footer with key hints or the current error.
func (m *Model) viewFooter() string {
	if m.err != nil {
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	}

	switch m.mode {
	case ModeNormal:
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("j/k") + " nav  " +
				m.styles.FooterKey.Render("tab") + " unread  " +
				m.styles.FooterKey.Render("v") + " archive view  " +
				m.styles.FooterKey.Render("r/u") + " read/unread  " +
				m.styles.FooterKey.Render("a/A") + " archive  " +
				m.styles.FooterKey.Render("c") + " comment  " +
				m.styles.FooterKey.Render("?") + " help  " +
				m.styles.FooterKey.Render("q") + " quit",
		)
	case ModeFilterStatus, ModeFilterLabel, ModeCompose, ModeComposeDone, ModeHelp:
		// Hints are shown in the dialogs themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	sections := []struct {
		name  string
		binds []struct {
			key  string
			desc string
		}
	}{
		{
			name: "NAVIGATION",
			binds: []struct {
				key  string
				desc string
			}{
				{"↑/k", "Move up"},
				{"↓/j", "Move down"},
				{"tab", "All / Unread"},
				{"v", "Inbox / Archive"},
				{"b", "Toggle nav pane"},
			},
		},
		{
			name: "ACTIONS",
			binds: []struct {
				key  string
				desc string
			}{
				{"r", "Mark read"},
				{"u", "Mark unread"},
				{"a", "Archive"},
				{"A", "Unarchive"},
				{"c", "Comment"},
			},
		},
		{
			name: "FILTERS & GENERAL",
			binds: []struct {
				key  string
				desc string
			}{
				{"s", "Status filter"},
				{"l", "Label filter"},
				{"x", "Clear filters"},
				{"R", "Refresh"},
				{"?", "Close help"},
				{"q", "Quit"},
			},
		},
	}

	var col1, col2 strings.Builder

	renderSection := func(b *strings.Builder, sectionIdx int) {
		section := sections[sectionIdx]
		b.WriteString(m.styles.HelpDesc.Render(section.name))
		b.WriteString("\n")
		for _, bind := range section.binds {
			key := m.styles.HelpKey.Width(8).Render(bind.key)
			desc := m.styles.HelpDesc.Render(bind.desc)
			fmt.Fprintf(b, "%s %s\n", key, desc)
		}
		b.WriteString("\n")
	}

	renderSection(&col1, 0)
	renderSection(&col2, 1)
	renderSection(&col2, 2)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		col1.String(),
		"    ", // Gutter
		col2.String(),
	)

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}
