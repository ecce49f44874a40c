package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/mattn/go-runewidth"
)

type feedListItem struct {
	item domain.FeedItem
}

func (f feedListItem) FilterValue() string {
	return f.item.Payload.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type feedDelegate struct {
	styles Styles
}

func newFeedDelegate(styles Styles) feedDelegate {
	return feedDelegate{styles: styles}
}

func (d feedDelegate) Height() int {
	return 2
}

func (d feedDelegate) Spacing() int {
	return 1
}

func (d feedDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d feedDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(feedListItem)
	if !ok {
		return
	}
	it := fi.item
	selected := index == m.Index()

	cursorChar := " "
	if selected {
		cursorChar = ">"
	}

	dotChar := " "
	if !it.IsRead() {
		dotChar = "●"
	}

	event := it.EventDescription()
	when := humanize.Time(it.InsertedAt)

	var labelsStr string
	for _, l := range it.Payload.Labels {
		labelsStr += "[" + l + "] "
	}

	listWidth := m.Width()
	prefixWidth := 6 + runewidth.StringWidth(event) + runewidth.StringWidth(when)
	maxTitleLen := listWidth - prefixWidth - runewidth.StringWidth(labelsStr) - 4
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := escapeNewlines(it.Payload.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	cursor := d.styles.SelectionCursor.Render(cursorChar)
	dot := d.styles.UnreadDot.Render(dotChar)
	var eventPart, whenPart, titlePart, labelPart string
	if selected {
		eventPart = d.styles.ItemTitleSelected.Render(event)
		whenPart = d.styles.ItemTime.Render(when)
		titlePart = d.styles.ItemTitleSelected.Render(title)
		labelPart = d.styles.ItemLabelSelected.Render(labelsStr)
	} else {
		eventPart = d.styles.ItemTitle.Render(event)
		whenPart = d.styles.ItemTime.Render(when)
		titlePart = d.styles.ItemTitle.Render(title)
		labelPart = d.styles.ItemLabel.Render(labelsStr)
	}

	line := " " + cursor + " " + dot + " " + eventPart + "  " + whenPart
	lineWidth := runewidth.StringWidth(line)
	if lineWidth < listWidth {
		line += fmt.Sprintf("%*s", listWidth-lineWidth, "")
	}
	_, _ = fmt.Fprintln(w, line)

	descLine := "     "
	if labelsStr != "" {
		descLine += labelPart
	}
	descLine += titlePart
	_, _ = fmt.Fprint(w, d.styles.ItemDesc.Render(descLine))
}
