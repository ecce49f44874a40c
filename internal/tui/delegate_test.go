package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEscapeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no newlines",
			input: "simple text",
			want:  "simple text",
		},
		{
			name:  "single LF",
			input: "line1\nline2",
			want:  "line1 line2",
		},
		{
			name:  "CRLF",
			input: "line1\r\nline2",
			want:  "line1 line2",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escapeNewlines(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func renderItem(t *testing.T, item domain.FeedItem, selected bool) string {
	t.Helper()
	d := newFeedDelegate(DefaultStyles())
	l := list.New([]list.Item{feedListItem{item: item}}, d, 80, 20)
	index := 0
	if !selected {
		// Render index 0 while the list cursor stays elsewhere has no
		// effect with a single item, so render a non-cursor index.
		index = 1
	}

	var buf bytes.Buffer
	d.Render(&buf, l, index, feedListItem{item: item})
	return buf.String()
}

func TestFeedDelegate_UnreadDot(t *testing.T) {
	unread := domain.FeedItem{
		ID:         "msg-1",
		InsertedAt: time.Now().Add(-2 * time.Hour),
		Payload:    domain.EventPayload{Event: domain.EventComment, Title: "Login broken"},
	}
	out := renderItem(t, unread, true)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "New comment added")

	now := time.Now()
	read := unread
	read.ReadAt = &now
	out = renderItem(t, read, true)
	assert.NotContains(t, out, "●")
}

func TestFeedDelegate_RelativeTime(t *testing.T) {
	item := domain.FeedItem{
		ID:         "msg-1",
		InsertedAt: time.Now().Add(-2 * time.Hour),
		Payload:    domain.EventPayload{Event: domain.EventStatusChange, Title: "Login broken"},
	}
	out := renderItem(t, item, true)
	assert.Contains(t, out, "2 hours ago")
}

func TestFeedDelegate_LabelBadges(t *testing.T) {
	item := domain.FeedItem{
		ID:         "msg-1",
		InsertedAt: time.Now(),
		Payload: domain.EventPayload{
			Event:  domain.EventAssignment,
			Title:  "Login broken",
			Labels: []string{"bug", "auth"},
		},
	}
	out := renderItem(t, item, false)
	assert.Contains(t, out, "[bug]")
	assert.Contains(t, out, "[auth]")
}

func TestFeedListItem_FilterValue(t *testing.T) {
	fi := feedListItem{item: domain.FeedItem{Payload: domain.EventPayload{Title: "Login broken"}}}
	assert.Equal(t, "Login broken", fi.FilterValue())
}
