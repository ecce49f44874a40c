package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedItem_EventDescription(t *testing.T) {
	tests := []struct {
		name string
		item FeedItem
		want string
	}{
		{
			name: "status change",
			item: FeedItem{Payload: EventPayload{Event: EventStatusChange}},
			want: "Status changed",
		},
		{
			name: "assignment",
			item: FeedItem{Payload: EventPayload{Event: EventAssignment}},
			want: "Assignment updated",
		},
		{
			name: "comment",
			item: FeedItem{Payload: EventPayload{Event: EventComment}},
			want: "New comment added",
		},
		{
			name: "unknown event falls back to subject",
			item: FeedItem{Payload: EventPayload{Event: "custom", Subject: "Weekly digest"}},
			want: "Weekly digest",
		},
		{
			name: "unknown event without subject",
			item: FeedItem{Payload: EventPayload{Event: "custom"}},
			want: "Event occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.EventDescription())
		})
	}
}

func TestFeedItem_ReadArchivedState(t *testing.T) {
	now := time.Now()

	item := FeedItem{}
	assert.False(t, item.IsRead())
	assert.False(t, item.IsArchived())

	item.ReadAt = &now
	item.ArchivedAt = &now
	assert.True(t, item.IsRead())
	assert.True(t, item.IsArchived())
}

func TestNewEventPayload(t *testing.T) {
	issue := Issue{
		ID:       "ISS-1",
		Title:    "ISS-1: Fix the bug",
		Status:   StatusOpen,
		Priority: PriorityHigh,
		Labels:   []string{"bug", "fix"},
	}

	payload := NewEventPayload(issue, EventAssignment)

	assert.Equal(t, "ISS-1", payload.IssueID)
	assert.Equal(t, EventAssignment, payload.Event)
	assert.Equal(t, StatusOpen, payload.Status)
	assert.Equal(t, []string{"bug", "fix"}, payload.Labels)
}
