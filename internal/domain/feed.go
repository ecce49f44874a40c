package domain

import "time"

// EventType identifies the kind of issue event a feed item was
// generated from.
type EventType string

// Event kinds emitted by the seed script, one workflow trigger each.
const (
	EventStatusChange EventType = "statusChange"
	EventAssignment   EventType = "assignment"
	EventComment      EventType = "comment"
)

// EventTypes lists all event kinds in seeding order.
var EventTypes = []EventType{EventStatusChange, EventAssignment, EventComment}

// EventPayload is the data payload carried by a feed item. It is a
// snapshot of the issue fields at trigger time plus the event kind.
//
// IssueID is the canonical foreign key into the issue store. The wire
// name is "id"; the decoder also accepts a legacy "issue_id" alias and
// normalizes it at ingestion.
// Fields are ordered to minimize memory padding.
type EventPayload struct {
	Date           time.Time `json:"date"`
	IssueID        string    `json:"id"`
	Event          EventType `json:"event"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Assignee       string    `json:"assignee"`
	Reporter       string    `json:"reporter"`
	Subject        string    `json:"subject,omitempty"`
	Text           string    `json:"text,omitempty"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previousStatus"`
	Priority       Priority  `json:"priority"`
	Labels         []string  `json:"labels"`
	Comments       []Comment `json:"comments"`
}

// FeedItem is a unit of delivered notification content from the
// external feed service. Read/archive timestamps are owned by the
// service and mutated only through explicit mark calls.
// Fields are ordered to minimize memory padding.
type FeedItem struct {
	ReadAt     *time.Time   `json:"read_at"`
	ArchivedAt *time.Time   `json:"archived_at"`
	InsertedAt time.Time    `json:"inserted_at"`
	ID         string       `json:"id"`
	Body       string       `json:"body,omitempty"` // Rendered body block, may be empty
	Payload    EventPayload `json:"data"`
}

// IsRead reports whether the item has been marked as read.
func (f *FeedItem) IsRead() bool {
	return f.ReadAt != nil
}

// IsArchived reports whether the item has been archived.
func (f *FeedItem) IsArchived() bool {
	return f.ArchivedAt != nil
}

// EventDescription returns the short human description for the item's
// event kind, used as the list row headline.
func (f *FeedItem) EventDescription() string {
	switch f.Payload.Event {
	case EventStatusChange:
		return "Status changed"
	case EventAssignment:
		return "Assignment updated"
	case EventComment:
		return "New comment added"
	}
	if f.Payload.Subject != "" {
		return f.Payload.Subject
	}
	return "Event occurred"
}

// FeedMetadata is the feed-level counters delivered alongside items.
type FeedMetadata struct {
	UnreadCount int `json:"unread_count"`
	TotalCount  int `json:"total_count"`
}

// NewEventPayload builds the trigger payload for one (issue, event)
// pair: the issue fields merged with the event kind.
func NewEventPayload(issue Issue, event EventType) EventPayload {
	return EventPayload{
		IssueID:        issue.ID,
		Event:          event,
		Title:          issue.Title,
		Description:    issue.Description,
		Date:           issue.Date,
		Type:           issue.Type,
		Assignee:       issue.Assignee,
		Reporter:       issue.Reporter,
		Status:         issue.Status,
		PreviousStatus: issue.PreviousStatus,
		Priority:       issue.Priority,
		Labels:         issue.Labels,
		Comments:       issue.Comments,
	}
}
