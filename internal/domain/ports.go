package domain

import (
	"context"
	"time"
)

// FeedClient is the client-side surface of the notification service:
// fetching the user's in-app feed and mutating per-item read/archive
// state. Implementations forward every call to the external service;
// no local state is kept.
type FeedClient interface {
	// Fetch retrieves all feed items (archived included) and the
	// feed-level metadata.
	Fetch(ctx context.Context) ([]FeedItem, FeedMetadata, error)

	// MarkAsRead sets the item's read timestamp.
	MarkAsRead(ctx context.Context, itemID string) error

	// MarkAsUnread clears the item's read timestamp.
	MarkAsUnread(ctx context.Context, itemID string) error

	// MarkAsArchived sets the item's archive timestamp.
	MarkAsArchived(ctx context.Context, itemID string) error

	// MarkAsUnarchived clears the item's archive timestamp.
	MarkAsUnarchived(ctx context.Context, itemID string) error
}

// TriggerRequest addresses one workflow trigger call.
type TriggerRequest struct {
	Recipients []Account
	Actor      Account
	Data       EventPayload
}

// WorkflowTrigger is the server-side surface used by the seed script.
type WorkflowTrigger interface {
	// Trigger runs the named workflow for the given recipients.
	Trigger(ctx context.Context, workflowKey string, req TriggerRequest) error
}

// IssueStore provides read access to the immutable demo issue set.
type IssueStore interface {
	// All returns every issue in store order.
	All() []Issue

	// Find returns the issue with the given id, or nil.
	Find(id string) *Issue
}

// ConfigLoader loads configuration from files and the environment.
type ConfigLoader interface {
	// Load returns the merged configuration (file + environment).
	Load() (*Config, error)
}

// Logger writes leveled log entries to the application log.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
