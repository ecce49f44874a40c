package usecase

import (
	"context"
	"fmt"

	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// MarkAction identifies one of the four read/archive mutations.
type MarkAction int

// Mark actions exposed by the detail view.
const (
	MarkRead MarkAction = iota
	MarkUnread
	MarkArchived
	MarkUnarchived
)

// String returns a human-readable name for the action.
func (a MarkAction) String() string {
	switch a {
	case MarkRead:
		return "mark as read"
	case MarkUnread:
		return "mark as unread"
	case MarkArchived:
		return "archive"
	case MarkUnarchived:
		return "unarchive"
	}
	return "unknown"
}

// MarkItemInput contains the parameters for a mark call.
type MarkItemInput struct {
	ItemID string
	Action MarkAction
}

// MarkItem forwards read/archive mutations to the external feed
// client. Calls are not retried locally; a failure is returned to the
// caller as-is.
type MarkItem struct {
	feed domain.FeedClient
}

// NewMarkItem creates a new MarkItem use case.
func NewMarkItem(feed domain.FeedClient) *MarkItem {
	return &MarkItem{feed: feed}
}

// Execute performs the requested mutation. Archiving implies reading:
// MarkArchived first marks the item read, then archives it.
func (uc *MarkItem) Execute(ctx context.Context, in MarkItemInput) error {
	if in.ItemID == "" {
		return domain.ErrNoSelection
	}

	switch in.Action {
	case MarkRead:
		return uc.feed.MarkAsRead(ctx, in.ItemID)
	case MarkUnread:
		return uc.feed.MarkAsUnread(ctx, in.ItemID)
	case MarkArchived:
		if err := uc.feed.MarkAsRead(ctx, in.ItemID); err != nil {
			return err
		}
		return uc.feed.MarkAsArchived(ctx, in.ItemID)
	case MarkUnarchived:
		return uc.feed.MarkAsUnarchived(ctx, in.ItemID)
	}
	return fmt.Errorf("unknown mark action %d", in.Action)
}
