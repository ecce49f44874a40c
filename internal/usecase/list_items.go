package usecase

import (
	"context"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/projection"
)

// ListItemsInput contains the parameters for listing feed items.
// Fields are ordered to minimize memory padding.
type ListItemsInput struct {
	StatusFilter string // "" or "all" = no status filter
	LabelFilter  string // "" or "all" = no label filter
	Archived     bool   // Show the archived partition instead of the active one
	UnreadOnly   bool   // Restrict to unread items (active partition only)
}

// ListItemsOutput contains the projected feed.
type ListItemsOutput struct {
	Items    []domain.FeedItem
	Metadata domain.FeedMetadata
}

// ListItems fetches the feed and applies the partition and filter
// projection. It backs the list command; the TUI applies the same
// projection over its already-fetched items.
type ListItems struct {
	feed   domain.FeedClient
	issues domain.IssueStore
}

// NewListItems creates a new ListItems use case.
func NewListItems(feed domain.FeedClient, issues domain.IssueStore) *ListItems {
	return &ListItems{feed: feed, issues: issues}
}

// Execute fetches and projects the feed.
func (uc *ListItems) Execute(ctx context.Context, in ListItemsInput) (*ListItemsOutput, error) {
	items, meta, err := uc.feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	issues := uc.issues.All()
	active, archived := projection.Partition(items)

	var out []domain.FeedItem
	switch {
	case in.UnreadOnly:
		out = projection.Unread(items, in.StatusFilter, in.LabelFilter, issues)
	case in.Archived:
		out = projection.ApplyFilters(archived, in.StatusFilter, in.LabelFilter, issues)
	default:
		out = projection.ApplyFilters(active, in.StatusFilter, in.LabelFilter, issues)
	}

	return &ListItemsOutput{Items: out, Metadata: meta}, nil
}
