// Package usecase contains the application operations built on the
// domain ports.
package usecase

import (
	"context"

	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// FetchFeedOutput contains the result of fetching the feed.
type FetchFeedOutput struct {
	Items    []domain.FeedItem
	Metadata domain.FeedMetadata
}

// FetchFeed is the use case for fetching the full feed (archived
// included) from the external service.
type FetchFeed struct {
	feed domain.FeedClient
}

// NewFetchFeed creates a new FetchFeed use case.
func NewFetchFeed(feed domain.FeedClient) *FetchFeed {
	return &FetchFeed{feed: feed}
}

// Execute fetches the feed. Item order is whatever the external
// service delivers; no local re-sort is applied.
func (uc *FetchFeed) Execute(ctx context.Context) (*FetchFeedOutput, error) {
	items, meta, err := uc.feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &FetchFeedOutput{Items: items, Metadata: meta}, nil
}
