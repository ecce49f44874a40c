package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() (*testutil.MockFeedClient, *testutil.MockIssueStore) {
	now := time.Now()
	feed := testutil.NewMockFeedClient()
	feed.Items = []domain.FeedItem{
		{ID: "a", Payload: domain.EventPayload{IssueID: "ISS-1", Event: domain.EventStatusChange}},
		{ID: "b", ReadAt: &now, Payload: domain.EventPayload{IssueID: "ENH-3", Event: domain.EventComment}},
		{ID: "c", ArchivedAt: &now, Payload: domain.EventPayload{IssueID: "ISS-1", Event: domain.EventAssignment}},
	}
	feed.Metadata = domain.FeedMetadata{UnreadCount: 1, TotalCount: 3}

	issues := &testutil.MockIssueStore{Issues: []domain.Issue{
		{ID: "ISS-1", Status: domain.StatusOpen, Labels: []string{"bug"}},
		{ID: "ENH-3", Status: domain.StatusClosed, Labels: []string{"performance"}},
	}}
	return feed, issues
}

func TestListItems_ActivePartition(t *testing.T) {
	feed, issues := listFixture()
	uc := NewListItems(feed, issues)

	out, err := uc.Execute(context.Background(), ListItemsInput{})

	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "a", out.Items[0].ID)
	assert.Equal(t, "b", out.Items[1].ID)
	assert.Equal(t, 1, out.Metadata.UnreadCount)
}

func TestListItems_ArchivedPartition(t *testing.T) {
	feed, issues := listFixture()
	uc := NewListItems(feed, issues)

	out, err := uc.Execute(context.Background(), ListItemsInput{Archived: true})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "c", out.Items[0].ID)
}

func TestListItems_StatusFilter(t *testing.T) {
	feed, issues := listFixture()
	uc := NewListItems(feed, issues)

	out, err := uc.Execute(context.Background(), ListItemsInput{StatusFilter: "closed"})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "b", out.Items[0].ID)
}

func TestListItems_UnreadOnly(t *testing.T) {
	feed, issues := listFixture()
	uc := NewListItems(feed, issues)

	out, err := uc.Execute(context.Background(), ListItemsInput{UnreadOnly: true})

	require.NoError(t, err)
	// "b" is read; "a" and the archived-but-unread "c" remain.
	require.Len(t, out.Items, 2)
	assert.Equal(t, "a", out.Items[0].ID)
	assert.Equal(t, "c", out.Items[1].ID)
}

func TestListItems_FetchError(t *testing.T) {
	feed, issues := listFixture()
	feed.FetchErr = errors.New("unauthorized")
	uc := NewListItems(feed, issues)

	_, err := uc.Execute(context.Background(), ListItemsInput{})

	assert.Error(t, err)
}

func TestFetchFeed_Execute(t *testing.T) {
	feed, _ := listFixture()
	uc := NewFetchFeed(feed)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.Equal(t, 1, out.Metadata.UnreadCount)
	assert.Equal(t, 1, feed.FetchCount)
}
