package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedItem(id, issueID string, event domain.EventType, read, archived bool) domain.FeedItem {
	now := time.Now()
	item := domain.FeedItem{
		ID:         id,
		InsertedAt: now.Add(-time.Hour),
		Payload: domain.EventPayload{
			IssueID: issueID,
			Event:   event,
			Title:   "Issue " + issueID,
		},
	}
	if read {
		item.ReadAt = &now
	}
	if archived {
		item.ArchivedAt = &now
	}
	return item
}

func newListTestContainer(items []domain.FeedItem) *app.Container {
	feed := testutil.NewMockFeedClient()
	feed.Items = items
	feed.Metadata = domain.FeedMetadata{UnreadCount: countUnread(items), TotalCount: len(items)}
	return app.NewWithDeps(
		nil,
		feed,
		&testutil.MockWorkflowTrigger{},
		&testutil.MockIssueStore{Issues: newTestIssues()},
		testutil.NopLogger{},
	)
}

func countUnread(items []domain.FeedItem) int {
	n := 0
	for i := range items {
		if !items[i].IsRead() {
			n++
		}
	}
	return n
}

func runList(t *testing.T, c *app.Container, args ...string) string {
	t.Helper()
	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs(append([]string{"list"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestListCommand_ShowsActivePartition(t *testing.T) {
	c := newListTestContainer([]domain.FeedItem{
		feedItem("msg-1", "ISS-1", domain.EventStatusChange, false, false),
		feedItem("msg-2", "ISS-2", domain.EventComment, true, true),
	})

	out := runList(t, c)
	assert.Contains(t, out, "ISS-1")
	assert.NotContains(t, out, "ISS-2")
	assert.Contains(t, out, "Status changed")
}

func TestListCommand_Archived(t *testing.T) {
	c := newListTestContainer([]domain.FeedItem{
		feedItem("msg-1", "ISS-1", domain.EventStatusChange, false, false),
		feedItem("msg-2", "ISS-2", domain.EventComment, true, true),
	})

	out := runList(t, c, "--archived")
	assert.NotContains(t, out, "ISS-1")
	assert.Contains(t, out, "ISS-2")
}

func TestListCommand_UnreadOnly(t *testing.T) {
	c := newListTestContainer([]domain.FeedItem{
		feedItem("msg-1", "ISS-1", domain.EventStatusChange, false, false),
		feedItem("msg-2", "ISS-2", domain.EventAssignment, true, false),
	})

	out := runList(t, c, "--unread")
	assert.Contains(t, out, "ISS-1")
	assert.NotContains(t, out, "ISS-2")
}

func TestListCommand_StatusFilter(t *testing.T) {
	c := newListTestContainer([]domain.FeedItem{
		feedItem("msg-1", "ISS-1", domain.EventStatusChange, false, false), // ISS-1 is open
		feedItem("msg-2", "ISS-2", domain.EventAssignment, false, false),   // ISS-2 is todo
	})

	out := runList(t, c, "--status", "open")
	assert.Contains(t, out, "ISS-1")
	assert.NotContains(t, out, "ISS-2")
}

func TestListCommand_UnreadAndArchivedConflict(t *testing.T) {
	c := newListTestContainer(nil)

	root := NewRootCommand(c, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"list", "--unread", "--archived"})
	err := root.Execute()
	require.Error(t, err)
}

func TestListCommand_Empty(t *testing.T) {
	c := newListTestContainer(nil)

	out := runList(t, c)
	assert.Contains(t, out, "No notifications found.")
}
