package projection

import (
	"testing"
	"time"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, issueID string, read, archived bool) domain.FeedItem {
	it := domain.FeedItem{
		ID:      id,
		Payload: domain.EventPayload{IssueID: issueID, Event: domain.EventComment},
	}
	now := time.Now()
	if read {
		it.ReadAt = &now
	}
	if archived {
		it.ArchivedAt = &now
	}
	return it
}

var issues = []domain.Issue{
	{ID: "ISS-1", Status: domain.StatusOpen, Labels: []string{"bug", "fix"}},
	{ID: "FEAT-2", Status: domain.StatusInProgress, Labels: []string{"feature", "ui"}},
	{ID: "ENH-3", Status: domain.StatusClosed, Labels: []string{"performance"}},
}

func TestPartition_DisjointExhaustive(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", false, false),
		item("b", "FEAT-2", true, true),
		item("c", "ENH-3", false, true),
		item("d", "ISS-1", true, false),
	}

	active, archived := Partition(items)

	require.Len(t, active, 2)
	require.Len(t, archived, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "d", active[1].ID)
	assert.Equal(t, "b", archived[0].ID)
	assert.Equal(t, "c", archived[1].ID)

	// Every item lands in exactly one partition.
	seen := make(map[string]int)
	for _, it := range active {
		seen[it.ID]++
	}
	for _, it := range archived {
		seen[it.ID]++
	}
	require.Len(t, seen, len(items))
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s appears %d times", id, n)
	}
}

func TestPartition_Empty(t *testing.T) {
	active, archived := Partition(nil)
	assert.Empty(t, active)
	assert.Empty(t, archived)
}

func TestApplyFilters_IdentityWhenInactive(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", false, false),
		item("b", "missing", false, false),
	}

	for _, pair := range [][2]string{{"", ""}, {FilterAll, ""}, {"", FilterAll}, {FilterAll, FilterAll}} {
		got := ApplyFilters(items, pair[0], pair[1], issues)
		assert.Equal(t, items, got, "filters %q/%q", pair[0], pair[1])
	}
}

func TestApplyFilters_ByStatus(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", false, false),  // open
		item("b", "ENH-3", false, false),  // closed
		item("c", "FEAT-2", false, false), // in progress
	}

	got := ApplyFilters(items, "closed", "", issues)

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestApplyFilters_ByLabel(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", false, false),
		item("b", "FEAT-2", false, false),
	}

	got := ApplyFilters(items, "", "ui", issues)

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestApplyFilters_BothFilters(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", false, false),
		item("b", "FEAT-2", false, false),
	}

	// Status matches "a" but label matches only "b": nothing passes both.
	got := ApplyFilters(items, "open", "ui", issues)
	assert.Empty(t, got)

	got = ApplyFilters(items, "open", "bug", issues)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestApplyFilters_MissingIssueHiddenWhenFilterActive(t *testing.T) {
	items := []domain.FeedItem{item("orphan", "GONE-9", false, false)}

	assert.Empty(t, ApplyFilters(items, "open", "", issues))
	assert.Empty(t, ApplyFilters(items, "", "bug", issues))
	assert.Equal(t, items, ApplyFilters(items, "", "", issues))
}

func TestUnread_FiltersReadItems(t *testing.T) {
	items := []domain.FeedItem{
		item("a", "ISS-1", true, false),
		item("b", "ISS-1", false, false),
		item("c", "FEAT-2", false, false),
	}

	got := Unread(items, "", "", issues)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	got = Unread(items, "open", "", issues)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestUnread_MissingIssue(t *testing.T) {
	items := []domain.FeedItem{item("orphan", "GONE-9", false, false)}

	assert.Equal(t, items, Unread(items, "", "", issues))
	assert.Empty(t, Unread(items, "open", "", issues))
}

func TestFacets_DistinctFirstSeen(t *testing.T) {
	dup := []domain.Issue{
		{ID: "1", Status: domain.StatusOpen, Labels: []string{"bug", "fix"}},
		{ID: "2", Status: domain.StatusTodo, Labels: []string{"docs"}},
		{ID: "3", Status: domain.StatusOpen, Labels: []string{"bug", "security"}},
	}

	statuses, labels := Facets(dup)

	assert.Equal(t, []string{"open", "todo"}, statuses)
	assert.Equal(t, []string{"bug", "fix", "docs", "security"}, labels)
}

func TestFacets_Empty(t *testing.T) {
	statuses, labels := Facets(nil)
	assert.Empty(t, statuses)
	assert.Empty(t, labels)
}
