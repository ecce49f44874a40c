// Package projection derives the displayed view of the notification
// feed: the active/archived partition and the status/label filtered
// sequence, joined against the local issue store.
//
// Every function is a pure re-evaluation over its inputs. Lookups are
// total over possibly-missing data: a feed item whose issue cannot be
// resolved degrades to "no match" instead of failing.
package projection

import "github.com/knocklabs/inbox-example-app/internal/domain"

// FilterAll is the filter value (alongside "") that disables a filter.
const FilterAll = "all"

// Partition splits items into active and archived sequences, keeping
// delivery order. The split is disjoint and exhaustive on ArchivedAt.
func Partition(items []domain.FeedItem) (active, archived []domain.FeedItem) {
	for _, item := range items {
		if item.IsArchived() {
			archived = append(archived, item)
		} else {
			active = append(active, item)
		}
	}
	return active, archived
}

// ApplyFilters returns the items whose joined issue passes both the
// status and the label filter. A filter set to "" or "all" is
// inactive. An item whose issue is missing from the store is included
// only while both filters are inactive.
func ApplyFilters(items []domain.FeedItem, statusFilter, labelFilter string, issues []domain.Issue) []domain.FeedItem {
	if !filterActive(statusFilter) && !filterActive(labelFilter) {
		return items
	}

	var out []domain.FeedItem
	for _, item := range items {
		issue := domain.FindIssue(issues, item.Payload.IssueID)
		if !matches(issue, statusFilter, labelFilter) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Unread returns the unread items passing the same filter predicate.
// The join uses the canonical issue id key, same as ApplyFilters.
func Unread(items []domain.FeedItem, statusFilter, labelFilter string, issues []domain.Issue) []domain.FeedItem {
	var out []domain.FeedItem
	for _, item := range items {
		if item.IsRead() {
			continue
		}
		issue := domain.FindIssue(issues, item.Payload.IssueID)
		if !matches(issue, statusFilter, labelFilter) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Facets returns the distinct status and label values across the
// issue store, each exactly once, in first-seen order.
func Facets(issues []domain.Issue) (statuses []string, labels []string) {
	seenStatus := make(map[domain.Status]bool)
	seenLabel := make(map[string]bool)
	for _, issue := range issues {
		if !seenStatus[issue.Status] {
			seenStatus[issue.Status] = true
			statuses = append(statuses, string(issue.Status))
		}
		for _, label := range issue.Labels {
			if !seenLabel[label] {
				seenLabel[label] = true
				labels = append(labels, label)
			}
		}
	}
	return statuses, labels
}

func filterActive(filter string) bool {
	return filter != "" && filter != FilterAll
}

// matches evaluates the filter predicate against a possibly-nil issue.
// With an active filter and no issue, both comparisons come out false.
func matches(issue *domain.Issue, statusFilter, labelFilter string) bool {
	if filterActive(statusFilter) {
		if issue == nil || string(issue.Status) != statusFilter {
			return false
		}
	}
	if filterActive(labelFilter) {
		if issue == nil || !issue.HasLabel(labelFilter) {
			return false
		}
	}
	return true
}
