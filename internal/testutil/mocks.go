// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockFeedClient is a test double for domain.FeedClient. Mark calls
// mutate Items in place so tests can assert on the resulting state.
// Fields are ordered to minimize memory padding.
type MockFeedClient struct {
	FetchErr     error
	MarkErr      error
	Items        []domain.FeedItem
	Calls        []string // e.g. "read:msg-1", "unarchive:msg-2"
	Metadata     domain.FeedMetadata
	FetchCount   int
	MarkErrOnIDs map[string]error // Per-item errors, keyed by item id
}

// NewMockFeedClient creates an empty mock feed client.
func NewMockFeedClient() *MockFeedClient {
	return &MockFeedClient{MarkErrOnIDs: make(map[string]error)}
}

// Fetch returns the configured items and metadata.
func (m *MockFeedClient) Fetch(_ context.Context) ([]domain.FeedItem, domain.FeedMetadata, error) {
	m.FetchCount++
	if m.FetchErr != nil {
		return nil, domain.FeedMetadata{}, m.FetchErr
	}
	return m.Items, m.Metadata, nil
}

func (m *MockFeedClient) mark(op, itemID string, set func(*domain.FeedItem, time.Time)) error {
	m.Calls = append(m.Calls, op+":"+itemID)
	if m.MarkErr != nil {
		return m.MarkErr
	}
	if err := m.MarkErrOnIDs[itemID]; err != nil {
		return err
	}
	for i := range m.Items {
		if m.Items[i].ID == itemID {
			set(&m.Items[i], time.Now())
			return nil
		}
	}
	return domain.ErrItemNotFound
}

// MarkAsRead sets the item's read timestamp.
func (m *MockFeedClient) MarkAsRead(_ context.Context, itemID string) error {
	return m.mark("read", itemID, func(it *domain.FeedItem, now time.Time) { it.ReadAt = &now })
}

// MarkAsUnread clears the item's read timestamp.
func (m *MockFeedClient) MarkAsUnread(_ context.Context, itemID string) error {
	return m.mark("unread", itemID, func(it *domain.FeedItem, _ time.Time) { it.ReadAt = nil })
}

// MarkAsArchived sets the item's archive timestamp.
func (m *MockFeedClient) MarkAsArchived(_ context.Context, itemID string) error {
	return m.mark("archive", itemID, func(it *domain.FeedItem, now time.Time) { it.ArchivedAt = &now })
}

// MarkAsUnarchived clears the item's archive timestamp.
func (m *MockFeedClient) MarkAsUnarchived(_ context.Context, itemID string) error {
	return m.mark("unarchive", itemID, func(it *domain.FeedItem, _ time.Time) { it.ArchivedAt = nil })
}

// TriggerCall records one workflow trigger invocation.
type TriggerCall struct {
	WorkflowKey string
	Request     domain.TriggerRequest
}

// MockWorkflowTrigger is a test double for domain.WorkflowTrigger.
type MockWorkflowTrigger struct {
	Calls []TriggerCall
	// FailOn returns an error for matching calls (nil = always succeed).
	FailOn func(call TriggerCall) error
}

// Trigger records the call and applies FailOn.
func (m *MockWorkflowTrigger) Trigger(_ context.Context, workflowKey string, req domain.TriggerRequest) error {
	call := TriggerCall{WorkflowKey: workflowKey, Request: req}
	m.Calls = append(m.Calls, call)
	if m.FailOn != nil {
		return m.FailOn(call)
	}
	return nil
}

// MockIssueStore is a test double for domain.IssueStore.
type MockIssueStore struct {
	Issues []domain.Issue
}

// All returns the configured issues.
func (m *MockIssueStore) All() []domain.Issue {
	return m.Issues
}

// Find returns the issue with the given id, or nil.
func (m *MockIssueStore) Find(id string) *domain.Issue {
	return domain.FindIssue(m.Issues, id)
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
