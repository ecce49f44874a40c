package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssues() []domain.Issue {
	return []domain.Issue{
		{ID: "ISS-1", Title: "Login broken", Status: domain.StatusOpen, Labels: []string{"bug"}, Date: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{ID: "ISS-2", Title: "Dark mode", Status: domain.StatusTodo, Labels: []string{"feature"}, Date: time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)},
	}
}

func newSeedTestContainer(trigger *testutil.MockWorkflowTrigger) *app.Container {
	return app.NewWithDeps(
		nil,
		testutil.NewMockFeedClient(),
		trigger,
		&testutil.MockIssueStore{Issues: newTestIssues()},
		testutil.NopLogger{},
	)
}

func TestSeedCommand_TriggersAllPairs(t *testing.T) {
	trigger := &testutil.MockWorkflowTrigger{}
	c := newSeedTestContainer(trigger)

	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"seed", "--user", domain.DemoAccounts[0].ID})

	err := root.Execute()
	require.NoError(t, err)

	// 2 issues x 3 event kinds
	assert.Len(t, trigger.Calls, 6)
	assert.Contains(t, buf.String(), "Seeded 6 notifications")
}

func TestSeedCommand_ReportsFailures(t *testing.T) {
	trigger := &testutil.MockWorkflowTrigger{
		FailOn: func(call testutil.TriggerCall) error {
			if call.Request.Data.Event == domain.EventAssignment {
				return errors.New("boom")
			}
			return nil
		},
	}
	c := newSeedTestContainer(trigger)

	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"seed", "--user", domain.DemoAccounts[0].ID})

	err := root.Execute()
	require.NoError(t, err)

	// All pairs are still attempted after a failure.
	assert.Len(t, trigger.Calls, 6)
	assert.Contains(t, buf.String(), "2 failed")
}

func TestSeedCommand_UnknownUser(t *testing.T) {
	trigger := &testutil.MockWorkflowTrigger{}
	c := newSeedTestContainer(trigger)

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"seed", "--user", "no-such-user"})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, trigger.Calls)
}

func TestSeedCommand_DefaultsToFirstDemoAccount(t *testing.T) {
	trigger := &testutil.MockWorkflowTrigger{}
	c := newSeedTestContainer(trigger)

	root := NewRootCommand(c, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"seed"})

	err := root.Execute()
	require.NoError(t, err)
	require.NotEmpty(t, trigger.Calls)
	assert.Equal(t, domain.DemoAccounts[0].ID, trigger.Calls[0].Request.Actor.ID)
}
