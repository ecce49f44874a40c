package usecase

import (
	"context"
	"fmt"

	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// SeedFeedInput contains the parameters for seeding the feed.
type SeedFeedInput struct {
	UserID      string // Selects the demo account used as actor and recipient
	WorkflowKey string // Workflow to trigger (default: domain.DefaultWorkflowKey)
}

// SeedResult records the outcome of one (issue, event) trigger call.
// Fields are ordered to minimize memory padding.
type SeedResult struct {
	Err     error
	IssueID string
	Event   domain.EventType
}

// SeedFeedOutput contains the per-pair results of a seed run.
type SeedFeedOutput struct {
	Results []SeedResult
	Failed  int
}

// SeedFeed is the one-shot use case that pushes demo events into the
// external service: one workflow trigger per (issue, event kind) pair,
// addressed to the configured account as both actor and recipient.
type SeedFeed struct {
	trigger domain.WorkflowTrigger
	issues  domain.IssueStore
	logger  domain.Logger
}

// NewSeedFeed creates a new SeedFeed use case.
func NewSeedFeed(trigger domain.WorkflowTrigger, issues domain.IssueStore, logger domain.Logger) *SeedFeed {
	return &SeedFeed{trigger: trigger, issues: issues, logger: logger}
}

// Execute runs the seed. An unknown user id aborts before any call.
// Trigger calls run sequentially, each awaited before the next; a
// per-pair failure is logged and recorded, and iteration continues
// without retrying.
func (uc *SeedFeed) Execute(ctx context.Context, in SeedFeedInput) (*SeedFeedOutput, error) {
	account := domain.FindAccount(in.UserID)
	if account == nil {
		uc.logger.Error("seed", fmt.Sprintf("account not found for user id %q", in.UserID))
		return nil, fmt.Errorf("%w: %q", domain.ErrAccountNotFound, in.UserID)
	}

	workflowKey := in.WorkflowKey
	if workflowKey == "" {
		workflowKey = domain.DefaultWorkflowKey
	}

	out := &SeedFeedOutput{}
	for _, issue := range uc.issues.All() {
		for _, event := range domain.EventTypes {
			req := domain.TriggerRequest{
				Recipients: []domain.Account{*account},
				Actor:      *account,
				Data:       domain.NewEventPayload(issue, event),
			}

			err := uc.trigger.Trigger(ctx, workflowKey, req)
			if err != nil {
				uc.logger.Error("seed", fmt.Sprintf("trigger %s for issue %s: %v", event, issue.ID, err))
				out.Failed++
			} else {
				uc.logger.Info("seed", fmt.Sprintf("triggered %s workflow for issue %s", event, issue.ID))
			}
			out.Results = append(out.Results, SeedResult{IssueID: issue.ID, Event: event, Err: err})
		}
	}

	uc.logger.Info("seed", "finished seeding feed data")
	return out, nil
}
