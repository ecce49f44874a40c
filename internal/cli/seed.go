package cli

import (
	"fmt"

	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
	"github.com/spf13/cobra"
)

// newSeedCommand creates the seed command.
func newSeedCommand(c *app.Container) *cobra.Command {
	var opts struct {
		User     string
		Workflow string
	}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the feed with demo notifications",
		Long: `Populate the feed with demo notifications.

Triggers the notification workflow once per issue and event kind
(status change, assignment, comment), addressed to the configured
demo user. Triggers run one at a time; a failed trigger is reported
and seeding continues with the next one.

Examples:
  # Seed for the user configured in config.toml / KNOCK_USER_ID
  inbox seed

  # Seed for a specific demo account
  inbox seed --user f47ac10b-58cc-4372-a567-0e02b2c3d479`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID := opts.User
			if userID == "" {
				// Fall back to the configured user, then the first demo account.
				userID = domain.CurrentAccount(c.Config.Knock.UserID).ID
			}
			workflowKey := opts.Workflow
			if workflowKey == "" {
				workflowKey = c.Config.Knock.WorkflowKey
			}

			uc := c.SeedFeedUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SeedFeedInput{
				UserID:      userID,
				WorkflowKey: workflowKey,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range out.Results {
				if r.Err != nil {
					_, _ = fmt.Fprintf(w, "FAIL %-8s %s: %v\n", r.Event, r.IssueID, r.Err)
				} else {
					_, _ = fmt.Fprintf(w, "ok   %-8s %s\n", r.Event, r.IssueID)
				}
			}
			if out.Failed > 0 {
				_, _ = fmt.Fprintf(w, "Seeded %d notifications, %d failed\n", len(out.Results)-out.Failed, out.Failed)
			} else {
				_, _ = fmt.Fprintf(w, "Seeded %d notifications\n", len(out.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "Demo account user ID (defaults to configured user)")
	cmd.Flags().StringVar(&opts.Workflow, "workflow", "", "Workflow key to trigger (defaults to configured workflow)")

	return cmd
}
