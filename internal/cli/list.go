package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Label    string
		Archived bool
		Unread   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feed notifications",
		Long: `List feed notifications without opening the TUI.

By default shows the active (non-archived) partition of the feed.
Use --archived to show archived notifications instead, --unread to
restrict the active partition to unread items, and --status/--label
to filter by the referenced issue.

Examples:
  inbox list
  inbox list --unread
  inbox list --archived --status "in progress"
  inbox list --label bug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Unread && opts.Archived {
				return fmt.Errorf("--unread cannot be combined with --archived")
			}

			uc := c.ListItemsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListItemsInput{
				StatusFilter: opts.Status,
				LabelFilter:  opts.Label,
				Archived:     opts.Archived,
				UnreadOnly:   opts.Unread,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(w, "No notifications found.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "STATE\tEVENT\tISSUE\tTITLE\tWHEN")
			for _, item := range out.Items {
				state := " "
				if !item.IsRead() {
					state = "*"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					state,
					item.EventDescription(),
					item.Payload.IssueID,
					item.Payload.Title,
					humanize.Time(item.InsertedAt),
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(w, "\n%d shown, %d unread of %d total\n",
				len(out.Items), out.Metadata.UnreadCount, out.Metadata.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by issue status (e.g. 'open', 'in progress')")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Filter by issue label (e.g. 'bug')")
	cmd.Flags().BoolVar(&opts.Archived, "archived", false, "Show archived notifications")
	cmd.Flags().BoolVar(&opts.Unread, "unread", false, "Show only unread notifications")

	return cmd
}
