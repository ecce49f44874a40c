// Package cli provides the command-line interface for the inbox demo.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for the inbox CLI.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "inbox",
		Short: "Notification inbox demo powered by Knock",
		Long: `inbox is a demo application showing an in-app notification feed.

It renders a three-pane issue tracker inbox backed by a Knock feed:
notifications arrive as workflow triggers, and the TUI lets you read,
archive, filter and inspect them.

Run without arguments to open the interactive inbox. Use 'inbox seed'
to populate the feed with demo notifications first.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newSeedCommand(c),
		newListCommand(c),
		newConfigCommand(c),
	)

	return root
}

// launchTUI starts the interactive inbox.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
