package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knocklabs/inbox-example-app/internal/app"
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/infra/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect and bootstrap the inbox configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Values come from built-in defaults, then config.toml, then KNOCK_*
environment variables. API keys are redacted in the output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			redacted := *c.Config
			redacted.Knock.SecretAPIKey = redactKey(redacted.Knock.SecretAPIKey)
			redacted.Knock.PublicAPIKey = redactKey(redacted.Knock.PublicAPIKey)

			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(redacted); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return nil
		},
	}
}

// redactKey hides all but the last four characters of an API key.
func redactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

Creates config.toml under the user configuration directory with the
default settings filled in. Fails if the file already exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := config.DefaultDir()
			if dir == "" {
				return fmt.Errorf("cannot resolve config directory")
			}
			path := filepath.Join(dir, domain.ConfigFileName)

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			data, err := toml.Marshal(domain.NewDefaultConfig())
			if err != nil {
				return fmt.Errorf("encode config template: %w", err)
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}
}
