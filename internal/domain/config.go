package domain

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// DefaultWorkflowKey is the workflow triggered by the seed script.
const DefaultWorkflowKey = "inbox-demo"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Knock KnockConfig `toml:"knock"` // [knock] settings
	Log   LogConfig   `toml:"log"`   // [log] settings
}

// KnockConfig holds the notification vendor credentials and addressing
// from the [knock] section. Any value may be overridden by environment
// variables; absent values stay empty strings and are rejected by the
// client on first use.
type KnockConfig struct {
	SecretAPIKey  string `toml:"secret_api_key"`  // Server-side key (seed only)
	PublicAPIKey  string `toml:"public_api_key"`  // Client-side key
	UserID        string `toml:"user_id"`         // Selects the current demo account
	FeedChannelID string `toml:"feed_channel_id"` // In-app feed channel
	WorkflowKey   string `toml:"workflow_key"`    // Workflow triggered by seeding
	BaseURL       string `toml:"base_url"`        // API origin override (tests)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Knock: KnockConfig{
			WorkflowKey: DefaultWorkflowKey,
			BaseURL:     "https://api.knock.app",
		},
		Log: LogConfig{Level: "info"},
	}
}
