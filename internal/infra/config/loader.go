// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized as overrides. Each maps onto one
// field of the [knock] config section.
const (
	EnvSecretAPIKey  = "KNOCK_SECRET_API_KEY"
	EnvPublicAPIKey  = "KNOCK_PUBLIC_API_KEY"
	EnvUserID        = "KNOCK_USER_ID"
	EnvFeedChannelID = "KNOCK_FEED_CHANNEL_ID"
	EnvWorkflowKey   = "KNOCK_WORKFLOW_KEY"
	EnvAPIBaseURL    = "KNOCK_API_BASE_URL"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file with environment
// variable overrides. Precedence: defaults < file < environment.
type Loader struct {
	confDir string
	getenv  func(string) string
}

// NewLoader creates a new Loader reading from the default config
// directory (XDG_CONFIG_HOME/inbox or ~/.config/inbox).
func NewLoader() *Loader {
	return &Loader{
		confDir: defaultConfigDir(),
		getenv:  os.Getenv,
	}
}

// NewLoaderWithDir creates a Loader with a custom config directory and
// environment lookup. This is useful for testing.
func NewLoaderWithDir(confDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Loader{confDir: confDir, getenv: getenv}
}

// DefaultDir returns the directory where the config file is searched
// for by default.
func DefaultDir() string {
	return defaultConfigDir()
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "inbox")
}

// Load returns the merged configuration.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.confDir != "" {
		path := filepath.Join(l.confDir, domain.ConfigFileName)
		if err := l.loadFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	l.applyEnv(cfg)
	return cfg, nil
}

// loadFile reads a TOML config file into cfg. A missing file is
// reported as os.ErrNotExist so callers can fall through to defaults.
func (l *Loader) loadFile(path string, cfg *domain.Config) error {
	content, err := os.ReadFile(path) // #nosec G304 - path is derived from the config dir
	if err != nil {
		return err
	}

	var file struct {
		Knock domain.KnockConfig `toml:"knock"`
		Log   domain.LogConfig   `toml:"log"`
	}
	if err := toml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	mergeKnock(&cfg.Knock, file.Knock)
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	return nil
}

// applyEnv overrides config values from the environment. Unset
// variables leave the file/default value in place; the external client
// is expected to reject empty credentials on use.
func (l *Loader) applyEnv(cfg *domain.Config) {
	overrides := []struct {
		env  string
		dest *string
	}{
		{EnvSecretAPIKey, &cfg.Knock.SecretAPIKey},
		{EnvPublicAPIKey, &cfg.Knock.PublicAPIKey},
		{EnvUserID, &cfg.Knock.UserID},
		{EnvFeedChannelID, &cfg.Knock.FeedChannelID},
		{EnvWorkflowKey, &cfg.Knock.WorkflowKey},
		{EnvAPIBaseURL, &cfg.Knock.BaseURL},
	}
	for _, o := range overrides {
		if v := l.getenv(o.env); v != "" {
			*o.dest = v
		}
	}
}

func mergeKnock(base *domain.KnockConfig, over domain.KnockConfig) {
	if over.SecretAPIKey != "" {
		base.SecretAPIKey = over.SecretAPIKey
	}
	if over.PublicAPIKey != "" {
		base.PublicAPIKey = over.PublicAPIKey
	}
	if over.UserID != "" {
		base.UserID = over.UserID
	}
	if over.FeedChannelID != "" {
		base.FeedChannelID = over.FeedChannelID
	}
	if over.WorkflowKey != "" {
		base.WorkflowKey = over.WorkflowKey
	}
	if over.BaseURL != "" {
		base.BaseURL = over.BaseURL
	}
}
