// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/infra/config"
	"github.com/knocklabs/inbox-example-app/internal/infra/issuestore"
	"github.com/knocklabs/inbox-example-app/internal/infra/knock"
	"github.com/knocklabs/inbox-example-app/internal/infra/layoutstore"
	"github.com/knocklabs/inbox-example-app/internal/infra/logging"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Feed      domain.FeedClient
	Trigger   domain.WorkflowTrigger
	Issues    domain.IssueStore
	Clock     domain.Clock
	Logger    domain.Logger
	Selection *domain.SelectionStore

	// Concrete infra
	Layout *layoutstore.Store

	// Resolved configuration
	Config *domain.Config
}

// New creates a Container with production dependencies: config from
// file + environment, embedded issue fixtures, the vendor HTTP client,
// and a file logger under the state directory.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	issues, err := issuestore.New()
	if err != nil {
		return nil, fmt.Errorf("load issue fixtures: %w", err)
	}

	client := knock.NewClient(cfg.Knock)
	logger := logging.New(logging.DefaultPath(), logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Feed:      client,
		Trigger:   client,
		Issues:    issues,
		Clock:     domain.RealClock{},
		Logger:    logger,
		Selection: domain.NewSelectionStore(),
		Layout:    layoutstore.New(layoutstore.DefaultPath()),
		Config:    cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, feed domain.FeedClient, trigger domain.WorkflowTrigger, issues domain.IssueStore, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = logging.New("", 0)
	}
	return &Container{
		Feed:      feed,
		Trigger:   trigger,
		Issues:    issues,
		Clock:     domain.RealClock{},
		Logger:    logger,
		Selection: domain.NewSelectionStore(),
		Config:    cfg,
	}
}

// UseCase factory methods

// FetchFeedUseCase returns a new FetchFeed use case.
func (c *Container) FetchFeedUseCase() *usecase.FetchFeed {
	return usecase.NewFetchFeed(c.Feed)
}

// MarkItemUseCase returns a new MarkItem use case.
func (c *Container) MarkItemUseCase() *usecase.MarkItem {
	return usecase.NewMarkItem(c.Feed)
}

// SeedFeedUseCase returns a new SeedFeed use case.
func (c *Container) SeedFeedUseCase() *usecase.SeedFeed {
	return usecase.NewSeedFeed(c.Trigger, c.Issues, c.Logger)
}

// ListItemsUseCase returns a new ListItems use case.
func (c *Container) ListItemsUseCase() *usecase.ListItems {
	return usecase.NewListItems(c.Feed, c.Issues)
}
