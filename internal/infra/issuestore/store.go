// Package issuestore provides the embedded demo issue fixtures.
package issuestore

import (
	_ "embed"
	"fmt"

	"github.com/knocklabs/inbox-example-app/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed issues.yaml
var issuesYAML []byte

// Ensure Store implements domain.IssueStore.
var _ domain.IssueStore = (*Store)(nil)

// Store holds the demo issue set, parsed once at construction.
type Store struct {
	issues []domain.Issue
}

// New parses the embedded fixtures and returns the store.
func New() (*Store, error) {
	return NewFromYAML(issuesYAML)
}

// NewFromYAML builds a store from raw YAML fixture data. Exposed for
// tests that need a custom issue set.
func NewFromYAML(data []byte) (*Store, error) {
	var issues []domain.Issue
	if err := yaml.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("parse issue fixtures: %w", err)
	}
	return &Store{issues: issues}, nil
}

// All returns every issue in store order.
func (s *Store) All() []domain.Issue {
	return s.issues
}

// Find returns the issue with the given id, or nil.
func (s *Store) Find(id string) *domain.Issue {
	return domain.FindIssue(s.issues, id)
}
