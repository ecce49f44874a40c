// Package domain contains core business entities and interfaces.
package domain

import "time"

// Status represents the workflow status of an issue.
type Status string

// Issue statuses. These mirror the demo tracker the feed events are
// generated from; the feed itself never changes them.
const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in progress"
	StatusOpen       Status = "open"
	StatusClosed     Status = "closed"
)

// Priority represents the priority of an issue.
type Priority string

// Issue priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Issue is a synthetic ticket-like record used as demo content.
// Issues are loaded once at startup and are immutable for the lifetime
// of the process; the feed references them by ID.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Date           time.Time `yaml:"date"`
	ID             string    `yaml:"id"` // Unique, stable identifier (e.g. "ISS-8726")
	Title          string    `yaml:"title"`
	Description    string    `yaml:"description"`
	Type           string    `yaml:"type"` // bug, feature, task, enhancement, security
	Assignee       string    `yaml:"assignee"`
	Reporter       string    `yaml:"reporter"`
	Status         Status    `yaml:"status"`
	PreviousStatus Status    `yaml:"previousStatus"`
	Priority       Priority  `yaml:"priority"`
	Labels         []string  `yaml:"labels"`
	Comments       []Comment `yaml:"comments"`
}

// Comment is a single comment on an issue.
type Comment struct {
	Time   time.Time `yaml:"datetime" json:"datetime"`
	Author string    `yaml:"author" json:"author"`
	Text   string    `yaml:"text" json:"text"`
}

// HasLabel reports whether the issue carries the given label.
func (i *Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// FindIssue returns the issue with the given ID, or nil if none matches.
// A nil result is an expected outcome, not an error: feed items may
// reference issues the local store does not know about.
func FindIssue(issues []Issue, id string) *Issue {
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i]
		}
	}
	return nil
}
