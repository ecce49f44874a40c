// Package knock implements the notification vendor API client. It
// covers the two surfaces the app needs: the server-side workflow
// trigger used by seeding, and the client-side in-app feed with its
// per-message read/archive state.
package knock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/knocklabs/inbox-example-app/internal/domain"
)

// Ensure Client implements both ports.
var (
	_ domain.FeedClient      = (*Client)(nil)
	_ domain.WorkflowTrigger = (*Client)(nil)
)

// Client talks to the vendor REST API.
// Fields are ordered to minimize memory padding.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	publicKey  string
	userID     string
	channelID  string
}

// NewClient creates a Client from the knock config section. Missing
// credentials are not an error here; each call validates the keys it
// needs so that, for example, the TUI works without the secret key.
func NewClient(cfg domain.KnockConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretAPIKey,
		publicKey:  cfg.PublicAPIKey,
		userID:     cfg.UserID,
		channelID:  cfg.FeedChannelID,
	}
}

// recipient is the wire shape of a workflow recipient or actor.
type recipient struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// triggerBody is the wire shape of a workflow trigger call.
type triggerBody struct {
	Recipients []recipient         `json:"recipients"`
	Actor      recipient           `json:"actor"`
	Data       domain.EventPayload `json:"data"`
}

// Trigger runs the named workflow for the given recipients.
func (c *Client) Trigger(ctx context.Context, workflowKey string, req domain.TriggerRequest) error {
	if c.secretKey == "" {
		return domain.ErrMissingSecretKey
	}

	body := triggerBody{
		Recipients: make([]recipient, 0, len(req.Recipients)),
		Actor:      recipient{ID: req.Actor.ID, Email: req.Actor.Email, Name: req.Actor.Label},
		Data:       req.Data,
	}
	for _, r := range req.Recipients {
		body.Recipients = append(body.Recipients, recipient{ID: r.ID, Email: r.Email, Name: r.Label})
	}

	endpoint := fmt.Sprintf("%s/v1/workflows/%s/trigger", c.baseURL, url.PathEscape(workflowKey))
	return c.do(ctx, http.MethodPost, endpoint, c.secretKey, body, nil)
}

// feedEntry is the wire shape of one delivered feed item. The data
// payload historically carried the issue key under both "id" and
// "issue_id"; the alias is normalized onto the canonical field here,
// at ingestion.
type feedEntry struct {
	ID         string     `json:"id"`
	ReadAt     *time.Time `json:"read_at"`
	ArchivedAt *time.Time `json:"archived_at"`
	InsertedAt time.Time  `json:"inserted_at"`
	Data       struct {
		domain.EventPayload
		LegacyIssueID string `json:"issue_id"`
	} `json:"data"`
	Blocks []struct {
		Name     string `json:"name"`
		Rendered string `json:"rendered"`
	} `json:"blocks"`
}

// feedResponse is the wire shape of a feed fetch.
type feedResponse struct {
	Entries []feedEntry         `json:"entries"`
	Meta    domain.FeedMetadata `json:"meta"`
}

// Fetch retrieves all feed items, archived included, plus metadata.
func (c *Client) Fetch(ctx context.Context) ([]domain.FeedItem, domain.FeedMetadata, error) {
	if err := c.requireFeedConfig(); err != nil {
		return nil, domain.FeedMetadata{}, err
	}

	endpoint := fmt.Sprintf("%s/v1/users/%s/feeds/%s?archived=include",
		c.baseURL, url.PathEscape(c.userID), url.PathEscape(c.channelID))

	var resp feedResponse
	if err := c.do(ctx, http.MethodGet, endpoint, c.publicKey, nil, &resp); err != nil {
		return nil, domain.FeedMetadata{}, err
	}

	items := make([]domain.FeedItem, 0, len(resp.Entries))
	for _, entry := range resp.Entries {
		payload := entry.Data.EventPayload
		if payload.IssueID == "" {
			payload.IssueID = entry.Data.LegacyIssueID
		}

		item := domain.FeedItem{
			ID:         entry.ID,
			ReadAt:     entry.ReadAt,
			ArchivedAt: entry.ArchivedAt,
			InsertedAt: entry.InsertedAt,
			Payload:    payload,
		}
		for _, block := range entry.Blocks {
			if block.Name == "body" {
				item.Body = block.Rendered
				break
			}
		}
		items = append(items, item)
	}

	return items, resp.Meta, nil
}

// MarkAsRead sets the item's read timestamp.
func (c *Client) MarkAsRead(ctx context.Context, itemID string) error {
	return c.setStatus(ctx, itemID, "read", true)
}

// MarkAsUnread clears the item's read timestamp.
func (c *Client) MarkAsUnread(ctx context.Context, itemID string) error {
	return c.setStatus(ctx, itemID, "read", false)
}

// MarkAsArchived sets the item's archive timestamp.
func (c *Client) MarkAsArchived(ctx context.Context, itemID string) error {
	return c.setStatus(ctx, itemID, "archived", true)
}

// MarkAsUnarchived clears the item's archive timestamp.
func (c *Client) MarkAsUnarchived(ctx context.Context, itemID string) error {
	return c.setStatus(ctx, itemID, "archived", false)
}

func (c *Client) setStatus(ctx context.Context, itemID, status string, set bool) error {
	if err := c.requireFeedConfig(); err != nil {
		return err
	}
	if itemID == "" {
		return domain.ErrItemNotFound
	}

	method := http.MethodPut
	if !set {
		method = http.MethodDelete
	}
	endpoint := fmt.Sprintf("%s/v1/messages/%s/status/%s", c.baseURL, url.PathEscape(itemID), status)
	return c.do(ctx, method, endpoint, c.publicKey, nil, nil)
}

func (c *Client) requireFeedConfig() error {
	switch {
	case c.publicKey == "":
		return domain.ErrMissingPublicKey
	case c.userID == "":
		return domain.ErrMissingUserID
	case c.channelID == "":
		return domain.ErrMissingChannelID
	}
	return nil
}

// do sends one request and decodes the response into out (when out is
// non-nil). Non-2xx responses become errors carrying a body snippet.
func (c *Client) do(ctx context.Context, method, endpoint, key string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
