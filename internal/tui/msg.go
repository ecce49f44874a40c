package tui

import (
	"github.com/knocklabs/inbox-example-app/internal/domain"
	"github.com/knocklabs/inbox-example-app/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgFeedLoaded is sent when the feed fetch completes successfully.
type MsgFeedLoaded struct {
	Items    []domain.FeedItem
	Metadata domain.FeedMetadata
}

func (MsgFeedLoaded) sealed() {}

// MsgFeedFailed is sent when the feed fetch fails.
type MsgFeedFailed struct {
	Err error
}

func (MsgFeedFailed) sealed() {}

// MsgItemMarked is sent when a mark call completes. A successful mark
// triggers a refetch so the local copy follows the service state.
type MsgItemMarked struct {
	ItemID string
	Action usecase.MarkAction
}

func (MsgItemMarked) sealed() {}

// MsgError is sent when an action fails; shown in the footer.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

// MsgLayoutSaved is sent after the pane layout has been persisted.
type MsgLayoutSaved struct {
	Err error // nil on success; persistence failures are non-fatal
}

func (MsgLayoutSaved) sealed() {}
