package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeFilterStatus, "filter_status"},
		{ModeFilterLabel, "filter_label"},
		{ModeCompose, "compose"},
		{ModeComposeDone, "compose_done"},
		{ModeHelp, "help"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestModeIsInputMode(t *testing.T) {
	assert.True(t, ModeCompose.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
	assert.False(t, ModeFilterStatus.IsInputMode())
	assert.False(t, ModeHelp.IsInputMode())
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "Inbox", ViewInbox.String())
	assert.Equal(t, "Archive", ViewArchive.String())
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "All", TabAll.String())
	assert.Equal(t, "Unread", TabUnread.String())
}

func TestFetchStateString(t *testing.T) {
	assert.Equal(t, "idle", FetchIdle.String())
	assert.Equal(t, "pending", FetchPending.String())
	assert.Equal(t, "success", FetchSuccess.String())
	assert.Equal(t, "failed", FetchFailed.String())
}
