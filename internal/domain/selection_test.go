package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionStore_SetThenGet(t *testing.T) {
	s := NewSelectionStore()
	assert.Empty(t, s.Get())

	s.Set("item-1")
	assert.Equal(t, "item-1", s.Get())

	s.Set("item-2")
	assert.Equal(t, "item-2", s.Get())

	s.Clear()
	assert.Empty(t, s.Get())
}

func TestFindAccount(t *testing.T) {
	acc := FindAccount("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	assert.NotNil(t, acc)
	assert.Equal(t, "Brett Kertzmann", acc.Label)

	assert.Nil(t, FindAccount("nope"))
}

func TestCurrentAccount_FallsBackToFirst(t *testing.T) {
	acc := CurrentAccount("unknown-id")
	assert.Equal(t, DemoAccounts[0].ID, acc.ID)
}

func TestFindIssue(t *testing.T) {
	issues := []Issue{{ID: "A"}, {ID: "B"}}
	assert.NotNil(t, FindIssue(issues, "B"))
	assert.Nil(t, FindIssue(issues, "C"))
}
