package domain

import "errors"

// Domain errors.
var (
	ErrAccountNotFound  = errors.New("account not found for configured user id")
	ErrItemNotFound     = errors.New("feed item not found")
	ErrNoSelection      = errors.New("no feed item selected")
	ErrMissingSecretKey = errors.New("secret API key is not configured")
	ErrMissingPublicKey = errors.New("public API key is not configured")
	ErrMissingUserID    = errors.New("user id is not configured")
	ErrMissingChannelID = errors.New("feed channel id is not configured")
	ErrEmptyComment     = errors.New("comment text cannot be empty")
)
