package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyMessage = errors.New("empty message")
	ErrBusy         = errors.New("a reply is still pending")
	ErrNoCredential = errors.New("no API credential configured")
)
