package summary

import "errors"

var (
	ErrEmptyTitle       = errors.New("summary: title cannot be empty")
	ErrEmptyLang        = errors.New("summary: language code cannot be empty")
	ErrNotFound         = errors.New("summary: record not found")
	ErrClosed           = errors.New("summary: store is closed")
	ErrUnexpectedStatus = errors.New("summary: unexpected response status")
	ErrDecodeFailed     = errors.New("summary: failed to decode response")
	ErrFetchFailed      = errors.New("summary: fetch failed")
	ErrStoreFailed      = errors.New("summary: failed to store record")
)
