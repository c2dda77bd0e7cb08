package syncds

import "errors"

var (
	// ErrEmptyContainer is returned by Pop and PopHandle when there is
	// nothing to extract.
	ErrEmptyContainer = errors.New("syncds: container is empty")
)
