// Package store defines the persistence contracts for bookmarks and users.
//
// Two implementations exist: store/redis (durable, the default) and
// store/memory (ephemeral, for local dev and tests). Both enforce the
// uniqueness invariants atomically at insert time, so a duplicate racing
// past a caller's pre-check is still rejected here.
package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// invariant: (owner, url) for bookmarks, email for users.
	ErrDuplicate = errors.New("record already exists")
)
