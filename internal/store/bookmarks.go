package store

import (
	"context"

	"github.com/upandey0/bookmarks/internal/domain"
)

// Bookmarks is the bookmark collection contract.
type Bookmarks interface {
	// Insert assigns an id to b and persists it. Returns ErrDuplicate
	// when the owner already saved the same URL; the claim is atomic.
	Insert(ctx context.Context, b *domain.Bookmark) error

	// ByID returns the bookmark with the given id, or ErrNotFound.
	ByID(ctx context.Context, id string) (*domain.Bookmark, error)

	// ByOwnerAndURL returns the owner's bookmark for url, or ErrNotFound.
	ByOwnerAndURL(ctx context.Context, owner, url string) (*domain.Bookmark, error)

	// ListByOwner returns all of owner's bookmarks, newest-created first.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error)

	// Delete removes the bookmark with the given id, or ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Users is the user collection contract.
type Users interface {
	// Insert assigns an id to u and persists it. Returns ErrDuplicate
	// when the email is already registered; the claim is atomic.
	Insert(ctx context.Context, u *domain.User) error

	// ByID returns the user with the given id, or ErrNotFound.
	ByID(ctx context.Context, id string) (*domain.User, error)

	// ByEmail returns the user registered with email, or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*domain.User, error)
}
