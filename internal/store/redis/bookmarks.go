// Package redis persists bookmarks and users in Redis.
//
// Records are stored as JSON under prefixed keys. Two secondary
// structures serve the access patterns: a per-owner ZSET scored by
// creation time for newest-first listing, and a per-owner URL hash
// whose HSETNX claim is the store-level (owner, url) uniqueness
// constraint: two racing inserts of the same URL cannot both win.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/id"
	"github.com/upandey0/bookmarks/internal/store"
)

// Bookmarks implements store.Bookmarks on a Redis client.
type Bookmarks struct {
	client *goredis.Client
}

// NewBookmarks creates the bookmark collection.
func NewBookmarks(client *goredis.Client) *Bookmarks {
	return &Bookmarks{client: client}
}

// Insert assigns an id to b and persists it. The HSETNX claim on the
// owner's URL index happens first and is atomic: the loser of a race
// gets store.ErrDuplicate and nothing is written.
func (s *Bookmarks) Insert(ctx context.Context, b *domain.Bookmark) error {
	newID, err := id.New("bm")
	if err != nil {
		return err
	}
	b.ID = newID

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	claimed, err := s.client.HSetNX(ctx, ownerURLIndexKey(b.Owner), b.URL, b.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim bookmark url: %w", err)
	}
	if !claimed {
		return store.ErrDuplicate
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, bookmarkKey(b.ID), data, 0)
	pipe.ZAdd(ctx, ownerBookmarksKey(b.Owner), goredis.Z{
		Score:  float64(b.CreatedAt.UnixNano()),
		Member: b.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		// Release the claim so the URL is not stuck on a half-failed insert.
		_ = s.client.HDel(ctx, ownerURLIndexKey(b.Owner), b.URL).Err()
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	return nil
}

// ByID retrieves a bookmark by id.
func (s *Bookmarks) ByID(ctx context.Context, bookmarkID string) (*domain.Bookmark, error) {
	data, err := s.client.Get(ctx, bookmarkKey(bookmarkID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	return &b, nil
}

// ByOwnerAndURL resolves the owner's URL index, then loads the record.
func (s *Bookmarks) ByOwnerAndURL(ctx context.Context, owner, url string) (*domain.Bookmark, error) {
	bookmarkID, err := s.client.HGet(ctx, ownerURLIndexKey(owner), url).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up bookmark url: %w", err)
	}

	return s.ByID(ctx, bookmarkID)
}

// ListByOwner returns the owner's bookmarks newest-created first, using
// the creation-time ZSET in reverse order. Records that cannot be
// loaded are skipped.
func (s *Bookmarks) ListByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error) {
	ids, err := s.client.ZRevRange(ctx, ownerBookmarksKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmark ids: %w", err)
	}

	bookmarks := make([]*domain.Bookmark, 0, len(ids))
	for _, bookmarkID := range ids {
		b, err := s.ByID(ctx, bookmarkID)
		if err != nil {
			continue
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, nil
}

// Delete removes a bookmark and its index entries.
func (s *Bookmarks) Delete(ctx context.Context, bookmarkID string) error {
	b, err := s.ByID(ctx, bookmarkID)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, bookmarkKey(bookmarkID))
	pipe.ZRem(ctx, ownerBookmarksKey(b.Owner), bookmarkID)
	pipe.HDel(ctx, ownerURLIndexKey(b.Owner), b.URL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}
