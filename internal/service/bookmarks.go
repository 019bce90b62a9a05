// Package service contains the application operations: the bookmark
// ingestion pipeline and account management.
package service

import (
	"context"
	"regexp"
	"time"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/store"
)

// urlPattern accepts an http(s) scheme followed by anything without
// spaces or double quotes.
var urlPattern = regexp.MustCompile(`^(http|https)://[^ "]+$`)

// SummaryEmpty replaces an empty summarization response.
const SummaryEmpty = "Summary not available"

// MetadataExtractor yields display metadata for a page. Implementations
// degrade to fallback values instead of failing.
type MetadataExtractor interface {
	Extract(ctx context.Context, pageURL string) domain.PageMeta
}

// SummaryFetcher yields a plain-text summary for a page. Implementations
// degrade to a sentinel instead of failing.
type SummaryFetcher interface {
	Fetch(ctx context.Context, pageURL string) string
}

// Bookmarks runs the ingestion pipeline and owner-scoped reads/deletes.
// It is stateless between calls; all durable state lives in the store.
type Bookmarks struct {
	store     store.Bookmarks
	meta      MetadataExtractor
	summaries SummaryFetcher
	log       logger.Logger
	now       func() time.Time
}

// NewBookmarks wires the pipeline.
func NewBookmarks(s store.Bookmarks, meta MetadataExtractor, summaries SummaryFetcher, log logger.Logger) *Bookmarks {
	return &Bookmarks{
		store:     s,
		meta:      meta,
		summaries: summaries,
		log:       log,
		now:       time.Now,
	}
}

// Add runs validate -> duplicate check -> enrich -> persist and returns
// the created bookmark. Validation and the duplicate check fail fast
// before any outbound call; enrichment cannot fail the pipeline.
func (s *Bookmarks) Add(ctx context.Context, ownerID, rawURL string) (*domain.Bookmark, error) {
	if !urlPattern.MatchString(rawURL) {
		return nil, errors.Validation("invalid URL format")
	}

	// Fast-path duplicate check before spending two outbound calls.
	// The store's insert claim remains the authoritative guard.
	if _, err := s.store.ByOwnerAndURL(ctx, ownerID, rawURL); err == nil {
		return nil, errors.AlreadyExists("you have already saved this bookmark")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, errors.Internal(err)
	}

	// Sequential enrichment: metadata first, then the summary. Both
	// always return usable values.
	meta := s.meta.Extract(ctx, rawURL)
	summaryText := s.summaries.Fetch(ctx, rawURL)
	if summaryText == "" {
		summaryText = SummaryEmpty
	}

	b := &domain.Bookmark{
		URL:       rawURL,
		Title:     meta.Title,
		Favicon:   meta.Favicon,
		Summary:   summaryText,
		Owner:     ownerID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Insert(ctx, b); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race between the pre-check and the insert claim.
			return nil, errors.AlreadyExists("you have already saved this bookmark")
		}
		return nil, errors.Internal(err)
	}

	s.log.Info("bookmark created",
		logger.String("id", b.ID),
		logger.String("owner", ownerID),
		logger.String("url", rawURL))

	return b, nil
}

// List returns the owner's bookmarks, newest-created first.
func (s *Bookmarks) List(ctx context.Context, ownerID string) ([]*domain.Bookmark, error) {
	bookmarks, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return bookmarks, nil
}

// Delete removes a bookmark after checking ownership. A missing id is
// not-found; an ownership mismatch is forbidden, deliberately distinct
// so existence is leaked but content is not.
func (s *Bookmarks) Delete(ctx context.Context, ownerID, bookmarkID string) error {
	b, err := s.store.ByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errors.NotFound("bookmark not found")
		}
		return errors.Internal(err)
	}

	if b.Owner != ownerID {
		return errors.Forbidden("not authorized")
	}

	if err := s.store.Delete(ctx, bookmarkID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errors.NotFound("bookmark not found")
		}
		return errors.Internal(err)
	}

	s.log.Info("bookmark deleted",
		logger.String("id", bookmarkID),
		logger.String("owner", ownerID))

	return nil
}
