// Package memory provides an ephemeral in-process store with the same
// semantics as the redis store. Selected with BOOKMARKS_STORE=memory for
// local development; also the store used by service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/id"
	"github.com/upandey0/bookmarks/internal/store"
)

// Store holds everything behind one RWMutex. Inserts claim the
// uniqueness indexes under the write lock, so the (owner, url) and
// email invariants hold even for concurrent identical inserts.
type Store struct {
	mu         sync.RWMutex
	bookmarks  map[string]*domain.Bookmark // id -> bookmark
	byOwnerURL map[ownerURL]string         // (owner, url) -> bookmark id
	seq        map[string]uint64           // bookmark id -> insert sequence
	nextSeq    uint64
	users      map[string]*domain.User // id -> user
	byEmail    map[string]string       // email -> user id
}

type ownerURL struct {
	owner string
	url   string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		bookmarks:  make(map[string]*domain.Bookmark),
		byOwnerURL: make(map[ownerURL]string),
		seq:        make(map[string]uint64),
		users:      make(map[string]*domain.User),
		byEmail:    make(map[string]string),
	}
}

// Insert assigns an id and persists b. The (owner, url) claim and the
// write happen under one lock, so duplicates cannot double-insert.
func (s *Store) Insert(ctx context.Context, b *domain.Bookmark) error {
	newID, err := id.New("bm")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := ownerURL{owner: b.Owner, url: b.URL}
	if _, exists := s.byOwnerURL[key]; exists {
		return store.ErrDuplicate
	}

	b.ID = newID
	stored := *b
	s.bookmarks[b.ID] = &stored
	s.byOwnerURL[key] = b.ID
	s.nextSeq++
	s.seq[b.ID] = s.nextSeq

	return nil
}

// ByID returns a copy of the bookmark with the given id.
func (s *Store) ByID(ctx context.Context, bookmarkID string) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookmarks[bookmarkID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

// ByOwnerAndURL returns the owner's bookmark for url.
func (s *Store) ByOwnerAndURL(ctx context.Context, owner, url string) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarkID, ok := s.byOwnerURL[ownerURL{owner: owner, url: url}]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s.bookmarks[bookmarkID]
	return &cp, nil
}

// ListByOwner returns the owner's bookmarks newest-created first.
// Ties on CreatedAt fall back to insert order, newest first, so the
// ordering is stable regardless of map iteration.
func (s *Store) ListByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.Owner != owner {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})

	return out, nil
}

// Delete removes the bookmark with the given id.
func (s *Store) Delete(ctx context.Context, bookmarkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[bookmarkID]
	if !ok {
		return store.ErrNotFound
	}

	delete(s.bookmarks, bookmarkID)
	delete(s.byOwnerURL, ownerURL{owner: b.Owner, url: b.URL})
	delete(s.seq, bookmarkID)

	return nil
}

// Users returns the user-collection view of the store, satisfying
// store.Users without colliding with the bookmark method set.
func (s *Store) Users() store.Users { return usersView{s} }

type usersView struct{ s *Store }

func (v usersView) Insert(ctx context.Context, u *domain.User) error {
	return v.s.InsertUser(ctx, u)
}

func (v usersView) ByID(ctx context.Context, userID string) (*domain.User, error) {
	return v.s.UserByID(ctx, userID)
}

func (v usersView) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	return v.s.UserByEmail(ctx, email)
}

// InsertUser assigns an id and persists u, claiming the email index.
func (s *Store) InsertUser(ctx context.Context, u *domain.User) error {
	newID, err := id.New("usr")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return store.ErrDuplicate
	}

	u.ID = newID
	stored := *u
	s.users[u.ID] = &stored
	s.byEmail[u.Email] = u.ID

	return nil
}

// UserByID returns a copy of the user with the given id.
func (s *Store) UserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// UserByEmail returns the user registered with email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s.users[userID]
	return &cp, nil
}
