package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/store"
)

func TestInsertAssignsID(t *testing.T) {
	s := New()
	b := &domain.Bookmark{Owner: "usr-a", URL: "https://example.com", CreatedAt: time.Now()}

	if err := s.Insert(context.Background(), b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if b.ID == "" {
		t.Errorf("Insert() did not assign an id")
	}

	got, err := s.ByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if got.URL != b.URL {
		t.Errorf("ByID().URL = %q, want %q", got.URL, b.URL)
	}
}

func TestInsertDuplicate(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := &domain.Bookmark{Owner: "usr-a", URL: "https://example.com"}
	if err := s.Insert(ctx, first); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	second := &domain.Bookmark{Owner: "usr-a", URL: "https://example.com"}
	if err := s.Insert(ctx, second); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("second Insert() error = %v, want ErrDuplicate", err)
	}

	// Same URL for a different owner is fine.
	other := &domain.Bookmark{Owner: "usr-b", URL: "https://example.com"}
	if err := s.Insert(ctx, other); err != nil {
		t.Errorf("other owner Insert() error = %v", err)
	}

	list, err := s.ListByOwner(ctx, "usr-a")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("owner has %d bookmarks, want exactly 1", len(list))
	}
}

func TestByOwnerAndURL(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := &domain.Bookmark{Owner: "usr-a", URL: "https://go.dev"}
	if err := s.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := s.ByOwnerAndURL(ctx, "usr-a", "https://go.dev")
	if err != nil {
		t.Fatalf("ByOwnerAndURL() error = %v", err)
	}
	if got.ID != b.ID {
		t.Errorf("ByOwnerAndURL().ID = %q, want %q", got.ID, b.ID)
	}

	if _, err := s.ByOwnerAndURL(ctx, "usr-b", "https://go.dev"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("other owner lookup error = %v, want ErrNotFound", err)
	}
}

func TestListByOwnerOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Now()

	urls := []string{"https://a.example", "https://b.example", "https://c.example"}
	for i, u := range urls {
		b := &domain.Bookmark{Owner: "usr-a", URL: u, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := s.Insert(ctx, b); err != nil {
			t.Fatalf("Insert(%s) error = %v", u, err)
		}
	}

	list, err := s.ListByOwner(ctx, "usr-a")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}

	want := []string{"https://c.example", "https://b.example", "https://a.example"}
	if len(list) != len(want) {
		t.Fatalf("ListByOwner() len = %d, want %d", len(list), len(want))
	}
	for i, b := range list {
		if b.URL != want[i] {
			t.Errorf("list[%d].URL = %q, want %q", i, b.URL, want[i])
		}
	}

	// Idempotence: listing again without writes yields the same sequence.
	again, err := s.ListByOwner(ctx, "usr-a")
	if err != nil {
		t.Fatalf("second ListByOwner() error = %v", err)
	}
	for i := range list {
		if list[i].ID != again[i].ID {
			t.Errorf("list not stable at %d: %q vs %q", i, list[i].ID, again[i].ID)
		}
	}
}

func TestListByOwnerOrder_EqualTimestamps(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	for _, u := range []string{"https://first.example", "https://second.example"} {
		b := &domain.Bookmark{Owner: "usr-a", URL: u, CreatedAt: now}
		if err := s.Insert(ctx, b); err != nil {
			t.Fatalf("Insert(%s) error = %v", u, err)
		}
	}

	list, err := s.ListByOwner(ctx, "usr-a")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if list[0].URL != "https://second.example" {
		t.Errorf("list[0].URL = %q, want most recently inserted first", list[0].URL)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := &domain.Bookmark{Owner: "usr-a", URL: "https://example.com"}
	if err := s.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := s.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.ByID(ctx, b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	// The (owner, url) slot is released on delete.
	again := &domain.Bookmark{Owner: "usr-a", URL: "https://example.com"}
	if err := s.Insert(ctx, again); err != nil {
		t.Errorf("re-Insert() after delete error = %v", err)
	}
}

func TestUsers(t *testing.T) {
	s := New()
	ctx := context.Background()
	users := s.Users()

	u := &domain.User{Email: "alice@example.com", PasswordHash: "$argon2id$..."}
	if err := users.Insert(ctx, u); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if u.ID == "" {
		t.Errorf("Insert() did not assign an id")
	}

	dup := &domain.User{Email: "alice@example.com"}
	if err := users.Insert(ctx, dup); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("duplicate email Insert() error = %v, want ErrDuplicate", err)
	}

	byEmail, err := users.ByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ByEmail() error = %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("ByEmail().ID = %q, want %q", byEmail.ID, u.ID)
	}

	if _, err := users.ByEmail(ctx, "bob@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown email error = %v, want ErrNotFound", err)
	}
	if _, err := users.ByID(ctx, "usr-missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}
