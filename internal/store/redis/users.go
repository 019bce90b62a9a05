package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/id"
	"github.com/upandey0/bookmarks/internal/store"
)

// Users implements store.Users on a Redis client.
type Users struct {
	client *goredis.Client
}

// userRecord is the storage shape. domain.User hides the password hash
// from API serialization, so storage marshals its own record.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toRecord(u *domain.User) userRecord {
	return userRecord{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Email: r.Email, PasswordHash: r.PasswordHash, CreatedAt: r.CreatedAt}
}

// NewUsers creates the user collection.
func NewUsers(client *goredis.Client) *Users {
	return &Users{client: client}
}

// Insert assigns an id to u and persists it. The HSETNX claim on the
// email index is the uniqueness constraint for registration.
func (s *Users) Insert(ctx context.Context, u *domain.User) error {
	newID, err := id.New("usr")
	if err != nil {
		return err
	}
	u.ID = newID

	data, err := json.Marshal(toRecord(u))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	claimed, err := s.client.HSetNX(ctx, emailIndexKey(), u.Email, u.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim email: %w", err)
	}
	if !claimed {
		return store.ErrDuplicate
	}

	if err := s.client.Set(ctx, userKey(u.ID), data, 0).Err(); err != nil {
		_ = s.client.HDel(ctx, emailIndexKey(), u.Email).Err()
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// ByID retrieves a user by id.
func (s *Users) ByID(ctx context.Context, userID string) (*domain.User, error) {
	data, err := s.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return rec.toDomain(), nil
}

// ByEmail resolves the email index, then loads the record.
func (s *Users) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	userID, err := s.client.HGet(ctx, emailIndexKey(), email).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	return s.ByID(ctx, userID)
}
