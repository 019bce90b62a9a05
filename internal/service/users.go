package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/upandey0/bookmarks/internal/auth"
	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/store"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 8

// Users handles registration, login and account lookup.
type Users struct {
	store  store.Users
	tokens *auth.TokenService
	log    logger.Logger
}

// NewUsers wires the account operations.
func NewUsers(s store.Users, tokens *auth.TokenService, log logger.Logger) *Users {
	return &Users{store: s, tokens: tokens, log: log}
}

// Register creates an account and returns the user with a fresh access
// token. Emails are normalized to lower case before the uniqueness
// claim, so Alice@ and alice@ are the same account.
func (s *Users) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, "", errors.Validation("invalid email address")
	}
	if len(password) < minPasswordLen {
		return nil, "", errors.Validation("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", errors.Validation(err.Error())
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", errors.AlreadyExists("email already registered")
		}
		return nil, "", errors.Internal(err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", errors.Internal(err)
	}

	s.log.Info("user registered", logger.String("id", user.ID))

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh access
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *Users) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", errors.InvalidCredentials("invalid email or password")
		}
		return nil, "", errors.Internal(err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", errors.InvalidCredentials("invalid email or password")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", errors.Internal(err)
	}

	s.log.Info("user logged in", logger.String("id", user.ID))

	return user, token, nil
}

// Get returns the user with the given id.
func (s *Users) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Internal(err)
	}
	return user, nil
}
