package auth

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/id"
)

const (
	tokenIssuer   = "bookmarks-api"
	tokenAudience = "bookmarks-web"

	// PASETO v4.local symmetric key: 32 bytes, configured as hex.
	keyHexSize = 64
)

// Claims are the verified contents of an access token.
type Claims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies PASETO v4.local access tokens.
type TokenService struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
	now func() time.Time
}

// NewTokenService builds a token service from a 64-char hex key.
func NewTokenService(keyHex string, ttl time.Duration) (*TokenService, error) {
	if len(keyHex) != keyHexSize {
		return nil, fmt.Errorf("token key must be %d hex characters, got %d", keyHexSize, len(keyHex))
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex token key: %w", err)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("create symmetric key: %w", err)
	}

	return &TokenService{key: key, ttl: ttl, now: time.Now}, nil
}

// Generate creates an encrypted access token for the user.
func (s *TokenService) Generate(user *domain.User) (string, error) {
	now := s.now()

	token := paseto.NewToken()
	token.SetIssuer(tokenIssuer)
	token.SetAudience(tokenAudience)
	token.SetSubject(user.ID)
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.ttl))

	jti, err := id.New("tok")
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	token.SetJti(jti)

	//nolint:errcheck // Set only errors on unserializable values, ours are strings
	_ = token.Set("user_id", user.ID)
	//nolint:errcheck
	_ = token.Set("email", user.Email)

	return token.V4Encrypt(s.key, nil), nil
}

// Verify decrypts and validates a token, returning its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(s.now()))

	token, err := parser.ParseV4Local(s.key, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	var claims Claims
	if err := token.Get("user_id", &claims.UserID); err != nil {
		return nil, fmt.Errorf("token missing user_id: %w", err)
	}
	if err := token.Get("email", &claims.Email); err != nil {
		return nil, fmt.Errorf("token missing email: %w", err)
	}

	return &claims, nil
}
