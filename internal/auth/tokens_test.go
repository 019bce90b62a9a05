package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upandey0/bookmarks/internal/domain"
)

const testKeyHex = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"

func newTestService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testKeyHex, ttl)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_KeyValidation(t *testing.T) {
	tests := []struct {
		name   string
		keyHex string
	}{
		{"too short", "abcd"},
		{"not hex", strings.Repeat("zz", 32)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.keyHex, time.Hour)
			assert.Error(t, err)
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)
	user := &domain.User{ID: "usr-abc123", Email: "alice@example.com"}

	token, err := svc.Generate(user)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.Generate(&domain.User{ID: "usr-x", Email: "x@example.com"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Tampered(t *testing.T) {
	svc := newTestService(t, time.Hour)
	token, err := svc.Generate(&domain.User{ID: "usr-x", Email: "x@example.com"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestVerify_WrongKey(t *testing.T) {
	svc := newTestService(t, time.Hour)
	token, err := svc.Generate(&domain.User{ID: "usr-x", Email: "x@example.com"})
	require.NoError(t, err)

	other, err := NewTokenService(strings.Repeat("00", 32), time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}
