package domain

import "time"

// User is an account identified by email. Users own zero or more bookmarks.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// PasswordHash is the argon2id encoded hash. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
