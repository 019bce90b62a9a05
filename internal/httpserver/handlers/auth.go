package handlers

import (
	"net/http"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/httpserver/mw"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Signup registers a new account and returns a session token.
func Signup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, d, err)
			return
		}

		user, token, err := d.Users.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusCreated, authResponse{Token: token, User: user})
	}
}

// Login authenticates an existing account.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, d, err)
			return
		}

		user, token, err := d.Users.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusOK, authResponse{Token: token, User: user})
	}
}

// CurrentUser returns the account behind the request token.
func CurrentUser(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			respondError(w, d, errors.Unauthorized("authentication required"))
			return
		}

		user, err := d.Users.Get(r.Context(), userID)
		if err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusOK, user)
	}
}
