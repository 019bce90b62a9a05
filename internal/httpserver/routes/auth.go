package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/httpserver/handlers"
	"github.com/upandey0/bookmarks/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Post("/api/auth/signup", handlers.Signup(d))
	r.Post("/api/auth/login", handlers.Login(d))
	r.With(mw.Auth(d.Tokens, d.Logger)).Get("/api/auth/user", handlers.CurrentUser(d))
}
