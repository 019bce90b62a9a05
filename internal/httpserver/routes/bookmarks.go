package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/httpserver/handlers"
	"github.com/upandey0/bookmarks/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	auth := r.With(mw.Auth(d.Tokens, d.Logger))
	auth.Get("/api/bookmarks", handlers.ListBookmarks(d))
	auth.Post("/api/bookmarks", handlers.CreateBookmark(d))
	auth.Delete("/api/bookmarks/{id}", handlers.DeleteBookmark(d))
}
