package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/httpserver/mw"
)

type createBookmarkRequest struct {
	URL string `json:"url"`
}

// CreateBookmark saves a URL for the authenticated user, enriching it
// with page metadata and a summary before persisting.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			respondError(w, d, errors.Unauthorized("authentication required"))
			return
		}

		var req createBookmarkRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, d, err)
			return
		}

		bookmark, err := d.Bookmarks.Add(r.Context(), userID, req.URL)
		if err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusCreated, bookmark)
	}
}

// ListBookmarks returns the user's bookmarks, newest first.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			respondError(w, d, errors.Unauthorized("authentication required"))
			return
		}

		bookmarks, err := d.Bookmarks.List(r.Context(), userID)
		if err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusOK, bookmarks)
	}
}

// DeleteBookmark removes a bookmark the user owns.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r.Context())
		if !ok {
			respondError(w, d, errors.Unauthorized("authentication required"))
			return
		}

		bookmarkID := chi.URLParam(r, "id")
		if err := d.Bookmarks.Delete(r.Context(), userID, bookmarkID); err != nil {
			respondError(w, d, err)
			return
		}

		respondData(w, http.StatusOK, struct{}{})
	}
}
