package domain

import "time"

// Bookmark is a saved URL enriched with page metadata and a third-party
// summary. A bookmark belongs to exactly one user and is never updated in
// place: it is created by the ingestion pipeline and removed by its owner.
type Bookmark struct {
	// ID is the store-assigned unique identifier.
	ID string `json:"id"`

	// URL is the page address as submitted by the user.
	// Must match ^(http|https)://[^ "]+$.
	URL string `json:"url"`

	// Title is taken from the page's <title> or og:title tag,
	// falling back to the raw URL.
	Title string `json:"title"`

	// Favicon is always stored as an absolute URL, or the default
	// placeholder path when the page could not be fetched.
	Favicon string `json:"favicon"`

	// Summary is the text returned by the summarization service,
	// or a fixed sentinel when the service was unavailable.
	Summary string `json:"summary"`

	// Owner is the id of the user who saved the bookmark.
	// (owner, url) pairs are unique.
	Owner string `json:"user"`

	// CreatedAt is set by the server at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`
}
