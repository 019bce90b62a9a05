package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/upandey0/bookmarks/internal/logger"
)

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestExtract_Title(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string // empty means "expect the page URL"
	}{
		{
			name: "title tag",
			body: `<html><head><title>Example Domain</title></head></html>`,
			want: "Example Domain",
		},
		{
			name: "title preferred over og:title",
			body: `<html><head><title>Plain Title</title><meta property="og:title" content="OG Title"></head></html>`,
			want: "Plain Title",
		},
		{
			name: "og:title fallback",
			body: `<html><head><meta property="og:title" content="OG Title"></head></html>`,
			want: "OG Title",
		},
		{
			name: "whitespace trimmed",
			body: "<html><head><title>\n  Spaced Out  \n</title></head></html>",
			want: "Spaced Out",
		},
		{
			name: "no title falls back to url",
			body: `<html><body><h1>heading only</h1></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := htmlServer(t, tt.body)
			e := NewExtractor(ts.Client(), "", logger.Nop())

			meta := e.Extract(context.Background(), ts.URL)

			want := tt.want
			if want == "" {
				want = ts.URL
			}
			if meta.Title != want {
				t.Errorf("Extract().Title = %q, want %q", meta.Title, want)
			}
		})
	}
}

func TestExtract_Favicon(t *testing.T) {
	tests := []struct {
		name string
		body string
		want func(base string) string
	}{
		{
			name: "shortcut icon absolute",
			body: `<html><head><link rel="shortcut icon" href="https://cdn.example.com/fav.ico"></head></html>`,
			want: func(string) string { return "https://cdn.example.com/fav.ico" },
		},
		{
			name: "shortcut icon preferred over icon",
			body: `<html><head><link rel="icon" href="https://cdn.example.com/plain.ico"><link rel="shortcut icon" href="https://cdn.example.com/shortcut.ico"></head></html>`,
			want: func(string) string { return "https://cdn.example.com/shortcut.ico" },
		},
		{
			name: "icon fallback",
			body: `<html><head><link rel="icon" href="https://cdn.example.com/plain.ico"></head></html>`,
			want: func(string) string { return "https://cdn.example.com/plain.ico" },
		},
		{
			name: "relative with leading slash",
			body: `<html><head><link rel="icon" href="/icon.png"></head></html>`,
			want: func(base string) string { return base + "/icon.png" },
		},
		{
			name: "relative without leading slash joins with one slash",
			body: `<html><head><link rel="icon" href="icon.png"></head></html>`,
			want: func(base string) string { return base + "/icon.png" },
		},
		{
			name: "no icon link uses default resolved against page host",
			body: `<html><head><title>x</title></head></html>`,
			want: func(base string) string { return base + DefaultFavicon },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := htmlServer(t, tt.body)
			e := NewExtractor(ts.Client(), "", logger.Nop())

			meta := e.Extract(context.Background(), ts.URL)

			if want := tt.want(ts.URL); meta.Favicon != want {
				t.Errorf("Extract().Favicon = %q, want %q", meta.Favicon, want)
			}
		})
	}
}

func TestExtract_Degraded(t *testing.T) {
	tests := []struct {
		name    string
		pageURL func(t *testing.T) string
	}{
		{
			name: "unreachable target",
			pageURL: func(t *testing.T) string {
				// A server that is already closed.
				ts := httptest.NewServer(http.NotFoundHandler())
				ts.Close()
				return ts.URL
			},
		},
		{
			name: "non-2xx response",
			pageURL: func(t *testing.T) string {
				ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "gone", http.StatusGone)
				}))
				t.Cleanup(ts.Close)
				return ts.URL
			},
		},
		{
			name: "malformed url",
			pageURL: func(t *testing.T) string {
				return "http://bad url with spaces"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageURL := tt.pageURL(t)
			e := NewExtractor(nil, "", logger.Nop())

			meta := e.Extract(context.Background(), pageURL)

			if meta.Title != pageURL {
				t.Errorf("degraded Title = %q, want the page URL %q", meta.Title, pageURL)
			}
			if meta.Favicon != DefaultFavicon {
				t.Errorf("degraded Favicon = %q, want %q", meta.Favicon, DefaultFavicon)
			}
		})
	}
}

func TestAbsoluteFavicon(t *testing.T) {
	tests := []struct {
		name    string
		favicon string
		pageURL string
		want    string
	}{
		{"already absolute", "https://cdn.example.com/f.ico", "https://example.com/page", "https://cdn.example.com/f.ico"},
		{"leading slash", "/icon.png", "https://example.com/page", "https://example.com/icon.png"},
		{"no leading slash", "icon.png", "https://example.com/page", "https://example.com/icon.png"},
		{"page with port", "/icon.png", "http://example.com:8080/deep/path", "http://example.com:8080/icon.png"},
		{"unparseable page url left as-is", "/icon.png", "://nope", "/icon.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := absoluteFavicon(tt.favicon, tt.pageURL); got != tt.want {
				t.Errorf("absoluteFavicon(%q, %q) = %q, want %q", tt.favicon, tt.pageURL, got, tt.want)
			}
		})
	}
}
