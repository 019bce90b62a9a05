// Package metadata fetches a page and extracts its display title and favicon.
package metadata

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/upandey0/bookmarks/internal/domain"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/utils"
)

// DefaultFavicon is the placeholder used when no icon link is discoverable
// or the page cannot be fetched at all.
const DefaultFavicon = "/favicon-default.ico"

// Extractor performs one HTTP GET per call and parses the response HTML.
type Extractor struct {
	client         *http.Client
	defaultFavicon string
	log            logger.Logger
}

// NewExtractor creates an extractor. A nil client falls back to
// http.DefaultClient; an empty favicon falls back to DefaultFavicon.
func NewExtractor(client *http.Client, defaultFavicon string, log logger.Logger) *Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	if defaultFavicon == "" {
		defaultFavicon = DefaultFavicon
	}
	return &Extractor{client: client, defaultFavicon: defaultFavicon, log: log}
}

// Extract fetches pageURL and returns its title and favicon. It never
// fails: network errors, non-2xx responses and parse errors all degrade
// to {title: pageURL, favicon: default} so bookmark creation can proceed.
func (e *Extractor) Extract(ctx context.Context, pageURL string) domain.PageMeta {
	degraded := domain.PageMeta{Title: pageURL, Favicon: e.defaultFavicon}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		e.log.Debug("metadata request build failed",
			logger.String("url", pageURL),
			logger.Error(err))
		return degraded
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Debug("metadata fetch failed",
			logger.String("url", pageURL),
			logger.Error(err))
		return degraded
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.log.Debug("metadata fetch returned non-2xx",
			logger.String("url", pageURL),
			logger.Int("status", resp.StatusCode))
		return degraded
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		e.log.Debug("metadata parse failed",
			logger.String("url", pageURL),
			logger.Error(err))
		return degraded
	}

	return domain.PageMeta{
		Title:   extractTitle(doc, pageURL),
		Favicon: absoluteFavicon(extractFavicon(doc, e.defaultFavicon), pageURL),
	}
}

// extractTitle prefers <title>, then og:title, then the raw URL.
func extractTitle(doc *goquery.Document, pageURL string) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", "")); t != "" {
		return t
	}
	return pageURL
}

// extractFavicon prefers rel="shortcut icon", then rel="icon".
func extractFavicon(doc *goquery.Document, fallback string) string {
	if href := doc.Find(`link[rel="shortcut icon"]`).AttrOr("href", ""); href != "" {
		return href
	}
	if href := doc.Find(`link[rel="icon"]`).AttrOr("href", ""); href != "" {
		return href
	}
	return fallback
}

// absoluteFavicon rewrites a relative favicon path against the page's
// scheme and host, joining with exactly one slash.
func absoluteFavicon(favicon, pageURL string) string {
	if favicon == "" || strings.HasPrefix(favicon, "http") {
		return favicon
	}

	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return favicon
	}

	if strings.HasPrefix(favicon, "/") {
		return u.Scheme + "://" + u.Host + favicon
	}
	return u.Scheme + "://" + u.Host + "/" + favicon
}
