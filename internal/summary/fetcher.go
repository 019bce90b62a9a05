// Package summary retrieves a plain-text page summary from a third-party
// summarization service.
package summary

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/utils"
)

// DefaultEndpoint is the summarization service. The target URL is
// appended percent-encoded as a single path segment.
const DefaultEndpoint = "https://r.jina.ai"

// Unavailable is returned whenever the summarization call fails.
const Unavailable = "Summary temporarily unavailable."

// Fetcher issues one GET per call against the summarization endpoint.
type Fetcher struct {
	client   *http.Client
	endpoint string
	log      logger.Logger
}

// NewFetcher creates a fetcher. A nil client falls back to
// http.DefaultClient; an empty endpoint falls back to DefaultEndpoint.
func NewFetcher(client *http.Client, endpoint string, log logger.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Fetcher{client: client, endpoint: strings.TrimRight(endpoint, "/"), log: log}
}

// Fetch returns the raw response body as the summary of target. Any
// error (network, timeout, non-2xx) degrades to the Unavailable
// sentinel; this call never fails the ingestion pipeline.
func (f *Fetcher) Fetch(ctx context.Context, target string) string {
	reqURL := f.endpoint + "/" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		f.log.Debug("summary request build failed",
			logger.String("url", target),
			logger.Error(err))
		return Unavailable
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("summary fetch failed",
			logger.String("url", target),
			logger.Error(err))
		return Unavailable
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Debug("summary fetch returned non-2xx",
			logger.String("url", target),
			logger.Int("status", resp.StatusCode))
		return Unavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Debug("summary body read failed",
			logger.String("url", target),
			logger.Error(err))
		return Unavailable
	}

	return string(body)
}
