package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotFound reports that the champion build page does not exist. It is
// distinct from transfer failures so the UI can tell a misspelled champion
// apart from a connectivity problem.
var ErrNotFound = fmt.Errorf("champion build page not found")

// FetchPage performs a single GET for the build page and returns the parsed
// document. HTTP 404 maps to ErrNotFound; any other non-2xx status or
// network-level failure is a transfer error. There are no retries, one
// failed attempt is terminal for the request.
func (c *Client) FetchPage(ctx context.Context, url string) (*goquery.Document, error) {
	slog.InfoContext(ctx, "requesting build page", "url", url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch build page", "url", url, "err", err)
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if !res.IsSuccess() {
		slog.ErrorContext(ctx, "unexpected status for build page", "url", url, "status", res.StatusCode())
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// HasBuildMarkers reports whether the page text contains at least one of
// the category markers. The site sometimes serves a generic page with a
// 200 status for unknown champions; a page with neither marker is treated
// as not found. Known weak validation: the markers are literal English
// strings and break under localization or a page redesign.
func HasBuildMarkers(doc *goquery.Document) bool {
	text := Text(doc.Selection)
	return strings.Contains(text, "Core Builds") || strings.Contains(text, "Starter Items")
}
