package scrape

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aramlens/aram-builds/internal/platform"
)

// FetchImageBytes downloads a single item icon. Protocol-relative URLs are
// rewritten to https before the request. Any failure, whether a non-200
// status or a network error, returns nil: a missing icon must never abort
// the overall result, the item just renders with a fallback glyph.
func (c *Client) FetchImageBytes(ctx context.Context, rawURL string) []byte {
	url := platform.NormalizeImageURL(rawURL)

	ctx, cancel := context.WithTimeout(ctx, c.imageTimeout)
	defer cancel()

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		slog.WarnContext(ctx, "could not download icon", "url", url, "err", err)
		return nil
	}
	if res.StatusCode() != http.StatusOK {
		slog.WarnContext(ctx, "could not download icon", "url", url, "status", res.StatusCode())
		return nil
	}
	return res.Body()
}
