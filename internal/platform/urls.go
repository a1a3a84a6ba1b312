package platform

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the root of the build statistics site.
const DefaultBaseURL = "https://op.gg"

// BuildPageURL returns the ARAM build page URL for a normalized champion
// slug. The game mode is an opaque path segment of the source site.
func BuildPageURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/lol/modes/aram/%s/build", strings.TrimSuffix(baseURL, "/"), slug)
}

// NormalizeImageURL rewrites protocol-relative icon URLs to https. Other
// URLs pass through unchanged.
func NormalizeImageURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "//") {
		return "https:" + rawURL
	}
	return rawURL
}
