package scrape

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// Default request timeouts. The page timeout covers the main document GET,
// the image timeout bounds each individual icon download.
const (
	DefaultPageTimeout  = 10 * time.Second
	DefaultImageTimeout = 5 * time.Second
)

// Headers sent with every request. The site serves localized markup, so the
// Accept-Language header pins the English page shape the extractor expects.
const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
)

// Client wraps the HTTP session shared by the page and image fetchers.
// It is constructed once by the top-level pipeline and passed by reference;
// there is no process-wide singleton.
type Client struct {
	http         *resty.Client
	imageTimeout time.Duration
}

// ClientOptions configures a Client. Zero values fall back to the defaults.
type ClientOptions struct {
	PageTimeout  time.Duration
	ImageTimeout time.Duration
}

// NewClient creates an HTTP client with browser-like headers, a cookie jar,
// and the configured timeouts. Redirects follow resty's default policy.
func NewClient(opts ClientOptions) *Client {
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultPageTimeout
	}
	if opts.ImageTimeout <= 0 {
		opts.ImageTimeout = DefaultImageTimeout
	}

	client := resty.New()
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept-Language", acceptLanguage)
	client.SetTimeout(opts.PageTimeout)

	return &Client{
		http:         client,
		imageTimeout: opts.ImageTimeout,
	}
}
