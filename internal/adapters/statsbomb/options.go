package statsbomb

import (
	"net/http"
	"strings"
	"time"

	"github.com/okian/passnet/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL reads the open-data layout over HTTP from base.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.open = &httpOpener{base: strings.TrimRight(base, "/"), client: c.httpClient}
		}
	}
}

// WithDir reads the open-data layout from a local directory. It takes
// precedence over WithBaseURL when both are given with a non-empty value.
func WithDir(dir string) Option {
	return func(c *Client) {
		if dir != "" {
			c.dir = dir
		}
	}
}

// WithHTTPClient sets the HTTP client used by the URL backend.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
			if h, ok := c.open.(*httpOpener); ok {
				h.client = hc
			}
		}
	}
}

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
