package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "dia-companion-cli"

// HTTPClient embeds *resty.Client so callers use resty's request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Every request gets the
// timeout, a JSON Accept header and the CLI user agent; requests may
// override the Accept header, as the CSV export does.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
