package authtoken

import (
	"net/http"
	"time"
)

type Option func(*Client)

// WithHTTPClient sends token requests through httpClient. Apply it before WithTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.rest = newRestyClient(httpClient)
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.rest.SetTimeout(timeout)
		}
	}
}

// WithScope overrides the requested scope. An empty scope is not sent.
func WithScope(scope string) Option {
	return func(c *Client) {
		c.scope = scope
	}
}
