package httpclient

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout       = 30 * time.Second
	HeaderAccept         = "Accept"
	HeaderContentType    = "Content-Type"
	HeaderUserAgent      = "User-Agent"
	HeaderXRequestID     = "X-Request-Id"
	HeaderXCorrelationID = "X-Correlation-Id"
	HeaderAuthorization  = "Authorization"
	ContentTypeJSON      = "application/json"
	QueryAPIKey          = "api_key"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient makes the client send requests through httpClient. Its Timeout is kept unless
// WithTimeout is also given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAutoRequestID sets a random X-Request-Id header on requests that do not carry one.
func WithAutoRequestID() Option {
	return func(c *Client) {
		c.autoRequestID = true
	}
}

// WithTokenSource adds an "Authorization: Bearer" header obtained from source to every request.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers map[string]string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}
