package olamaps

import (
	"net/http"
	"time"

	"github.com/andyle182810/olamaps/httpclient"
	"github.com/rs/zerolog"
)

type Option func(*settings)

// WithVersion selects the API version. Unknown versions make construction fail.
func WithVersion(version string) Option {
	return func(s *settings) {
		if version != "" {
			s.version = version
		}
	}
}

// WithBaseURL overrides the base URL of the version's endpoint table.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithHTTPOptions passes options straight to the underlying httpclient. They are applied last.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(s *settings) {
		s.httpOptions = append(s.httpOptions, opts...)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithHTTPClient sends API calls and, with WithOAuth, token requests through httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
		s.httpOptions = append(s.httpOptions, httpclient.WithHTTPClient(httpClient))
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

func WithAutoRequestID() Option {
	return func(s *settings) {
		s.autoRequestID = true
	}
}

// WithOAuth adds a client-credentials bearer token to every request. The API key is still sent.
func WithOAuth(clientID, clientSecret string) Option {
	return func(s *settings) {
		s.clientID = clientID
		s.clientSecret = clientSecret
	}
}

func WithTokenURL(tokenURL string) Option {
	return func(s *settings) {
		if tokenURL != "" {
			s.tokenURL = tokenURL
		}
	}
}
