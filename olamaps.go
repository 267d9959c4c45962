// Package olamaps holds the configuration shared by the Ola Maps resource clients in the places
// and routing packages.
package olamaps

import (
	"net/http"
	"strings"
	"time"

	"github.com/andyle182810/olamaps/authtoken"
	"github.com/andyle182810/olamaps/endpoint"
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/rs/zerolog"
)

// Config is the immutable state of one resource client. Every client owns its own Config, so
// clients bound to different versions or base URLs never observe each other.
type Config struct {
	APIKey    string
	Version   string
	BaseURL   string
	Endpoints endpoint.Table
	HTTP      *httpclient.Client
	Logger    zerolog.Logger
}

type settings struct {
	version       string
	baseURL       string
	timeout       time.Duration
	httpOptions   []httpclient.Option
	httpClient    *http.Client
	logger        zerolog.Logger
	autoRequestID bool
	userAgent     string
	clientID      string
	clientSecret  string
	tokenURL      string
}

func NewConfig(apiKey string, opts ...Option) (*Config, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, httpclient.ErrAPIKeyRequired
	}

	s := &settings{
		version:       endpoint.DefaultVersion,
		baseURL:       "",
		timeout:       0,
		httpOptions:   nil,
		httpClient:    nil,
		logger:        zerolog.Nop(),
		autoRequestID: false,
		userAgent:     "",
		clientID:      "",
		clientSecret:  "",
		tokenURL:      authtoken.DefaultTokenURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	table, err := endpoint.Lookup(s.version)
	if err != nil {
		return nil, err
	}

	baseURL := s.baseURL
	if baseURL == "" {
		baseURL = table.BaseURL
	}

	logger := s.logger.With().Str("component", "olamaps").Logger()

	httpOpts := []httpclient.Option{httpclient.WithLogger(logger)}

	if s.timeout > 0 {
		httpOpts = append(httpOpts, httpclient.WithTimeout(s.timeout))
	}

	if s.userAgent != "" {
		httpOpts = append(httpOpts, httpclient.WithUserAgent(s.userAgent))
	}

	if s.autoRequestID {
		httpOpts = append(httpOpts, httpclient.WithAutoRequestID())
	}

	if s.clientID != "" {
		tokens := authtoken.New(s.tokenURL, s.clientID, s.clientSecret,
			authtoken.WithHTTPClient(s.httpClient),
			authtoken.WithTimeout(s.timeout),
		)
		httpOpts = append(httpOpts, httpclient.WithTokenSource(tokens))
	}

	httpOpts = append(httpOpts, s.httpOptions...)

	client, err := httpclient.New(apiKey, baseURL, s.version, httpOpts...)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:    apiKey,
		Version:   s.version,
		BaseURL:   client.BaseURL(),
		Endpoints: table,
		HTTP:      client,
		Logger:    logger,
	}, nil
}
