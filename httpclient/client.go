package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andyle182810/olamaps/endpoint"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
	InvalidateToken()
}

// Client sends requests to one base URL on behalf of one API key and API version.
type Client struct {
	rest          *resty.Client
	apiKey        string
	baseURL       string
	version       string
	httpClient    *http.Client
	timeout       time.Duration
	logger        zerolog.Logger
	userAgent     string
	autoRequestID bool
	tokenSource   TokenSource
}

func New(apiKey, baseURL, version string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		rest:          nil,
		apiKey:        apiKey,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		version:       version,
		httpClient:    nil,
		timeout:       0,
		logger:        zerolog.Nop(),
		userAgent:     "",
		autoRequestID: false,
		tokenSource:   nil,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = c.newRestyClient()

	return c, nil
}

func (c *Client) newRestyClient() *resty.Client {
	var rest *resty.Client

	if c.httpClient != nil {
		rest = resty.NewWithClient(c.httpClient)
	} else {
		rest = resty.New().SetTimeout(DefaultTimeout)
	}

	if c.timeout > 0 {
		rest.SetTimeout(c.timeout)
	}

	rest.SetBaseURL(c.baseURL).
		SetLogger(newRestyLogger(c.logger))

	if c.userAgent != "" {
		rest.SetHeader(HeaderUserAgent, c.userAgent)
	}

	rest.OnBeforeRequest(c.outbound)
	rest.OnAfterResponse(c.inbound)

	return rest
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Version() string {
	return c.version
}

func (c *Client) Get(
	ctx context.Context,
	path string,
	result any,
	opts ...RequestOption,
) (*resty.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, result, opts...)
}

func (c *Client) Post(
	ctx context.Context,
	path string,
	body any,
	result any,
	opts ...RequestOption,
) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, result, opts...)
}

// Do sends the request and decodes a successful JSON payload into result. Errors from the
// transport and *ServiceError values are returned as they are.
func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body any,
	result any,
	opts ...RequestOption,
) (*resty.Response, error) {
	cfg := &requestConfig{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(cfg)
	}

	req := c.rest.R().
		SetContext(ctx).
		ForceContentType(ContentTypeJSON)

	if result != nil {
		req.SetResult(result)
	}

	if body != nil {
		req.SetBody(body)
	}

	for k, v := range cfg.headers {
		req.SetHeader(k, v)
	}

	return req.Execute(method, path)
}

// outbound runs before every request leaves the client.
func (c *Client) outbound(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(HeaderAccept, ContentTypeJSON)
	req.SetHeader(HeaderContentType, ContentTypeJSON)

	// api_key replaces whatever query parameters were attached to the request.
	req.QueryParam = url.Values{QueryAPIKey: []string{c.apiKey}}
	req.URL = endpoint.Resolve(stripQueryParam(req.URL, QueryAPIKey), c.version)

	if c.autoRequestID && req.Header.Get(HeaderXRequestID) == "" {
		req.SetHeader(HeaderXRequestID, uuid.NewString())
	}

	if c.tokenSource != nil {
		token, err := c.tokenSource.GetToken(req.Context())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}

		req.SetHeader(HeaderAuthorization, "Bearer "+token)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("Dispatching request")

	return nil
}

// inbound runs on every response before it reaches the caller.
func (c *Client) inbound(_ *resty.Client, resp *resty.Response) error {
	event := c.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time())

	if raw := resp.Request.RawRequest; raw != nil {
		event = event.Str("method", raw.Method).Str("path", raw.URL.Path)
	}

	event.Msg("Received response")

	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized && c.tokenSource != nil {
		c.logger.Debug().Msg("Invalidating bearer token after 401")
		c.tokenSource.InvalidateToken()
	}

	return serviceErrorFromResponse(resp)
}

// stripQueryParam drops every occurrence of key from the raw query part of rawURL while keeping
// the order and encoding of the remaining parameters.
func stripQueryParam(rawURL, key string) string {
	path, rawQuery, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	pairs := strings.Split(rawQuery, "&")
	kept := pairs[:0]

	for _, pair := range pairs {
		name, _, _ := strings.Cut(pair, "=")
		if name == key || pair == "" {
			continue
		}

		kept = append(kept, pair)
	}

	if len(kept) == 0 {
		return path
	}

	return path + "?" + strings.Join(kept, "&")
}
