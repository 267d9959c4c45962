package authtoken

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrTokenRequestFailed = errors.New("authtoken: token request failed")
	ErrNoAccessToken      = errors.New("authtoken: no access token in response")
)

const (
	DefaultTokenURL      = "https://account.olamaps.io/realms/olamaps/protocol/openid-connect/token"
	DefaultScope         = "openid"
	DefaultTimeout       = 10 * time.Second
	tokenExpiryBuffer    = 30 * time.Second
	contentTypeForm      = "application/x-www-form-urlencoded"
	grantTypeCredentials = "client_credentials"
)

//nolint:tagliatelle // Keycloak returns snake_case
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

//nolint:tagliatelle // Keycloak returns snake_case
type tokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Client obtains OAuth2 client-credentials tokens and keeps the current one until shortly
// before it expires. It is safe for concurrent use.
type Client struct {
	tokenURL     string
	clientID     string
	clientSecret string
	scope        string
	rest         *resty.Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func New(tokenURL, clientID, clientSecret string, opts ...Option) *Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	c := &Client{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		scope:        DefaultScope,
		rest:         newRestyClient(nil),
		mu:           sync.RWMutex{},
		accessToken:  "",
		expiresAt:    time.Time{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func newRestyClient(httpClient *http.Client) *resty.Client {
	rest := resty.New().SetTimeout(DefaultTimeout)
	if httpClient != nil {
		rest = resty.NewWithClient(httpClient)
	}

	return rest.
		SetHeader("Content-Type", contentTypeForm).
		SetHeader("Accept", "application/json")
}

func (c *Client) GetToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		token := c.accessToken
		c.mu.RUnlock()

		return token, nil
	}
	c.mu.RUnlock()

	return c.refreshToken(ctx)
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.accessToken = token
	c.expiresAt = time.Now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryBuffer)

	return c.accessToken, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	formData := map[string]string{
		"grant_type":    grantTypeCredentials,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	}

	if c.scope != "" {
		formData["scope"] = c.scope
	}

	var (
		tokenResp tokenResponse
		tokenErr  tokenError
	)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(formData).
		SetResult(&tokenResp).
		SetError(&tokenErr).
		Post(c.tokenURL)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch token: %w", err)
	}

	if !resp.IsSuccess() {
		if tokenErr.Error != "" {
			return "", 0, fmt.Errorf("%w: status %d: error=%s, description=%s",
				ErrTokenRequestFailed, resp.StatusCode(), tokenErr.Error, tokenErr.ErrorDescription)
		}

		return "", 0, fmt.Errorf("%w: status %d", ErrTokenRequestFailed, resp.StatusCode())
	}

	if tokenResp.AccessToken == "" {
		return "", 0, ErrNoAccessToken
	}

	return tokenResp.AccessToken, tokenResp.ExpiresIn, nil
}

func (c *Client) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.accessToken = ""
	c.expiresAt = time.Time{}
}
