package httpclient

import (
	"context"
	"net/http"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return DoJSON[T](ctx, c, http.MethodGet, path, nil, opts...)
}

func PostJSON[T any](
	ctx context.Context,
	c *Client,
	path string,
	body any,
	opts ...RequestOption,
) (*Response[T], error) {
	return DoJSON[T](ctx, c, http.MethodPost, path, body, opts...)
}

// DoJSON sends the request and wraps the decoded payload into a Response envelope.
func DoJSON[T any](
	ctx context.Context,
	c *Client,
	method, path string,
	body any,
	opts ...RequestOption,
) (*Response[T], error) {
	var result T

	resp, err := c.Do(ctx, method, path, body, &result, opts...)
	if err != nil {
		return nil, err
	}

	return NewResponse(resp, result), nil
}
