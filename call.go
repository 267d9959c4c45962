package olamaps

import (
	"context"
	"net/http"

	"github.com/andyle182810/olamaps/endpoint"
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/query"
)

// Call resolves the path template of op, appends the parameters of b and sends the request.
// The {version} placeholder is left for the HTTP client to substitute. Errors from the HTTP
// client are returned unchanged.
func Call[T any](
	ctx context.Context,
	cfg *Config,
	method string,
	op endpoint.Operation,
	b *query.Builder,
	trace Trace,
) (*httpclient.Response[T], error) {
	template, err := cfg.Endpoints.Path(op)
	if err != nil {
		return nil, err
	}

	target := query.Join(template, b)

	cfg.Logger.Debug().
		Str("operation", string(op)).
		Int("params", b.Len()).
		Msg("Calling operation")

	return httpclient.DoJSON[T](ctx, cfg.HTTP, method, target, nil, trace.RequestOptions()...)
}

func Get[T any](
	ctx context.Context,
	cfg *Config,
	op endpoint.Operation,
	b *query.Builder,
	trace Trace,
) (*httpclient.Response[T], error) {
	return Call[T](ctx, cfg, http.MethodGet, op, b, trace)
}

// Post sends the request with an empty body.
func Post[T any](
	ctx context.Context,
	cfg *Config,
	op endpoint.Operation,
	b *query.Builder,
	trace Trace,
) (*httpclient.Response[T], error) {
	return Call[T](ctx, cfg, http.MethodPost, op, b, trace)
}
