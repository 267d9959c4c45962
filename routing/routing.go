// Package routing is the client of the Ola Maps directions API.
package routing

import (
	"context"

	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/endpoint"
	"github.com/andyle182810/olamaps/geo"
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/query"
	"golang.org/x/text/language"
)

const (
	paramOrigin          = "origin"
	paramDestination     = "destination"
	paramLanguage        = "language"
	paramAlternatives    = "alternatives"
	paramTrafficMetadata = "traffic_metadata"
	paramSteps           = "steps"
	paramOverview        = "overview"
	paramWaypoints       = "waypoints"
)

// Overview selects the polyline returned for each route.
type Overview string

const (
	OverviewFull       Overview = "full"
	OverviewSimplified Overview = "simplified"
	// OverviewNone disables the overview polyline.
	OverviewNone Overview = "false"
)

// DirectionOptions are sent in this order: trace ids, language, alternatives, traffic_metadata,
// steps, overview, waypoints. Unset fields are omitted.
type DirectionOptions struct {
	olamaps.Trace

	Language        language.Tag
	Alternatives    *bool
	TrafficMetadata *bool
	Steps           *bool
	Overview        Overview
	Waypoints       geo.Waypoints
}

// Routing is safe for concurrent use.
type Routing struct {
	cfg *olamaps.Config
}

func New(apiKey string, opts ...olamaps.Option) (*Routing, error) {
	cfg, err := olamaps.NewConfig(apiKey, opts...)
	if err != nil {
		return nil, err
	}

	return &Routing{cfg: cfg}, nil
}

func (r *Routing) Config() *olamaps.Config {
	return r.cfg
}

// Direction computes routes from origin to destination. The request is a POST with an empty
// body; every parameter travels in the query string.
func (r *Routing) Direction(
	ctx context.Context,
	origin, destination geo.Coordinate,
	opts *DirectionOptions,
) (*httpclient.Response[DirectionResult], error) {
	if opts == nil {
		opts = &DirectionOptions{} //nolint:exhaustruct
	}

	for _, c := range append(geo.Waypoints{origin, destination}, opts.Waypoints...) {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	b := query.New().
		Add(paramOrigin, origin.String()).
		Add(paramDestination, destination.String())

	opts.Trace.Encode(b)

	if opts.Language != language.Und {
		b.Add(paramLanguage, opts.Language.String())
	}

	b.AddBool(paramAlternatives, opts.Alternatives).
		AddBool(paramTrafficMetadata, opts.TrafficMetadata).
		AddBool(paramSteps, opts.Steps).
		AddNonEmpty(paramOverview, string(opts.Overview))

	if len(opts.Waypoints) > 0 {
		b.Add(paramWaypoints, opts.Waypoints.String())
	}

	return olamaps.Post[DirectionResult](ctx, r.cfg, endpoint.Directions, b, opts.Trace)
}
