// Package places is the client of the Ola Maps places API: autocomplete, geocoding and reverse
// geocoding.
package places

import (
	"context"
	"math"

	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/endpoint"
	"github.com/andyle182810/olamaps/geo"
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/query"
	"github.com/andyle182810/olamaps/validator"
	"golang.org/x/text/language"
)

const (
	paramInput        = "input"
	paramAddress      = "address"
	paramLatLng       = "latlng"
	paramLanguage     = "language"
	paramRadius       = "radius"
	paramStrictBounds = "strictbounds"
	paramLocation     = "location"
	paramBounding     = "bounding"
)

// Places is safe for concurrent use.
type Places struct {
	cfg *olamaps.Config
}

func New(apiKey string, opts ...olamaps.Option) (*Places, error) {
	cfg, err := olamaps.NewConfig(apiKey, opts...)
	if err != nil {
		return nil, err
	}

	return &Places{cfg: cfg}, nil
}

func (p *Places) Config() *olamaps.Config {
	return p.cfg
}

// Autocomplete returns place predictions for a partial input.
func (p *Places) Autocomplete(
	ctx context.Context,
	input string,
	opts *AutocompleteOptions,
) (*httpclient.Response[AutocompleteResult], error) {
	if opts == nil {
		opts = &AutocompleteOptions{} //nolint:exhaustruct
	}

	b := query.New().Add(paramInput, input)
	opts.Trace.Encode(b)
	addLanguage(b, opts.Language)

	if validRadius(opts.Radius) {
		b.AddFloat(paramRadius, *opts.Radius)
	}

	b.AddBool(paramStrictBounds, opts.StrictBounds)

	if opts.Location != nil {
		b.Add(paramLocation, opts.Location.String())
	}

	return olamaps.Get[AutocompleteResult](ctx, p.cfg, endpoint.Autocomplete, b, opts.Trace)
}

// Geocode converts an address into coordinates.
func (p *Places) Geocode(
	ctx context.Context,
	address string,
	opts *GeocodeOptions,
) (*httpclient.Response[GeocodeResult], error) {
	if opts == nil {
		opts = &GeocodeOptions{} //nolint:exhaustruct
	}

	b := query.New().Add(paramAddress, address)
	opts.Trace.Encode(b)
	addLanguage(b, opts.Language)

	if opts.Bounding != nil {
		b.Add(paramBounding, opts.Bounding.String())
	}

	return olamaps.Get[GeocodeResult](ctx, p.cfg, endpoint.Geocode, b, opts.Trace)
}

// ReverseGeocode returns the addresses found at location.
func (p *Places) ReverseGeocode(
	ctx context.Context,
	location geo.Coordinate,
	opts *ReverseGeocodeOptions,
) (*httpclient.Response[ReverseGeocodeResult], error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &ReverseGeocodeOptions{} //nolint:exhaustruct
	}

	b := query.New().Add(paramLatLng, location.String())
	opts.Trace.Encode(b)

	return olamaps.Get[ReverseGeocodeResult](ctx, p.cfg, endpoint.ReverseGeocode, b, opts.Trace)
}

func addLanguage(b *query.Builder, tag language.Tag) {
	if tag == language.Und {
		return
	}

	b.Add(paramLanguage, tag.String())
}

// validRadius reports whether radius is set, finite and not negative.
func validRadius(radius *float64) bool {
	if radius == nil || math.IsInf(*radius, 0) {
		return false
	}

	return validator.Default().Var(paramRadius, *radius, "gte=0") == nil
}
