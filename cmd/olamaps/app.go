package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/geo"
	"github.com/andyle182810/olamaps/internal/config"
	"github.com/andyle182810/olamaps/places"
	"github.com/andyle182810/olamaps/routing"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

var (
	errUsage          = errors.New("usage: olamaps <autocomplete|geocode|reverse-geocode|direction> [flags] args")
	errUnknownCommand = errors.New("unknown command")
	errMissingArgs    = errors.New("missing arguments")
)

type app struct {
	places  *places.Places
	routing *routing.Routing
	logger  zerolog.Logger
	out     io.Writer
}

func newApp(cfg *config.Config, logger zerolog.Logger, out io.Writer) (*app, error) {
	opts := []olamaps.Option{
		olamaps.WithVersion(cfg.Version),
		olamaps.WithBaseURL(cfg.BaseURL),
		olamaps.WithTimeout(cfg.Timeout),
		olamaps.WithLogger(logger),
		olamaps.WithUserAgent(cfg.UserAgent),
		olamaps.WithAutoRequestID(),
	}

	if cfg.ClientID != "" {
		opts = append(opts,
			olamaps.WithOAuth(cfg.ClientID, cfg.ClientSecret),
			olamaps.WithTokenURL(cfg.TokenURL),
		)
	}

	placesClient, err := places.New(cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create places client: %w", err)
	}

	routingClient, err := routing.New(cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing client: %w", err)
	}

	return &app{
		places:  placesClient,
		routing: routingClient,
		logger:  logger,
		out:     out,
	}, nil
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := args[0], args[1:]

	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("Running command")

	switch command {
	case "autocomplete":
		return a.autocomplete(ctx, rest)
	case "geocode":
		return a.geocode(ctx, rest)
	case "reverse-geocode":
		return a.reverseGeocode(ctx, rest)
	case "direction":
		return a.direction(ctx, rest)
	default:
		return fmt.Errorf("%w %q: %w", errUnknownCommand, command, errUsage)
	}
}

type traceFlags struct {
	requestID     string
	correlationID string
}

func (t *traceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&t.requestID, "request-id", "", "X-Request-Id sent with the call")
	fs.StringVar(&t.correlationID, "correlation-id", "", "X-Correlation-Id sent with the call")
}

func (t *traceFlags) trace() olamaps.Trace {
	return olamaps.Trace{RequestID: t.requestID, CorrelationID: t.correlationID}
}

func (a *app) autocomplete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("autocomplete", flag.ContinueOnError)

	var trace traceFlags

	trace.register(fs)
	lang := fs.String("language", "", "response language, e.g. en or hi")
	radius := fs.String("radius", "", "search radius in meters")
	strict := fs.String("strictbounds", "", "true or false")
	location := fs.String("location", "", "bias location as lat,lng")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input := strings.Join(fs.Args(), " ")
	if input == "" {
		return fmt.Errorf("%w: autocomplete <input>", errMissingArgs)
	}

	opts := &places.AutocompleteOptions{Trace: trace.trace()} //nolint:exhaustruct

	var err error

	if opts.Language, err = parseLanguage(*lang); err != nil {
		return err
	}

	if opts.Radius, err = parseOptionalFloat(*radius); err != nil {
		return fmt.Errorf("invalid radius: %w", err)
	}

	if opts.StrictBounds, err = parseOptionalBool(*strict); err != nil {
		return fmt.Errorf("invalid strictbounds: %w", err)
	}

	if *location != "" {
		c, err := geo.ParseLatLng(*location)
		if err != nil {
			return err
		}

		opts.Location = &c
	}

	resp, err := a.places.Autocomplete(ctx, input, opts)
	if err != nil {
		return err
	}

	return a.print(resp.Untyped())
}

func (a *app) geocode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("geocode", flag.ContinueOnError)

	var trace traceFlags

	trace.register(fs)
	lang := fs.String("language", "", "response language, e.g. en or hi")
	bounding := fs.String("bounding", "", "bounding box as lat,lng|lat,lng")

	if err := fs.Parse(args); err != nil {
		return err
	}

	address := strings.Join(fs.Args(), " ")
	if address == "" {
		return fmt.Errorf("%w: geocode <address>", errMissingArgs)
	}

	opts := &places.GeocodeOptions{Trace: trace.trace()} //nolint:exhaustruct

	var err error

	if opts.Language, err = parseLanguage(*lang); err != nil {
		return err
	}

	if *bounding != "" {
		corners, err := geo.ParseWaypoints(*bounding)
		if err != nil {
			return err
		}

		if len(corners) != 2 { //nolint:mnd
			return fmt.Errorf("%w: bounding needs two corners, got %d", geo.ErrInvalidCoordinate, len(corners))
		}

		opts.Bounding = &geo.BoundingBox{X: corners[0], Y: corners[1]}
	}

	resp, err := a.places.Geocode(ctx, address, opts)
	if err != nil {
		return err
	}

	return a.print(resp.Untyped())
}

func (a *app) reverseGeocode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reverse-geocode", flag.ContinueOnError)

	var trace traceFlags

	trace.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: reverse-geocode <lat,lng>", errMissingArgs)
	}

	location, err := geo.ParseLatLng(fs.Arg(0))
	if err != nil {
		return err
	}

	resp, err := a.places.ReverseGeocode(ctx, location, &places.ReverseGeocodeOptions{Trace: trace.trace()})
	if err != nil {
		return err
	}

	return a.print(resp.Untyped())
}

func (a *app) direction(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("direction", flag.ContinueOnError)

	var trace traceFlags

	trace.register(fs)
	lang := fs.String("language", "", "response language, e.g. en or hi")
	alternatives := fs.String("alternatives", "", "true or false")
	traffic := fs.String("traffic-metadata", "", "true or false")
	steps := fs.String("steps", "", "true or false")
	overview := fs.String("overview", "", "full, simplified or false")
	waypoints := fs.String("waypoints", "", "intermediate stops as lat,lng|lat,lng")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 { //nolint:mnd
		return fmt.Errorf("%w: direction <lat,lng> <lat,lng>", errMissingArgs)
	}

	origin, err := geo.ParseLatLng(fs.Arg(0))
	if err != nil {
		return err
	}

	destination, err := geo.ParseLatLng(fs.Arg(1))
	if err != nil {
		return err
	}

	opts := &routing.DirectionOptions{ //nolint:exhaustruct
		Trace:    trace.trace(),
		Overview: routing.Overview(*overview),
	}

	if opts.Language, err = parseLanguage(*lang); err != nil {
		return err
	}

	if opts.Alternatives, err = parseOptionalBool(*alternatives); err != nil {
		return fmt.Errorf("invalid alternatives: %w", err)
	}

	if opts.TrafficMetadata, err = parseOptionalBool(*traffic); err != nil {
		return fmt.Errorf("invalid traffic-metadata: %w", err)
	}

	if opts.Steps, err = parseOptionalBool(*steps); err != nil {
		return fmt.Errorf("invalid steps: %w", err)
	}

	if opts.Waypoints, err = geo.ParseWaypoints(*waypoints); err != nil {
		return err
	}

	resp, err := a.routing.Direction(ctx, origin, destination, opts)
	if err != nil {
		return err
	}

	return a.print(resp.Untyped())
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func parseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}

	return tag, nil
}

func parseOptionalBool(s string) (*bool, error) {
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return &f, nil
}
