// Package geo holds the coordinate types accepted by the places and routing clients and their
// query-string forms.
package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andyle182810/olamaps/validator"
	"github.com/shopspring/decimal"
)

var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Coordinate is a latitude/longitude pair. Values parsed from strings keep their exact digits.
type Coordinate struct {
	Lat decimal.Decimal `json:"lat" validate:"gte=-90,lte=90"`
	Lng decimal.Decimal `json:"lng" validate:"gte=-180,lte=180"`
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Lat: decimal.NewFromFloat(lat),
		Lng: decimal.NewFromFloat(lng),
	}
}

func ParseCoordinate(lat, lng string) (Coordinate, error) {
	lat = strings.TrimSpace(lat)
	lng = strings.TrimSpace(lng)

	v := validator.Default()

	if err := v.Var("lat", lat, "required,latitude"); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	}

	if err := v.Var("lng", lng, "required,longitude"); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	}

	latitude, err := decimal.NewFromString(lat)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	}

	longitude, err := decimal.NewFromString(lng)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	}

	return Coordinate{Lat: latitude, Lng: longitude}, nil
}

// ParseLatLng parses the "lat,lng" form.
func ParseLatLng(s string) (Coordinate, error) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: expected \"lat,lng\", got %q", ErrInvalidCoordinate, s)
	}

	return ParseCoordinate(lat, lng)
}

func (c Coordinate) Validate() error {
	if err := validator.Default().Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
	}

	return nil
}

// String renders the coordinate as "lat,lng".
func (c Coordinate) String() string {
	return c.Lat.String() + "," + c.Lng.String()
}

// BoundingBox is described by two opposite corners.
type BoundingBox struct {
	X Coordinate `json:"x"`
	Y Coordinate `json:"y"`
}

// String renders the box as "lat,lng|lat,lng".
func (b BoundingBox) String() string {
	return b.X.String() + "|" + b.Y.String()
}

type Waypoints []Coordinate

// String renders the waypoints as "lat,lng|lat,lng|...".
func (w Waypoints) String() string {
	parts := make([]string, 0, len(w))
	for _, c := range w {
		parts = append(parts, c.String())
	}

	return strings.Join(parts, "|")
}

func ParseWaypoints(s string) (Waypoints, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, "|")
	waypoints := make(Waypoints, 0, len(parts))

	for _, part := range parts {
		c, err := ParseLatLng(part)
		if err != nil {
			return nil, err
		}

		waypoints = append(waypoints, c)
	}

	return waypoints, nil
}
