package places

import (
	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/geo"
	"golang.org/x/text/language"
)

// AutocompleteOptions are sent in this order: trace ids, language, radius, strictbounds,
// location. Unset fields are omitted.
type AutocompleteOptions struct {
	olamaps.Trace

	Language language.Tag
	// Radius in meters around Location. Negative, NaN and infinite values are omitted.
	Radius       *float64
	StrictBounds *bool
	Location     *geo.Coordinate
}

type GeocodeOptions struct {
	olamaps.Trace

	Language language.Tag
	Bounding *geo.BoundingBox
}

type ReverseGeocodeOptions struct {
	olamaps.Trace
}
