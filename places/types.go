package places

import (
	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/geo"
)

//nolint:tagliatelle
type AutocompleteResult struct {
	Status       olamaps.Status `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	InfoMessages []string       `json:"info_messages,omitempty"`
	Predictions  []Prediction   `json:"predictions"`
}

type Substring struct {
	Offset float64 `json:"offset"`
	Length float64 `json:"length"`
}

type Term struct {
	Offset float64 `json:"offset"`
	Value  string  `json:"value"`
}

//nolint:tagliatelle
type StructuredFormatting struct {
	MainText                  string      `json:"main_text"`
	SecondaryText             string      `json:"secondary_text"`
	MainTextMatchedSubstrings []Substring `json:"main_text_matched_substrings"`
}

type PredictionGeometry struct {
	Location geo.Point `json:"location"`
}

//nolint:tagliatelle
type Prediction struct {
	PlaceID              string               `json:"place_id"`
	Reference            string               `json:"reference"`
	Description          string               `json:"description"`
	Geometry             PredictionGeometry   `json:"geometry"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
	Terms                []Term               `json:"terms"`
	DistanceMeters       float64              `json:"distance_meters"`
	MatchedSubstrings    []Substring          `json:"matched_substrings"`
	Types                []string             `json:"types"`
}

//nolint:tagliatelle
type AddressComponent struct {
	Types     []string `json:"types"`
	ShortName string   `json:"short_name"`
	LongName  string   `json:"long_name"`
}

//nolint:tagliatelle
type Geometry struct {
	Viewport     geo.Viewport `json:"viewport"`
	Location     *geo.Point   `json:"location,omitempty"`
	LocationType string       `json:"location_type,omitempty"`
}

// Address is one geocoding or reverse geocoding match.
//
//nolint:tagliatelle
type Address struct {
	PlaceID           string             `json:"place_id"`
	Name              string             `json:"name"`
	FormattedAddress  string             `json:"formatted_address"`
	Types             []string           `json:"types"`
	Geometry          Geometry           `json:"geometry"`
	AddressComponents []AddressComponent `json:"address_components"`
	PlusCode          olamaps.PlusCode   `json:"plus_code"`
	Layer             []string           `json:"layer"`
}

//nolint:tagliatelle
type GeocodeResult struct {
	Status           olamaps.Status `json:"status"`
	RequestID        string         `json:"request_id,omitempty"`
	GeocodingResults []Address      `json:"geocodingResults"`
}

//nolint:tagliatelle
type ReverseGeocodeResult struct {
	Status       olamaps.Status   `json:"status"`
	RequestID    string           `json:"request_id,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	InfoMessages []string         `json:"info_messages,omitempty"`
	PlusCode     olamaps.PlusCode `json:"plus_code"`
	Results      []Address        `json:"results"`
}
