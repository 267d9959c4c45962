package routing

import (
	"encoding/json"

	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/geo"
)

//nolint:tagliatelle
type DirectionResult struct {
	Status            olamaps.Status     `json:"status"`
	SourceFrom        string             `json:"source_from,omitempty"`
	ErrorMessage      string             `json:"error_message,omitempty"`
	GeocodedWaypoints []GeocodedWaypoint `json:"geocoded_waypoints"`
	Routes            []Route            `json:"routes"`
}

//nolint:tagliatelle
type GeocodedWaypoint struct {
	GeocoderStatus string   `json:"geocoder_status"`
	PlaceID        string   `json:"place_id"`
	Types          []string `json:"types"`
}

// Route is one of the routes returned for a direction request. OverviewPolyline is the encoded
// polyline; TravelAdvisory carries the raw traffic metadata when requested.
//
//nolint:tagliatelle
type Route struct {
	Summary          string          `json:"summary"`
	Bounds           *geo.Viewport   `json:"bounds,omitempty"`
	Legs             []Leg           `json:"legs"`
	OverviewPolyline string          `json:"overview_polyline"`
	Warnings         []string        `json:"warnings"`
	WaypointOrder    []int           `json:"waypoint_order"`
	Copyrights       string          `json:"copyrights,omitempty"`
	TravelAdvisory   json.RawMessage `json:"travel_advisory,omitempty"`
}

//nolint:tagliatelle
type Leg struct {
	Distance         float64   `json:"distance"`
	ReadableDistance string    `json:"readable_distance"`
	Duration         float64   `json:"duration"`
	ReadableDuration string    `json:"readable_duration"`
	StartLocation    geo.Point `json:"start_location"`
	EndLocation      geo.Point `json:"end_location"`
	StartAddress     string    `json:"start_address"`
	EndAddress       string    `json:"end_address"`
	Steps            []Step    `json:"steps"`
}

//nolint:tagliatelle
type Step struct {
	Instructions     string    `json:"instructions"`
	Maneuver         string    `json:"maneuver"`
	Distance         float64   `json:"distance"`
	ReadableDistance string    `json:"readable_distance"`
	Duration         float64   `json:"duration"`
	ReadableDuration string    `json:"readable_duration"`
	StartLocation    geo.Point `json:"start_location"`
	EndLocation      geo.Point `json:"end_location"`
	BearingBefore    float64   `json:"bearing_before"`
	BearingAfter     float64   `json:"bearing_after"`
}
