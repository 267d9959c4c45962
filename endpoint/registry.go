package endpoint

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	DefaultVersion     = "v1"
	DefaultBaseURL     = "https://api.olamaps.io"
	VersionPlaceholder = "{version}"
)

var (
	ErrUnsupportedVersion = errors.New("endpoint: unsupported API version")
	ErrUnknownOperation   = errors.New("endpoint: unknown operation")
)

type Operation string

const (
	Autocomplete   Operation = "autocomplete"
	Geocode        Operation = "geocode"
	ReverseGeocode Operation = "reverse-geocode"
	Directions     Operation = "directions"
)

// Table holds the base URL and the path templates of one API version. Templates keep the
// {version} placeholder; it is substituted per request by the HTTP client.
type Table struct {
	BaseURL string
	Paths   map[Operation]string
}

var registry = map[string]Table{
	"v1": {
		BaseURL: DefaultBaseURL,
		Paths: map[Operation]string{
			Autocomplete:   "/places/{version}/autocomplete",
			Geocode:        "/places/{version}/geocode",
			ReverseGeocode: "/places/{version}/reverse-geocode",
			Directions:     "/routing/{version}/directions",
		},
	},
}

// Lookup returns a copy of the table registered for version.
func Lookup(version string) (Table, error) {
	table, ok := registry[version]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	return Table{
		BaseURL: table.BaseURL,
		Paths:   maps.Clone(table.Paths),
	}, nil
}

func Supported(version string) bool {
	_, ok := registry[version]

	return ok
}

func Versions() []string {
	return slices.Sorted(maps.Keys(registry))
}

func (t Table) Path(op Operation) (string, error) {
	path, ok := t.Paths[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	return path, nil
}

func (t Table) Operations() []Operation {
	return slices.Sorted(maps.Keys(t.Paths))
}

func Resolve(template, version string) string {
	return strings.ReplaceAll(template, VersionPlaceholder, version)
}
