package routing_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/olamaps"
	"github.com/andyle182810/olamaps/endpoint"
	"github.com/andyle182810/olamaps/geo"
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/routing"
	"github.com/andyle182810/olamaps/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testAPIKey = "test-api-key"

func newRouting(t *testing.T, server *testutil.JSONServer, opts ...olamaps.Option) *routing.Routing {
	t.Helper()

	opts = append([]olamaps.Option{olamaps.WithBaseURL(server.URL)}, opts...)

	client, err := routing.New(testAPIKey, opts...)
	require.NoError(t, err)

	return client
}

func ptr[T any](v T) *T {
	return &v
}

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := routing.New("")
	require.ErrorIs(t, err, httpclient.ErrAPIKeyRequired)
	require.Nil(t, client)

	client, err = routing.New(testAPIKey, olamaps.WithVersion("v0"))
	require.ErrorIs(t, err, endpoint.ErrUnsupportedVersion)
	require.Nil(t, client)

	client, err = routing.New(testAPIKey)
	require.NoError(t, err)
	require.Equal(t, "https://api.olamaps.io", client.Config().BaseURL)
}

func TestDirection_PostsWithEmptyBody(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
	client := newRouting(t, server)

	origin, err := geo.ParseCoordinate("18.76029027465273", "73.3814242364375")
	require.NoError(t, err)

	destination, err := geo.ParseCoordinate("18.73354223011708", "73.44587966939002")
	require.NoError(t, err)

	_, err = client.Direction(t.Context(), origin, destination, nil)
	require.NoError(t, err)

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/routing/v1/directions", req.Path)
	assert.Empty(t, req.Body)
	assert.Equal(t,
		"origin=18.76029027465273,73.3814242364375&destination=18.73354223011708,73.44587966939002"+
			"&api_key=test-api-key",
		req.RawQuery,
	)
	testutil.AssertJSONHeaders(t, req)
}

func TestDirection_BuildsQueryInOrder(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
	client := newRouting(t, server)

	_, err := client.Direction(t.Context(), geo.NewCoordinate(12.9, 77.6), geo.NewCoordinate(13, 77.7),
		&routing.DirectionOptions{
			Trace:           olamaps.Trace{RequestID: "r", CorrelationID: "c"},
			Language:        language.English,
			Alternatives:    ptr(true),
			TrafficMetadata: ptr(false),
			Steps:           ptr(true),
			Overview:        routing.OverviewFull,
			Waypoints:       geo.Waypoints{geo.NewCoordinate(1, 2), geo.NewCoordinate(3, 4)},
		})
	require.NoError(t, err)

	req := server.LastRequest(t)
	assert.Equal(t,
		"origin=12.9,77.6&destination=13,77.7&X-Correlation-Id=c&X-Request-Id=r&language=en"+
			"&alternatives=true&traffic_metadata=false&steps=true&overview=full&waypoints=1,2|3,4"+
			"&api_key=test-api-key",
		req.RawQuery,
	)
	testutil.AssertHeader(t, req, "X-Request-Id", "r")
	testutil.AssertHeader(t, req, "X-Correlation-Id", "c")
	testutil.AssertNoDanglingSeparator(t, req)
}

func TestDirection_Waypoints(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
	client := newRouting(t, server)

	_, err := client.Direction(t.Context(), geo.NewCoordinate(0, 0), geo.NewCoordinate(5, 5),
		&routing.DirectionOptions{ //nolint:exhaustruct
			Waypoints: geo.Waypoints{geo.NewCoordinate(1, 2), geo.NewCoordinate(3, 4)},
		})
	require.NoError(t, err)

	assert.Contains(t, server.LastRequest(t).RawQuery, "waypoints=1,2|3,4")
}

func TestDirection_Overview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		overview routing.Overview
		expected []string
	}{
		{name: "unset", overview: "", expected: nil},
		{name: "full", overview: routing.OverviewFull, expected: []string{"full"}},
		{name: "simplified", overview: routing.OverviewSimplified, expected: []string{"simplified"}},
		{name: "disabled", overview: routing.OverviewNone, expected: []string{"false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
			client := newRouting(t, server)

			_, err := client.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2),
				&routing.DirectionOptions{Overview: tt.overview}) //nolint:exhaustruct
			require.NoError(t, err)

			req := server.LastRequest(t)
			assert.Equal(t, tt.expected, req.Query["overview"])
			testutil.AssertNoDanglingSeparator(t, req)
		})
	}
}

func TestDirection_FlagsAreSentWhenFalse(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
	client := newRouting(t, server)

	_, err := client.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2),
		&routing.DirectionOptions{ //nolint:exhaustruct
			Alternatives:    ptr(false),
			TrafficMetadata: ptr(false),
			Steps:           ptr(false),
		})
	require.NoError(t, err)

	query := server.LastRequest(t).Query
	assert.Equal(t, []string{"false"}, query["alternatives"])
	assert.Equal(t, []string{"false"}, query["traffic_metadata"])
	assert.Equal(t, []string{"false"}, query["steps"])
}

func TestDirection_RejectsInvalidCoordinates(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, nil)
	client := newRouting(t, server)

	_, err := client.Direction(t.Context(), geo.NewCoordinate(0, 181), geo.NewCoordinate(1, 1), nil)
	require.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	_, err = client.Direction(t.Context(), geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1),
		&routing.DirectionOptions{Waypoints: geo.Waypoints{geo.NewCoordinate(-91, 0)}}) //nolint:exhaustruct
	require.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	require.Empty(t, server.Requests())
}

func TestDirection_ReturnsEnvelope(t *testing.T) {
	t.Parallel()

	payload := routing.DirectionResult{
		Status:       olamaps.StatusOK,
		SourceFrom:   "",
		ErrorMessage: "",
		GeocodedWaypoints: []routing.GeocodedWaypoint{
			{GeocoderStatus: "OK", PlaceID: "origin", Types: []string{"locality"}},
		},
		Routes: []routing.Route{{
			Summary:          "NH48",
			Bounds:           nil,
			OverviewPolyline: "abc123",
			Warnings:         []string{},
			WaypointOrder:    []int{},
			Copyrights:       "",
			TravelAdvisory:   json.RawMessage(`{"speed_reading_intervals":[]}`),
			Legs: []routing.Leg{{
				Distance:         12000,
				ReadableDistance: "12 km",
				Duration:         900,
				ReadableDuration: "15 min",
				StartLocation:    geo.Point{Lat: 18.76, Lng: 73.38},
				EndLocation:      geo.Point{Lat: 18.73, Lng: 73.44},
				StartAddress:     "",
				EndAddress:       "",
				Steps: []routing.Step{{
					Instructions:     "Head east",
					Maneuver:         "depart",
					Distance:         100,
					ReadableDistance: "100 m",
					Duration:         20,
					ReadableDuration: "20 s",
					StartLocation:    geo.Point{Lat: 18.76, Lng: 73.38},
					EndLocation:      geo.Point{Lat: 18.761, Lng: 73.381},
					BearingBefore:    0,
					BearingAfter:     90,
				}},
			}},
		}},
	}

	server := testutil.NewJSONServer(t, http.StatusOK, payload)
	client := newRouting(t, server)

	resp, err := client.Direction(t.Context(), geo.NewCoordinate(18.76, 73.38), geo.NewCoordinate(18.73, 73.44), nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.StatusText)
	assert.Equal(t, payload, resp.Body)
}

func TestDirection_ServiceErrorIsReturned(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusBadRequest, map[string]string{
		"status":        "bad_request",
		"error_message": "origin is invalid",
	})
	client := newRouting(t, server)

	resp, err := client.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), nil)

	require.Nil(t, resp)

	svcErr, ok := httpclient.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "origin is invalid", svcErr.Message)
}

func TestClients_WithDifferentBaseURLsDoNotInterfere(t *testing.T) {
	t.Parallel()

	first := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})
	second := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok"})

	firstClient, err := routing.New("key-1", olamaps.WithBaseURL(first.URL))
	require.NoError(t, err)

	secondClient, err := routing.New("key-2", olamaps.WithBaseURL(second.URL))
	require.NoError(t, err)

	_, err = secondClient.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), nil)
	require.NoError(t, err)

	_, err = firstClient.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), nil)
	require.NoError(t, err)

	require.Len(t, first.Requests(), 1)
	require.Len(t, second.Requests(), 1)
	testutil.AssertAPIKey(t, first.LastRequest(t), "key-1")
	testutil.AssertAPIKey(t, second.LastRequest(t), "key-2")
}

func TestDirection_KeepsFractionalValuesAndUnknownFields(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{
		"status": "ok",
		"routes": []any{map[string]any{
			"legs": []any{map[string]any{
				"distance": 1234.5,
				"duration": 60,
				"steps": []any{map[string]any{
					"distance":       10.25,
					"duration":       2.5,
					"bearing_before": 12.5,
					"bearing_after":  270.75,
				}},
			}},
		}},
		"extra": "kept",
	})
	client := newRouting(t, server)

	resp, err := client.Direction(t.Context(), geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), nil)
	require.NoError(t, err)

	require.Len(t, resp.Body.Routes, 1)
	require.Len(t, resp.Body.Routes[0].Legs, 1)

	leg := resp.Body.Routes[0].Legs[0]
	assert.InDelta(t, 1234.5, leg.Distance, 0)
	assert.InDelta(t, 60, leg.Duration, 0)

	require.Len(t, leg.Steps, 1)
	assert.InDelta(t, 10.25, leg.Steps[0].Distance, 0)
	assert.InDelta(t, 2.5, leg.Steps[0].Duration, 0)
	assert.InDelta(t, 12.5, leg.Steps[0].BearingBefore, 0)
	assert.InDelta(t, 270.75, leg.Steps[0].BearingAfter, 0)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(resp.Raw, &raw))
	assert.Equal(t, "kept", raw["extra"])
	assert.Contains(t, string(resp.Raw), `"distance":1234.5`)
}
