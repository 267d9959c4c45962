package httpclient_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlace struct {
	PlaceID string `json:"place_id"` //nolint:tagliatelle
	Name    string `json:"name"`
}

type testPayload struct {
	Status      string      `json:"status"`
	Predictions []testPlace `json:"predictions"`
}

func TestGetJSON_ReturnsEnvelope(t *testing.T) {
	t.Parallel()

	payload := testPayload{
		Status:      "ok",
		Predictions: []testPlace{{PlaceID: "p-1", Name: "Koramangala"}},
	}

	server := testutil.NewJSONServer(t, http.StatusOK, payload).WithHeader("X-Request-Id", "srv-req")
	client := newClient(t, server.URL)

	resp, err := httpclient.GetJSON[testPayload](t.Context(), client, "/places/{version}/autocomplete?input=kora")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.StatusText)
	assert.Equal(t, "srv-req", resp.Headers["X-Request-Id"])
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, payload, resp.Body)
}

func TestGetJSON_PassesThroughUnknownPayload(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{"status": "ok", "extra": []int{1, 2}})
	client := newClient(t, server.URL)

	resp, err := httpclient.GetJSON[map[string]any](t.Context(), client, "/x")
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Body["status"])
	assert.Equal(t, []any{float64(1), float64(2)}, resp.Body["extra"])
}

func TestGetJSON_NonSuccessReturnsServiceError(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusNotFound, map[string]string{"error_message": "not found"})
	client := newClient(t, server.URL)

	resp, err := httpclient.GetJSON[testPayload](t.Context(), client, "/x")

	require.Nil(t, resp)

	svcErr, ok := httpclient.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "not found", svcErr.Message)
}

func TestPostJSON_SendsBodyAndReturnsEnvelope(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusCreated, testPayload{Status: "ok", Predictions: nil})
	client := newClient(t, server.URL)

	resp, err := httpclient.PostJSON[testPayload](t.Context(), client, "/x", testPlace{PlaceID: "p-2", Name: "HSR"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Created", resp.StatusText)
	assert.Equal(t, "ok", resp.Body.Status)

	var sent testPlace
	require.NoError(t, json.Unmarshal(server.LastRequest(t).Body, &sent))
	assert.Equal(t, "p-2", sent.PlaceID)
}

func TestDoJSON_NilBodySendsNothing(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, testPayload{Status: "ok", Predictions: nil})
	client := newClient(t, server.URL)

	resp, err := httpclient.DoJSON[testPayload](t.Context(), client, http.MethodPost, "/x", nil)
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Body.Status)
	assert.Empty(t, server.LastRequest(t).Body)
}

func TestResponse_MarshalsEnvelopeFields(t *testing.T) {
	t.Parallel()

	resp := httpclient.Response[map[string]string]{
		Headers:    map[string]string{"Content-Type": "application/json"},
		StatusCode: http.StatusOK,
		StatusText: "OK",
		Body:       map[string]string{"status": "ok"},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"headers":{"Content-Type":"application/json"},"statusCode":200,"statusText":"OK","body":{"status":"ok"}}`,
		string(data),
	)
}

func TestGetJSON_KeepsRawPayload(t *testing.T) {
	t.Parallel()

	server := testutil.NewJSONServer(t, http.StatusOK, map[string]any{
		"status":      "ok",
		"predictions": []any{},
		"extra_field": map[string]any{"nested": 1.5},
	})
	client := newClient(t, server.URL)

	resp, err := httpclient.GetJSON[testPayload](t.Context(), client, "/x")
	require.NoError(t, err)

	assert.Equal(t, "ok", resp.Body.Status)
	assert.JSONEq(t,
		`{"status":"ok","predictions":[],"extra_field":{"nested":1.5}}`,
		string(resp.Raw),
	)

	untyped := resp.Untyped()
	assert.Equal(t, resp.StatusCode, untyped.StatusCode)
	assert.Equal(t, resp.StatusText, untyped.StatusText)
	assert.Equal(t, resp.Headers, untyped.Headers)
	assert.JSONEq(t, string(resp.Raw), string(untyped.Body))

	data, err := json.Marshal(untyped)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"extra_field":{"nested":1.5}`)
	assert.NotContains(t, string(data), `"Raw"`)
}
