package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

// JSONServer answers every request with a fixed status and JSON payload and records what it
// received.
type JSONServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	status   int
	payload  any
	headers  map[string]string
}

func NewJSONServer(t *testing.T, status int, payload any) *JSONServer {
	t.Helper()

	srv := &JSONServer{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
		status:   status,
		payload:  payload,
		headers:  make(map[string]string),
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))
	t.Cleanup(srv.Close)

	return srv
}

// WithHeader adds a response header. It must be called before requests are sent.
func (s *JSONServer) WithHeader(key, value string) *JSONServer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.headers[key] = value

	return s
}

func (s *JSONServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Query:    r.URL.Query(),
		Header:   r.Header.Clone(),
		Body:     body,
	})

	for k, v := range s.headers {
		w.Header().Set(k, v)
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)

	if s.payload != nil {
		_ = json.NewEncoder(w).Encode(s.payload)
	}
}

func (s *JSONServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

func (s *JSONServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "server received no request")

	return requests[len(requests)-1]
}

func AssertJSONHeaders(t *testing.T, req RecordedRequest) {
	t.Helper()

	assert.Equal(t, "application/json", req.Header.Get("Accept"), "Accept header mismatch")
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"), "Content-Type header mismatch")
}

func AssertAPIKey(t *testing.T, req RecordedRequest, apiKey string) {
	t.Helper()

	assert.Equal(t, []string{apiKey}, req.Query["api_key"], "api_key query parameter mismatch")
}

func AssertHeader(t *testing.T, req RecordedRequest, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}

func AssertNoDanglingSeparator(t *testing.T, req RecordedRequest) {
	t.Helper()

	if req.RawQuery == "" {
		return
	}

	assert.NotEqual(t, '&', rune(req.RawQuery[len(req.RawQuery)-1]), "query ends with '&': %s", req.RawQuery)
	assert.NotEqual(t, '&', rune(req.RawQuery[0]), "query starts with '&': %s", req.RawQuery)
	assert.NotContains(t, req.RawQuery, "?", "query contains a stray '?': %s", req.RawQuery)
	assert.NotContains(t, req.RawQuery, "&&", "query contains an empty pair: %s", req.RawQuery)
}
