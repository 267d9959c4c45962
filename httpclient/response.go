package httpclient

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Response is the envelope returned for every successful call. Body is the payload decoded into
// T; Raw keeps the payload bytes exactly as received, including fields T does not declare.
type Response[T any] struct {
	Headers    map[string]string `json:"headers"`
	StatusCode int               `json:"statusCode"`
	StatusText string            `json:"statusText"`
	Body       T                 `json:"body"`
	Raw        json.RawMessage   `json:"-"`
}

func NewResponse[T any](resp *resty.Response, body T) *Response[T] {
	headers := make(map[string]string, len(resp.Header()))
	for key, values := range resp.Header() {
		headers[http.CanonicalHeaderKey(key)] = strings.Join(values, ", ")
	}

	return &Response[T]{
		Headers:    headers,
		StatusCode: resp.StatusCode(),
		StatusText: statusText(resp),
		Body:       body,
		Raw:        rawBody(resp),
	}
}

// statusText returns the reason phrase of the status line, e.g. "OK" for "200 OK".
func statusText(resp *resty.Response) string {
	code := resp.StatusCode()

	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if text == "" {
		return http.StatusText(code)
	}

	return text
}

func rawBody(resp *resty.Response) json.RawMessage {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}

	return append(json.RawMessage(nil), body...)
}

// Untyped returns the envelope with the payload as received in place of the decoded body.
func (r *Response[T]) Untyped() *Response[json.RawMessage] {
	return &Response[json.RawMessage]{
		Headers:    r.Headers,
		StatusCode: r.StatusCode,
		StatusText: r.StatusText,
		Body:       r.Raw,
		Raw:        r.Raw,
	}
}
