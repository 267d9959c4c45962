package olamaps

import (
	"github.com/andyle182810/olamaps/httpclient"
	"github.com/andyle182810/olamaps/query"
)

// Trace carries the optional request and correlation ids of a call. Present ids are sent both
// as query parameters and as headers.
type Trace struct {
	RequestID     string
	CorrelationID string
}

// Encode adds the ids to b, correlation id first.
func (t Trace) Encode(b *query.Builder) {
	b.AddNonEmpty(httpclient.HeaderXCorrelationID, t.CorrelationID)
	b.AddNonEmpty(httpclient.HeaderXRequestID, t.RequestID)
}

func (t Trace) RequestOptions() []httpclient.RequestOption {
	var opts []httpclient.RequestOption

	if t.CorrelationID != "" {
		opts = append(opts, httpclient.WithRequestHeader(httpclient.HeaderXCorrelationID, t.CorrelationID))
	}

	if t.RequestID != "" {
		opts = append(opts, httpclient.WithRequestHeader(httpclient.HeaderXRequestID, t.RequestID))
	}

	return opts
}
