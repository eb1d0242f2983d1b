package interfaces

import (
	"context"
	"net/url"
)

// UpstreamResponse is the raw outcome of one upstream HTTP call. Body is
// returned unparsed because the processor's response shapes vary per
// endpoint and per sandbox mood; classification happens in the adapters.
type UpstreamResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// IUpstreamClient is the opaque payment-processor HTTP API, already
// authenticated (Basic auth from the configured credentials).
type IUpstreamClient interface {
	// Configured reports whether both credential values are present. The
	// router checks this once, centrally, before any dispatch.
	Configured() bool
	Post(ctx context.Context, path string, body interface{}) (UpstreamResponse, error)
	Get(ctx context.Context, path string, query url.Values) (UpstreamResponse, error)
}
