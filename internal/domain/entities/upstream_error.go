package entities

import (
	"encoding/json"
	"fmt"
)

// UpstreamErrorPayload is the normalized error body relayed to the client
// when the processor rejects a transaction. BillingID always carries the
// client's own submitted identifier so a transaction that failed only
// because of a disabled sandbox feature can still be force-confirmed later.
type UpstreamErrorPayload struct {
	Error            bool            `json:"error"`
	ErrorCode        string          `json:"errorCode"`
	ErrorMessage     string          `json:"errorMessage"`
	ErrorDescription string          `json:"errorDescription"`
	BillingID        string          `json:"billingId"`
	Raw              json.RawMessage `json:"raw,omitempty"`
}

// UpstreamError wraps a non-2xx upstream response. StatusCode is the status
// the HTTP edge passes through to the client.
type UpstreamError struct {
	StatusCode int
	Payload    UpstreamErrorPayload
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Payload.ErrorMessage)
}
