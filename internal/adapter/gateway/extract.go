package gateway

import (
	"encoding/json"
	"fmt"

	"certificados_xpto/internal/domain/entities"
)

// The upstream has shipped several response schemas over time (tid at the
// top level, billing_id inside a data envelope, plain id). Extraction is an
// explicit ordered list of accessors tried in sequence; the order below is
// the contract and must not be reshuffled.

type fieldExtractor func(m map[string]interface{}) string

var billingIDExtractors = []fieldExtractor{
	nested("data", "tid"),
	top("tid"),
	nested("data", "billing_id"),
	top("billing_id"),
	nested("data", "id"),
	top("id"),
}

var paymentURLExtractors = []fieldExtractor{
	nested("data", "payment_url"),
	top("payment_url"),
}

func top(key string) fieldExtractor {
	return func(m map[string]interface{}) string {
		return asString(m[key])
	}
}

func nested(keys ...string) fieldExtractor {
	return func(m map[string]interface{}) string {
		cur := m
		for i, key := range keys {
			if i == len(keys)-1 {
				return asString(cur[key])
			}
			next, ok := cur[key].(map[string]interface{})
			if !ok {
				return ""
			}
			cur = next
		}
		return ""
	}
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode to float64; ids are integral in practice.
		return fmt.Sprintf("%.0f", t)
	default:
		return ""
	}
}

func firstMatch(m map[string]interface{}, extractors []fieldExtractor) string {
	for _, extract := range extractors {
		if v := extract(m); v != "" {
			return v
		}
	}
	return ""
}

// extractBillingID resolves the upstream transaction identifier from any of
// the known response shapes.
func extractBillingID(m map[string]interface{}) string {
	return firstMatch(m, billingIDExtractors)
}

// extractPaymentURL resolves the redirect/display URL; extra method-specific
// accessors (boleto pdf, creditcard payment_url) run after the common ones.
func extractPaymentURL(m map[string]interface{}, extra ...fieldExtractor) string {
	if v := firstMatch(m, paymentURLExtractors); v != "" {
		return v
	}
	return firstMatch(m, extra)
}

// normalizeUpstreamError maps a non-2xx upstream body to the normalized
// error payload, preserving the client's submitted id as billingId.
func normalizeUpstreamError(status int, body []byte, fallbackMessage, submittedID string) *entities.UpstreamError {
	var parsed map[string]interface{}
	var raw json.RawMessage
	if json.Valid(body) {
		_ = json.Unmarshal(body, &parsed)
		raw = json.RawMessage(body)
	}

	payload := entities.UpstreamErrorPayload{
		Error:            true,
		ErrorCode:        fmt.Sprintf("HTTP_%d", status),
		ErrorMessage:     fallbackMessage,
		ErrorDescription: string(body),
		BillingID:        submittedID,
		Raw:              raw,
	}

	if parsed != nil {
		if v := asString(parsed["errorCode"]); v != "" {
			payload.ErrorCode = v
		}
		if v := asString(parsed["errorMessage"]); v != "" {
			payload.ErrorMessage = v
		} else if v := asString(parsed["error"]); v != "" {
			payload.ErrorMessage = v
		}
		if v := asString(parsed["errorDescription"]); v != "" {
			payload.ErrorDescription = v
		} else if v := asString(parsed["error"]); v != "" {
			payload.ErrorDescription = v
		}
	}

	return &entities.UpstreamError{StatusCode: status, Payload: payload}
}

func decodeBody(body []byte) map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return nil
	}
	return m
}
