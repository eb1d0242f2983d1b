package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
)

// WebhookResult reports which billing identifiers a callback was stored
// under and the status they resolved to.
type WebhookResult struct {
	Stored []string
	Status entities.PaymentStatus
}

// ListOpenResult is the reconciliation view over an upstream date range:
// every transaction not resolved to PAID by the upstream's own status or by
// the local store. A convenience view, not a source of truth.
type ListOpenResult struct {
	Total            int
	Open             int
	OpenTransactions []entities.OpenTransaction
}

type IStatusUseCase interface {
	GetStatus(ctx context.Context, billingID string) entities.PaymentStatus
	ForceSetStatus(ctx context.Context, billingID, status string) (entities.PaymentStatus, error)
	ProcessWebhook(ctx context.Context, body []byte, contentType, queryBillingID string) (WebhookResult, error)
	ListOpenPayments(ctx context.Context, dateInit, dateEnd, txType, index string) (ListOpenResult, error)
}

type StatusUseCase struct {
	store    interfaces.IStatusStore
	upstream interfaces.IUpstreamClient
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(store interfaces.IStatusStore, upstream interfaces.IUpstreamClient) *StatusUseCase {
	return &StatusUseCase{store: store, upstream: upstream}
}

// GetStatus never fails: an unknown identifier and a store read error both
// resolve to PENDING. The identifier is client-chosen and may predate the
// record, so "not yet created" and "not yet paid" are indistinguishable on
// purpose.
func (u *StatusUseCase) GetStatus(ctx context.Context, billingID string) entities.PaymentStatus {
	status, err := u.store.Get(ctx, billingID)
	if err != nil {
		log.Printf("[status][usecase] store read failed billing_id=%s err=%v", billingID, err)
		return entities.StatusPending
	}
	if status == "" {
		return entities.StatusPending
	}
	return status
}

// ForceSetStatus writes the status directly, bypassing the monotonic guard.
// It is the sandbox/testing escape hatch and the only way to reset a record.
func (u *StatusUseCase) ForceSetStatus(ctx context.Context, billingID, status string) (entities.PaymentStatus, error) {
	resolved := entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(status)))
	if resolved == "" {
		resolved = entities.StatusPaid
	}

	if err := u.store.Put(ctx, billingID, resolved); err != nil {
		log.Printf("[status][usecase] force-set write failed billing_id=%s status=%s err=%v", billingID, resolved, err)
		return "", err
	}

	log.Printf("[status][usecase] force-set billing_id=%s status=%s", billingID, resolved)
	return resolved, nil
}

// ProcessWebhook parses an arbitrary provider callback, resolves a canonical
// status and writes it under every plausible billing identifier found in the
// payload. The fan-out guards against the upstream using an id naming
// convention the client didn't anticipate.
func (u *StatusUseCase) ProcessWebhook(ctx context.Context, body []byte, contentType, queryBillingID string) (WebhookResult, error) {
	parsed, err := parseWebhookBody(body, contentType)
	if err != nil {
		return WebhookResult{}, err
	}

	ids := candidateBillingIDs(parsed, queryBillingID)
	status := normalizeWebhookStatus(parsed)

	log.Printf("[status][usecase] webhook received ids=%v status=%s", ids, status)

	stored := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := u.putIfNotRegressive(ctx, id, status); err != nil {
			log.Printf("[status][usecase] webhook write failed billing_id=%s err=%v", id, err)
			continue
		}
		stored = append(stored, id)
	}

	return WebhookResult{Stored: stored, Status: status}, nil
}

// putIfNotRegressive keeps PAID sticky: a delayed PENDING/EXPIRED retry
// arriving after a PAID write is ignored instead of regressing the record.
func (u *StatusUseCase) putIfNotRegressive(ctx context.Context, billingID string, status entities.PaymentStatus) error {
	if status != entities.StatusPaid {
		current, err := u.store.Get(ctx, billingID)
		if err == nil && current.IsTerminalPaid() {
			log.Printf("[status][usecase] ignoring regressive write billing_id=%s status=%s", billingID, status)
			return nil
		}
	}
	return u.store.Put(ctx, billingID, status)
}

func (u *StatusUseCase) ListOpenPayments(ctx context.Context, dateInit, dateEnd, txType, index string) (ListOpenResult, error) {
	if !u.upstream.Configured() {
		return ListOpenResult{}, ErrCredentialsNotConfigured
	}

	if index == "" {
		index = "1"
	}
	query := url.Values{}
	query.Set("dateInit", dateInit)
	query.Set("dateEnd", dateEnd)
	query.Set("index", index)
	if txType != "" {
		query.Set("type", txType)
	}

	resp, err := u.upstream.Get(ctx, "/transactions", query)
	if err != nil {
		log.Printf("[status][usecase] list-open unreachable err=%v", err)
		return ListOpenResult{}, ErrUpstreamUnreachable
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[status][usecase] list-open upstream error status=%d body=%s", resp.StatusCode, resp.Body)
		return ListOpenResult{}, &entities.UpstreamError{
			StatusCode: resp.StatusCode,
			Payload: entities.UpstreamErrorPayload{
				Error:            true,
				ErrorCode:        fmt.Sprintf("HTTP_%d", resp.StatusCode),
				ErrorMessage:     "Erro ao listar transações",
				ErrorDescription: string(resp.Body),
			},
		}
	}

	txs := decodeTransactionList(resp.Body)

	open := make([]entities.OpenTransaction, 0, len(txs))
	for _, tx := range txs {
		tid := firstStringValue(tx, "tid", "id", "billing_id", "transaction_id", "externalIdentifier")
		providerStatus := firstStringValue(tx, "status", "state", "payment_status")
		if providerStatus == "" {
			if data, ok := tx["data"].(map[string]interface{}); ok {
				providerStatus = firstStringValue(data, "status")
			}
		}

		paid := containsPaidMarker(providerStatus)
		if !paid && tid != "" {
			local, err := u.store.Get(ctx, tid)
			if err != nil {
				log.Printf("[status][usecase] list-open store read failed tid=%s err=%v", tid, err)
			} else if local.IsTerminalPaid() {
				paid = true
			}
		}

		if !paid {
			open = append(open, tx)
		}
	}

	log.Printf("[status][usecase] list-open total=%d open=%d", len(txs), len(open))
	return ListOpenResult{Total: len(txs), Open: len(open), OpenTransactions: open}, nil
}

func parseWebhookBody(body []byte, contentType string) (map[string]interface{}, error) {
	ct := strings.ToLower(contentType)

	if strings.Contains(ct, "application/json") {
		var m map[string]interface{}
		err := json.Unmarshal(body, &m)
		if err == nil {
			return m, nil
		}
		// Arrays and scalars are still valid callbacks; there is just
		// nothing to extract from them.
		if json.Valid(body) {
			return map[string]interface{}{"raw": string(body)}, nil
		}
		return nil, fmt.Errorf("invalid json payload: %w", err)
	}

	if strings.Contains(ct, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("invalid form payload: %w", err)
		}
		m := make(map[string]interface{}, len(values))
		for key := range values {
			m[key] = values.Get(key)
		}
		return m, nil
	}

	// Unknown content type: try JSON anyway, then fall back to raw text.
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err == nil {
		return m, nil
	}
	return map[string]interface{}{"raw": string(body)}, nil
}

// candidateBillingIDs collects every plausible identifier: the four known
// top-level keys, the same keys (plus externalIdentifier) one level down
// inside a raw.data/data envelope, and the query-string billingId.
// Deduplicated, insertion order preserved.
func candidateBillingIDs(body map[string]interface{}, queryBillingID string) []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}

	for _, key := range []string{"billing_id", "id", "transaction_id", "tid"} {
		add(stringify(body[key]))
	}

	envelope := webhookEnvelope(body)
	for _, key := range []string{"tid", "billing_id", "id", "externalIdentifier"} {
		add(stringify(envelope[key]))
	}

	add(queryBillingID)

	return ids
}

// webhookEnvelope resolves the provider payload: raw.data, then data, then
// the body itself.
func webhookEnvelope(body map[string]interface{}) map[string]interface{} {
	if raw, ok := body["raw"].(map[string]interface{}); ok {
		if data, ok := raw["data"].(map[string]interface{}); ok {
			return data
		}
	}
	if data, ok := body["data"].(map[string]interface{}); ok {
		return data
	}
	return body
}

func normalizeWebhookStatus(body map[string]interface{}) entities.PaymentStatus {
	if raw, ok := body["raw"].(map[string]interface{}); ok {
		if success, ok := raw["success"].(bool); ok && success {
			return entities.StatusPaid
		}
	}

	rawStatus := firstStringValue(body, "status", "event", "state", "payment_status")
	if rawStatus == "" {
		rawStatus = firstStringValue(webhookEnvelope(body), "status")
	}

	if containsPaidMarker(rawStatus) {
		return entities.StatusPaid
	}
	s := strings.ToUpper(rawStatus)
	for _, marker := range []string{"EXPIRED", "CANCELLED", "CANCELED", "FAILED"} {
		if strings.Contains(s, marker) {
			return entities.StatusExpired
		}
	}
	return entities.StatusPending
}

func containsPaidMarker(status string) bool {
	s := strings.ToUpper(status)
	for _, marker := range []string{"PAID", "SETTLED", "COMPLETED", "SUCCESS"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func firstStringValue(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v := stringify(m[key]); v != "" {
			return v
		}
	}
	return ""
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}

func decodeTransactionList(body []byte) []entities.OpenTransaction {
	toList := func(v interface{}) []entities.OpenTransaction {
		arr, ok := v.([]interface{})
		if !ok {
			return nil
		}
		txs := make([]entities.OpenTransaction, 0, len(arr))
		for _, item := range arr {
			if m, ok := item.(map[string]interface{}); ok {
				txs = append(txs, entities.OpenTransaction(m))
			}
		}
		return txs
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if txs := toList(envelope["data"]); txs != nil {
			return txs
		}
		if txs := toList(envelope["transactions"]); txs != nil {
			return txs
		}
		return []entities.OpenTransaction{}
	}

	var arr []interface{}
	if err := json.Unmarshal(body, &arr); err == nil {
		return toList(interface{}(arr))
	}
	return []entities.OpenTransaction{}
}
