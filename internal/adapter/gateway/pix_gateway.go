package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/domain/pix"
	"certificados_xpto/internal/usecase/interfaces"
)

const (
	pixEndpoint = "/transactions/pix"

	// Charge validity window forwarded to the upstream, in seconds.
	defaultPixExpiration = "86400"

	// Placeholder key for locally generated payloads; the sandbox never
	// settles these.
	mockPixKey = "12345678900"
)

// PixGateway creates PIX charges. It is the only adapter with a safe
// fallback: when the upstream is down (5xx or transport failure) it builds a
// valid static BR-Code locally so checkout is never blocked by sandbox
// instability.
type PixGateway struct {
	upstream interfaces.IUpstreamClient
}

var _ interfaces.IPaymentGateway = (*PixGateway)(nil)

func NewPixGateway(upstream interfaces.IUpstreamClient) *PixGateway {
	return &PixGateway{upstream: upstream}
}

func (g *PixGateway) Process(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	expiration := req.Expiration
	if expiration == "" {
		expiration = defaultPixExpiration
	}

	body := map[string]interface{}{
		"payerInfo":    req.PayerInfo,
		"expiration":   expiration,
		"returnQRCode": true,
		"id":           req.ID,
		"totalAmount":  req.TotalAmount,
	}

	resp, err := g.upstream.Post(ctx, pixEndpoint, body)
	if err != nil {
		log.Printf("[payment][pix] upstream unreachable, generating mock payload err=%v", err)
		return g.mockResult(req), nil
	}

	if resp.StatusCode >= 500 {
		log.Printf("[payment][pix] upstream failed status=%d, generating mock payload", resp.StatusCode)
		return g.mockResult(req), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][pix] upstream rejected status=%d body=%s", resp.StatusCode, resp.Body)
		return entities.PaymentResult{}, normalizeUpstreamError(resp.StatusCode, resp.Body, "Erro ao processar pagamento PIX", req.ID)
	}

	parsed := decodeBody(resp.Body)
	if parsed == nil {
		return entities.PaymentResult{}, fmt.Errorf("pix: upstream returned unparseable success body (status %d)", resp.StatusCode)
	}

	return entities.PaymentResult{
		BillingID:  extractBillingID(parsed),
		PaymentURL: extractPaymentURL(parsed),
		PixPayload: firstMatch(parsed, []fieldExtractor{nested("data", "pix", "textPayment")}),
		PixQRCode:  firstMatch(parsed, []fieldExtractor{nested("data", "pix", "qrCodeImage")}),
		Raw:        json.RawMessage(resp.Body),
		StatusCode: resp.StatusCode,
	}, nil
}

// mockResult builds the locally generated PIX artifact. The billing id is
// prefixed with "mock_" so downstream tooling can tell it apart from real
// upstream transactions.
func (g *PixGateway) mockResult(req entities.PaymentRequest) entities.PaymentResult {
	txid := req.ID
	if txid == "" {
		txid = uuid.NewString()
	}

	payload := pix.BuildStaticPayload(mockPixKey, txid, req.TotalAmount)

	raw, _ := json.Marshal(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"mock": true,
			"pix": map[string]interface{}{
				"textPayment": payload,
			},
		},
	})

	return entities.PaymentResult{
		BillingID:  "mock_" + txid,
		PixPayload: payload,
		Raw:        raw,
		StatusCode: 200,
	}
}
