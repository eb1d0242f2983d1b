package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
)

const (
	boletoEndpoint = "/transactions/boleto"

	defaultPaymentLimitDays = 3
)

// BoletoGateway creates bank-slip charges. Unlike PIX there is no safe
// synthetic artifact for a boleto (the barcode must come from the bank), so
// upstream failures are surfaced transparently, never mocked.
type BoletoGateway struct {
	upstream interfaces.IUpstreamClient
}

var _ interfaces.IPaymentGateway = (*BoletoGateway)(nil)

func NewBoletoGateway(upstream interfaces.IUpstreamClient) *BoletoGateway {
	return &BoletoGateway{upstream: upstream}
}

func (g *BoletoGateway) Process(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	limitDays := req.PaymentLimitDays
	if limitDays <= 0 {
		limitDays = defaultPaymentLimitDays
	}

	body := map[string]interface{}{
		"payerInfo":          req.PayerInfo,
		"payment_limit_days": limitDays,
		"fine":               map[string]interface{}{"mode": "FIXED", "start": 2},
		"interest":           map[string]interface{}{"mode": "DAILY_AMOUNT"},
		"id":                 req.ID,
		"totalAmount":        req.TotalAmount,
	}
	if req.Logo != "" {
		body["logo"] = req.Logo
	}

	resp, err := g.upstream.Post(ctx, boletoEndpoint, body)
	if err != nil {
		log.Printf("[payment][boleto] upstream unreachable err=%v", err)
		return entities.PaymentResult{}, normalizeUpstreamError(502, nil, "Erro no provedor de pagamento", req.ID)
	}

	if resp.StatusCode >= 500 {
		log.Printf("[payment][boleto] upstream failed status=%d body=%s", resp.StatusCode, resp.Body)
		return entities.PaymentResult{}, normalizeUpstreamError(resp.StatusCode, resp.Body, "Erro no provedor de pagamento", req.ID)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][boleto] upstream rejected status=%d body=%s", resp.StatusCode, resp.Body)
		return entities.PaymentResult{}, normalizeUpstreamError(resp.StatusCode, resp.Body, "Erro ao processar pagamento com boleto", req.ID)
	}

	parsed := decodeBody(resp.Body)
	if parsed == nil {
		return entities.PaymentResult{}, fmt.Errorf("boleto: upstream returned unparseable success body (status %d)", resp.StatusCode)
	}

	return entities.PaymentResult{
		BillingID: extractBillingID(parsed),
		PaymentURL: extractPaymentURL(parsed,
			nested("data", "boleto", "url"),
			nested("data", "boleto", "pdf"),
		),
		BoletoBarcode: firstMatch(parsed, []fieldExtractor{nested("data", "boleto", "barcode")}),
		Raw:           json.RawMessage(resp.Body),
		StatusCode:    resp.StatusCode,
	}, nil
}
