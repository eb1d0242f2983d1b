package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"certificados_xpto/internal/domain/card"
	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
	"certificados_xpto/pkg"
)

const (
	cardEndpoint = "/transactions/creditcard"

	defaultInstallments = 1
)

// CardGateway creates credit-card charges. Card data is validated locally
// (including the Luhn check) before any upstream call; a validation failure
// becomes a 400 with the human-readable reason and the upstream is never
// touched with known-bad data.
type CardGateway struct {
	upstream interfaces.IUpstreamClient

	// now is swappable for expiration tests.
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*CardGateway)(nil)

func NewCardGateway(upstream interfaces.IUpstreamClient) *CardGateway {
	return &CardGateway{upstream: upstream, now: time.Now}
}

func (g *CardGateway) Process(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	if reason := card.Validate(req.CardInfo, g.now()); reason != "" {
		log.Printf("[payment][card] validation failed id=%s reason=%s", req.ID, reason)
		return entities.PaymentResult{}, pkg.NewDomainErrorSimple("INVALID_CARD", reason, http.StatusBadRequest)
	}

	number := card.StripNonDigits(req.CardInfo.Number)
	name := strings.TrimSpace(req.CardInfo.Name)
	cvv := card.StripNonDigits(req.CardInfo.CVV)
	expiration := card.StripNonDigits(req.CardInfo.Expiration)

	installments := req.Installments
	if installments <= 0 {
		installments = defaultInstallments
	}

	body := map[string]interface{}{
		"payerInfo":   req.PayerInfo,
		"id":          req.ID,
		"totalAmount": req.TotalAmount,
		"card": map[string]interface{}{
			"number":          number,
			"name":            name,
			"cvv":             cvv,
			"expirationMonth": expiration[:2],
			"expirationYear":  "20" + expiration[2:],
		},
		"installments": installments,
		"description":  req.Description,
	}

	resp, err := g.upstream.Post(ctx, cardEndpoint, body)
	if err != nil {
		log.Printf("[payment][card] upstream unreachable err=%v", err)
		return entities.PaymentResult{}, normalizeUpstreamError(502, nil, "Erro no provedor de pagamento", req.ID)
	}

	if resp.StatusCode >= 500 {
		log.Printf("[payment][card] upstream failed status=%d body=%s", resp.StatusCode, resp.Body)
		return entities.PaymentResult{}, normalizeUpstreamError(resp.StatusCode, resp.Body, "Erro no provedor de pagamento", req.ID)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][card] upstream rejected status=%d body=%s", resp.StatusCode, resp.Body)
		return entities.PaymentResult{}, normalizeUpstreamError(resp.StatusCode, resp.Body, "Erro ao processar pagamento com cartão", req.ID)
	}

	parsed := decodeBody(resp.Body)
	if parsed == nil {
		return entities.PaymentResult{}, fmt.Errorf("card: upstream returned unparseable success body (status %d)", resp.StatusCode)
	}

	return entities.PaymentResult{
		BillingID: extractBillingID(parsed),
		PaymentURL: extractPaymentURL(parsed,
			nested("data", "creditcard", "payment_url"),
		),
		Raw:        json.RawMessage(resp.Body),
		StatusCode: resp.StatusCode,
	}, nil
}
