package response

import (
	"encoding/json"

	"certificados_xpto/internal/domain/entities"
)

// PaymentResponse is the single create-payment contract the frontend
// consumes for every method. Raw carries the complete upstream body for
// debugging; clients must not depend on its shape.
type PaymentResponse struct {
	BillingID     string          `json:"billingId"`
	PaymentURL    string          `json:"paymentUrl,omitempty"`
	PixPayload    string          `json:"pixPayload,omitempty"`
	PixQRCode     string          `json:"pixQrCode,omitempty"`
	BoletoBarcode string          `json:"boletoBarcode,omitempty"`
	Raw           json.RawMessage `json:"raw,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResponse {
	return PaymentResponse{
		BillingID:     r.BillingID,
		PaymentURL:    r.PaymentURL,
		PixPayload:    r.PixPayload,
		PixQRCode:     r.PixQRCode,
		BoletoBarcode: r.BoletoBarcode,
		Raw:           r.Raw,
	}
}

type PaymentStatusResponse struct {
	BillingID string `json:"billingId"`
	Status    string `json:"status"`
}

type WebhookResponse struct {
	OK     bool     `json:"ok"`
	Stored []string `json:"stored"`
	Status string   `json:"status"`
}

type ForceSetStatusResponse struct {
	OK        bool   `json:"ok"`
	BillingID string `json:"billingId"`
	Status    string `json:"status"`
}

type ListOpenPaymentsResponse struct {
	Total            int                        `json:"total"`
	Open             int                        `json:"open"`
	OpenTransactions []entities.OpenTransaction `json:"openTransactions"`
}
