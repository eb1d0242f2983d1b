package entities

import "encoding/json"

// PaymentMethod is the closed set of payment rails the checkout offers.
//
// The frontend historically sent free-form strings ("cartao", "Credit_Card"),
// so parsing is case-insensitive and anything unrecognized falls back to PIX.

type PaymentMethod string

const (
	MethodPix    PaymentMethod = "PIX"
	MethodCard   PaymentMethod = "CARD"
	MethodBoleto PaymentMethod = "BOLETO"
)

// PaymentStatus represents the lifecycle of a billing record.
//
// PENDING is the implicit initial state: a status read for an identifier that
// was never written resolves to PENDING, never to an error.

type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
	StatusExpired PaymentStatus = "EXPIRED"
)

// IsTerminalPaid reports whether s is the sticky success state. A PAID record
// must not regress to PENDING/EXPIRED through the webhook path.
func (s PaymentStatus) IsTerminalPaid() bool {
	return s == StatusPaid
}

// Address is the payer address, required for boleto issuance.
type Address struct {
	Place        string `json:"place,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipcode,omitempty"`
}

// PayerInfo carries the customer data forwarded verbatim to the upstream.
type Payer struct {
	Name    string   `json:"name,omitempty"`
	TaxID   string   `json:"taxid,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// CardInfo is the raw card data as typed in the checkout form. Number, CVV
// and expiration may still contain mask characters; validation strips them.
type CardInfo struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	CVV        string `json:"cvv"`
	Expiration string `json:"expiration"`
}

// PaymentRequest is the unified payment intent submitted by the storefront.
//
// ID is chosen by the client before the upstream record exists, so it must be
// collision-resistant; it doubles as the fallback billing identifier whenever
// the upstream rejects the transaction.
type PaymentRequest struct {
	ID               string        `json:"id"`
	TotalAmount      float64       `json:"totalAmount"`
	Description      string        `json:"description,omitempty"`
	PayerInfo        Payer         `json:"payerInfo"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty"`
	CardInfo         *CardInfo     `json:"cardInfo,omitempty"`
	Installments     int           `json:"installments,omitempty"`
	Expiration       string        `json:"expiration,omitempty"`
	PaymentLimitDays int           `json:"paymentLimitDays,omitempty"`
	Logo             string        `json:"logo,omitempty"`
}

// PaymentResult is the normalized outcome of a payment creation, the single
// contract the frontend consumes regardless of method.
//
// Raw keeps the complete upstream body for debugging/audit; clients must not
// parse it beyond the promoted fields.
type PaymentResult struct {
	BillingID     string          `json:"billingId"`
	PaymentURL    string          `json:"paymentUrl,omitempty"`
	PixPayload    string          `json:"pixPayload,omitempty"`
	PixQRCode     string          `json:"pixQrCode,omitempty"`
	BoletoBarcode string          `json:"boletoBarcode,omitempty"`
	Raw           json.RawMessage `json:"raw,omitempty"`
	StatusCode    int             `json:"-"`
}

// OpenTransaction is one upstream transaction in the reconciliation view,
// kept opaque because the upstream listing schema varies.
type OpenTransaction map[string]interface{}
