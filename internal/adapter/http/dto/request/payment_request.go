package request

import (
	"strings"

	"certificados_xpto/internal/domain/entities"
)

// CreatePaymentRequest is the checkout payload. paymentMethod is free-form
// on purpose (the router normalizes it, defaulting to PIX); cardInfo is only
// meaningful for card payments.

type CardInfoRequest struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	CVV        string `json:"cvv"`
	Expiration string `json:"expiration"`
}

type AddressRequest struct {
	Place        string `json:"place"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipcode"`
}

type PayerInfoRequest struct {
	Name    string          `json:"name"`
	TaxID   string          `json:"taxid"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Address *AddressRequest `json:"address,omitempty"`
}

type CreatePaymentRequest struct {
	ID               string           `json:"id"`
	TotalAmount      float64          `json:"totalAmount"`
	Description      string           `json:"description"`
	PayerInfo        PayerInfoRequest `json:"payerInfo"`
	PaymentMethod    string           `json:"paymentMethod"`
	CardInfo         *CardInfoRequest `json:"cardInfo,omitempty"`
	Installments     int              `json:"installments"`
	Expiration       string           `json:"expiration"`
	PaymentLimitDays int              `json:"paymentLimitDays"`
	Logo             string           `json:"logo"`
}

func (r CreatePaymentRequest) ToEntity() entities.PaymentRequest {
	req := entities.PaymentRequest{
		ID:          strings.TrimSpace(r.ID),
		TotalAmount: r.TotalAmount,
		Description: r.Description,
		PayerInfo: entities.Payer{
			Name:  r.PayerInfo.Name,
			TaxID: r.PayerInfo.TaxID,
			Phone: r.PayerInfo.Phone,
			Email: r.PayerInfo.Email,
		},
		PaymentMethod:    entities.PaymentMethod(r.PaymentMethod),
		Installments:     r.Installments,
		Expiration:       r.Expiration,
		PaymentLimitDays: r.PaymentLimitDays,
		Logo:             r.Logo,
	}

	if r.PayerInfo.Address != nil {
		req.PayerInfo.Address = &entities.Address{
			Place:        r.PayerInfo.Address.Place,
			Number:       r.PayerInfo.Address.Number,
			Complement:   r.PayerInfo.Address.Complement,
			Neighborhood: r.PayerInfo.Address.Neighborhood,
			City:         r.PayerInfo.Address.City,
			State:        r.PayerInfo.Address.State,
			ZipCode:      r.PayerInfo.Address.ZipCode,
		}
	}

	if r.CardInfo != nil {
		req.CardInfo = &entities.CardInfo{
			Number:     r.CardInfo.Number,
			Name:       r.CardInfo.Name,
			CVV:        r.CardInfo.CVV,
			Expiration: r.CardInfo.Expiration,
		}
	}

	return req
}

// ForceSetStatusRequest is the manual override payload. Status defaults to
// PAID downstream when empty.
type ForceSetStatusRequest struct {
	BillingID string `json:"billingId"`
	ID        string `json:"id"`
	Status    string `json:"status"`
}

// ResolveBillingID accepts the legacy `id` alias.
func (r ForceSetStatusRequest) ResolveBillingID() string {
	if v := strings.TrimSpace(r.BillingID); v != "" {
		return v
	}
	return strings.TrimSpace(r.ID)
}

// ApproveBoletoRequest carries the upstream transaction id to approve.
type ApproveBoletoRequest struct {
	TID string `json:"tid"`
}
