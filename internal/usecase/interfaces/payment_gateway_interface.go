package interfaces

import (
	"context"

	"certificados_xpto/internal/domain/entities"
)

// IPaymentGateway is one payment-method adapter: it translates the unified
// PaymentRequest into the upstream call for its rail and normalizes the
// heterogeneous upstream response into a PaymentResult.
//
// Upstream rejections come back as *entities.UpstreamError so the HTTP edge
// can relay the upstream status together with the normalized error body.
type IPaymentGateway interface {
	Process(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
}
