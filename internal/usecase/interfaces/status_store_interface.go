package interfaces

import (
	"context"

	"certificados_xpto/internal/domain/entities"
)

// IStatusStore is the mapping from billing identifier to payment status, the
// only shared mutable state in the service. Implementations must support
// concurrent Get/Put from simultaneous webhook and poll requests.
//
// Get returns ("", nil) for an identifier that was never written; callers
// default that to PENDING.
type IStatusStore interface {
	Get(ctx context.Context, billingID string) (entities.PaymentStatus, error)
	Put(ctx context.Context, billingID string, status entities.PaymentStatus) error
}
