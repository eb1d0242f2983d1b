package repository

import (
	"context"
	"sync"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"
)

// StatusMemoryRepository is the in-process fallback store used when no
// DynamoDB binding is configured. Non-durable, process lifetime only: a
// dev/test affordance, not for production.
//
// It is a single injected instance shared by all handlers, never
// re-instantiated per handler.

type StatusMemoryRepository struct {
	mu       sync.RWMutex
	statuses map[string]entities.PaymentStatus
}

var _ interfaces.IStatusStore = (*StatusMemoryRepository)(nil)

func NewStatusMemoryRepository() *StatusMemoryRepository {
	return &StatusMemoryRepository{
		statuses: make(map[string]entities.PaymentStatus),
	}
}

func (r *StatusMemoryRepository) Get(_ context.Context, billingID string) (entities.PaymentStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.statuses[billingID], nil
}

func (r *StatusMemoryRepository) Put(_ context.Context, billingID string, status entities.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[billingID] = status
	return nil
}
