package repo

import (
	"context"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// MemoryWorkflowRepo keeps one open checkout per device in memory. Checkouts
// are short-lived and are not persisted.
type MemoryWorkflowRepo struct {
	mu        sync.Mutex
	workflows map[string]*domain.Workflow
}

var _ contracts.WorkflowRepository = (*MemoryWorkflowRepo)(nil)

func NewMemoryWorkflowRepo() *MemoryWorkflowRepo {
	return &MemoryWorkflowRepo{workflows: make(map[string]*domain.Workflow)}
}

func (r *MemoryWorkflowRepo) Create(_ context.Context, deviceID string, w *domain.Workflow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.workflows[deviceID]; ok && cur.Processing() {
		return domain.ErrOrderInProgress
	}
	r.workflows[deviceID] = w
	return nil
}

func (r *MemoryWorkflowRepo) Update(_ context.Context, deviceID string, fn func(w *domain.Workflow) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workflows[deviceID]
	if !ok {
		return domain.ErrCheckoutNotFound
	}
	return fn(w)
}
