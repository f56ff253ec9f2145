package infrastructure

import (
	"context"
	"sync"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/models"
)

// MemoryFormRepository keeps checkout forms for the lifetime of the process.
// Forms are session state; nothing here outlives the service.
type MemoryFormRepository struct {
	mu    sync.RWMutex
	forms map[models.ID]*domain.Form
}

// NewMemoryFormRepository creates a new in-memory form repository
func NewMemoryFormRepository() *MemoryFormRepository {
	return &MemoryFormRepository{
		forms: make(map[models.ID]*domain.Form),
	}
}

// Save stores or replaces a form
func (r *MemoryFormRepository) Save(_ context.Context, form *domain.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[form.ID] = form
	return nil
}

// FindByID returns the form or domain.ErrFormNotFound. Every caller gets the
// same live instance; mutations must be serialized with the form's Lock.
func (r *MemoryFormRepository) FindByID(_ context.Context, id models.ID) (*domain.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	form, ok := r.forms[id]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	return form, nil
}

// Delete removes a form; deleting an unknown form is a no-op
func (r *MemoryFormRepository) Delete(_ context.Context, id models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.forms, id)
	return nil
}
