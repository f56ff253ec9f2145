package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/pkg/errors"
)

// CreateCheckoutFormResponse represents the response after creating a form
type CreateCheckoutFormResponse struct {
	FormID string `json:"form_id"`
}

// CreateCheckoutForm use case opens a new payment-method entry step
type CreateCheckoutForm struct {
	formRepository domain.FormRepository
	eventPublisher events.Publisher
}

// NewCreateCheckoutForm creates a new CreateCheckoutForm use case
func NewCreateCheckoutForm(
	formRepository domain.FormRepository,
	eventPublisher events.Publisher,
) *CreateCheckoutForm {
	return &CreateCheckoutForm{
		formRepository: formRepository,
		eventPublisher: eventPublisher,
	}
}

// Execute creates an empty checkout form
func (uc *CreateCheckoutForm) Execute(ctx context.Context) (*CreateCheckoutFormResponse, error) {
	form := domain.CreateForm()

	// The form is reachable by other requests as soon as it is saved.
	form.Lock()
	defer form.Unlock()

	if err := uc.formRepository.Save(ctx, form); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout form")
	}

	if err := uc.eventPublisher.Publish(ctx, form.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish form events")
	}
	form.ClearEvents()

	return &CreateCheckoutFormResponse{FormID: form.ID.String()}, nil
}
