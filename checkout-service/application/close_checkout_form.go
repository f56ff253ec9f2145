package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// CloseCheckoutForm use case abandons a checkout step: the backing form is
// deleted and the closure is announced on the event bus. Closing an unknown
// form is a no-op, so close is idempotent.
type CloseCheckoutForm struct {
	formRepository domain.FormRepository
	eventPublisher events.Publisher
}

// NewCloseCheckoutForm creates a new CloseCheckoutForm use case
func NewCloseCheckoutForm(
	formRepository domain.FormRepository,
	eventPublisher events.Publisher,
) *CloseCheckoutForm {
	return &CloseCheckoutForm{
		formRepository: formRepository,
		eventPublisher: eventPublisher,
	}
}

// Execute deletes the form and publishes the closed event
func (uc *CloseCheckoutForm) Execute(ctx context.Context, formID models.ID) error {
	form, err := uc.formRepository.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil
		}
		return errors.Wrap(err, "failed to find checkout form")
	}

	// Deleting under the form's lock keeps the close from interleaving with
	// another caller's read-mutate-save cycle on the same form.
	form.Lock()
	defer form.Unlock()

	if err := uc.formRepository.Delete(ctx, formID); err != nil {
		return errors.Wrap(err, "failed to delete checkout form")
	}

	event := events.NewEvent(formID, events.CheckoutFormClosedEvent, domain.CheckoutFormClosedData{
		FormID: formID,
	})
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish form events")
	}

	return nil
}
