package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// UpdatePaymentFieldCommand represents the command to store one field edit
type UpdatePaymentFieldCommand struct {
	FormID models.ID `json:"form_id"`
	Field  string    `json:"field"`
	Value  string    `json:"value"`
}

// UpdatePaymentFieldResponse carries the refreshed per-field error annotations
type UpdatePaymentFieldResponse struct {
	FieldErrors map[string]string `json:"field_errors"`
}

// UpdatePaymentField use case applies a single field edit to the form
type UpdatePaymentField struct {
	formRepository domain.FormRepository
	schemaRegistry *domain.SchemaRegistry
	eventPublisher events.Publisher
}

// NewUpdatePaymentField creates a new UpdatePaymentField use case
func NewUpdatePaymentField(
	formRepository domain.FormRepository,
	schemaRegistry *domain.SchemaRegistry,
	eventPublisher events.Publisher,
) *UpdatePaymentField {
	return &UpdatePaymentField{
		formRepository: formRepository,
		schemaRegistry: schemaRegistry,
		eventPublisher: eventPublisher,
	}
}

// Execute stores the raw field value and refreshes error annotations
func (uc *UpdatePaymentField) Execute(ctx context.Context, cmd *UpdatePaymentFieldCommand) (*UpdatePaymentFieldResponse, error) {
	form, err := uc.formRepository.FindByID(ctx, cmd.FormID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find checkout form")
	}

	form.Lock()
	defer form.Unlock()

	if err := form.SetField(cmd.Field, cmd.Value, uc.schemaRegistry); err != nil {
		return nil, err
	}

	if err := uc.formRepository.Save(ctx, form); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout form")
	}

	if err := uc.eventPublisher.Publish(ctx, form.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish form events")
	}
	form.ClearEvents()

	return &UpdatePaymentFieldResponse{FieldErrors: cloneErrors(form.FieldErrors)}, nil
}
