package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// SelectPaymentMethodCommand represents the command to pick a payment method type
type SelectPaymentMethodCommand struct {
	FormID     models.ID `json:"form_id"`
	MethodType string    `json:"method_type"`
}

// SelectPaymentMethodResponse lists the fields the newly active schema expects
type SelectPaymentMethodResponse struct {
	MethodType string   `json:"method_type"`
	Fields     []string `json:"fields"`
}

// SelectPaymentMethod use case switches the form's active payment method
type SelectPaymentMethod struct {
	formRepository domain.FormRepository
	schemaRegistry *domain.SchemaRegistry
	eventPublisher events.Publisher
}

// NewSelectPaymentMethod creates a new SelectPaymentMethod use case
func NewSelectPaymentMethod(
	formRepository domain.FormRepository,
	schemaRegistry *domain.SchemaRegistry,
	eventPublisher events.Publisher,
) *SelectPaymentMethod {
	return &SelectPaymentMethod{
		formRepository: formRepository,
		schemaRegistry: schemaRegistry,
		eventPublisher: eventPublisher,
	}
}

// Execute selects the payment method type on the form
func (uc *SelectPaymentMethod) Execute(ctx context.Context, cmd *SelectPaymentMethodCommand) (*SelectPaymentMethodResponse, error) {
	methodType, err := domain.NewPaymentMethodType(cmd.MethodType)
	if err != nil {
		return nil, err
	}

	form, err := uc.formRepository.FindByID(ctx, cmd.FormID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find checkout form")
	}

	form.Lock()
	defer form.Unlock()

	if err := form.SelectMethod(*methodType, uc.schemaRegistry); err != nil {
		return nil, err
	}

	if err := uc.formRepository.Save(ctx, form); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout form")
	}

	if err := uc.eventPublisher.Publish(ctx, form.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish form events")
	}
	form.ClearEvents()

	schema, err := uc.schemaRegistry.Resolve(methodType)
	if err != nil {
		return nil, err
	}

	return &SelectPaymentMethodResponse{
		MethodType: methodType.String(),
		Fields:     schema.FieldNames(),
	}, nil
}
