package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// ResetCheckoutFormCommand restores a form to a snapshot, or to the empty
// state when no snapshot fields are given
type ResetCheckoutFormCommand struct {
	FormID     models.ID         `json:"form_id"`
	MethodType string            `json:"method_type,omitempty"`
	Values     map[string]string `json:"values,omitempty"`
}

// ResetCheckoutFormResponse represents the restored state
type ResetCheckoutFormResponse struct {
	MethodType string            `json:"method_type,omitempty"`
	Values     map[string]string `json:"values"`
}

// ResetCheckoutForm use case restores a form after a variant switch or a
// consumed submission acknowledgment
type ResetCheckoutForm struct {
	formRepository domain.FormRepository
	schemaRegistry *domain.SchemaRegistry
	eventPublisher events.Publisher
}

// NewResetCheckoutForm creates a new ResetCheckoutForm use case
func NewResetCheckoutForm(
	formRepository domain.FormRepository,
	schemaRegistry *domain.SchemaRegistry,
	eventPublisher events.Publisher,
) *ResetCheckoutForm {
	return &ResetCheckoutForm{
		formRepository: formRepository,
		schemaRegistry: schemaRegistry,
		eventPublisher: eventPublisher,
	}
}

// Execute resets the form to the given snapshot
func (uc *ResetCheckoutForm) Execute(ctx context.Context, cmd *ResetCheckoutFormCommand) (*ResetCheckoutFormResponse, error) {
	form, err := uc.formRepository.FindByID(ctx, cmd.FormID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find checkout form")
	}

	snapshot, err := uc.buildSnapshot(cmd)
	if err != nil {
		return nil, err
	}

	form.Lock()
	defer form.Unlock()

	if err := form.Reset(snapshot, uc.schemaRegistry); err != nil {
		return nil, err
	}

	if err := uc.formRepository.Save(ctx, form); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout form")
	}

	if err := uc.eventPublisher.Publish(ctx, form.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish form events")
	}
	form.ClearEvents()

	response := &ResetCheckoutFormResponse{Values: form.Values.Clone()}
	if form.MethodType != nil {
		response.MethodType = form.MethodType.String()
	}
	return response, nil
}

func (uc *ResetCheckoutForm) buildSnapshot(cmd *ResetCheckoutFormCommand) (*domain.FormSnapshot, error) {
	if cmd.MethodType == "" && len(cmd.Values) == 0 {
		return nil, nil
	}

	snapshot := &domain.FormSnapshot{Values: domain.FieldValues(cmd.Values)}
	if cmd.MethodType != "" {
		methodType, err := domain.NewPaymentMethodType(cmd.MethodType)
		if err != nil {
			return nil, err
		}
		snapshot.MethodType = methodType
	}
	return snapshot, nil
}
