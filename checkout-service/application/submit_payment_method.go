package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// Submission failure reasons surfaced to the user
const (
	reasonFieldErrors      = "Please correct the highlighted fields"
	reasonInFlight         = "A submission is already in progress"
	reasonUnknownMethod    = "The selected payment method is not supported"
	reasonGatewayUnreached = "Payment method submission failed, please try again"
)

// SubmitPaymentMethodCommand represents the command to submit a form
type SubmitPaymentMethodCommand struct {
	FormID models.ID `json:"form_id"`
}

// SubmitPaymentMethodResponse represents the submission outcome. Success is
// true only when the record was locally valid and accepted by the gateway.
type SubmitPaymentMethodResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitPaymentMethod use case owns the submission lifecycle: it validates
// the form, drives the idle/pending/succeeded/failed state machine and talks
// to the submission gateway. Expected failures (validation, business
// rejection, transport faults) settle as a failed response, never an error.
type SubmitPaymentMethod struct {
	formRepository domain.FormRepository
	schemaRegistry *domain.SchemaRegistry
	gateway        domain.SubmissionGateway
	eventPublisher events.Publisher
}

// NewSubmitPaymentMethod creates a new SubmitPaymentMethod use case
func NewSubmitPaymentMethod(
	formRepository domain.FormRepository,
	schemaRegistry *domain.SchemaRegistry,
	gateway domain.SubmissionGateway,
	eventPublisher events.Publisher,
) *SubmitPaymentMethod {
	return &SubmitPaymentMethod{
		formRepository: formRepository,
		schemaRegistry: schemaRegistry,
		gateway:        gateway,
		eventPublisher: eventPublisher,
	}
}

// Execute validates and submits the form's payment method
func (uc *SubmitPaymentMethod) Execute(ctx context.Context, cmd *SubmitPaymentMethodCommand) (*SubmitPaymentMethodResponse, error) {
	form, err := uc.formRepository.FindByID(ctx, cmd.FormID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find checkout form")
	}

	// The lock is released before the gateway call so a re-entrant submit
	// observes Pending and is rejected instead of blocking behind it.
	form.Lock()

	// Only one submission in flight per form; a re-entrant call is rejected
	// before any validation or gateway work.
	if form.Submission == domain.SubmissionStatusPending {
		form.Unlock()
		return &SubmitPaymentMethodResponse{Success: false, Message: reasonInFlight}, nil
	}

	result := form.Validate(uc.schemaRegistry)
	if !result.Valid() {
		reason := validationFailureReason(result)
		form.FailSubmission(reason)

		persistErr := uc.persistAndPublish(ctx, form)
		form.Unlock()
		if persistErr != nil {
			return nil, persistErr
		}
		return &SubmitPaymentMethodResponse{Success: false, Message: reason}, nil
	}

	if err := form.BeginSubmission(); err != nil {
		form.Unlock()
		return &SubmitPaymentMethodResponse{Success: false, Message: reasonInFlight}, nil
	}

	if err := uc.persistAndPublish(ctx, form); err != nil {
		form.Unlock()
		return nil, err
	}
	form.Unlock()

	receipt, err := uc.gateway.SubmitPaymentMethod(ctx, result.Record)

	// The step may have been abandoned while the gateway call was in flight;
	// in that case the outcome still resolves but the state update is dropped.
	abandoned := false
	if _, findErr := uc.formRepository.FindByID(ctx, form.ID); findErr != nil {
		if !errors.Is(findErr, domain.ErrFormNotFound) {
			return nil, errors.Wrap(findErr, "failed to find checkout form")
		}
		abandoned = true
	}

	form.Lock()
	defer form.Unlock()

	response := uc.settle(form, receipt, err)

	if !abandoned {
		if err := uc.persistAndPublish(ctx, form); err != nil {
			return nil, err
		}
	} else {
		form.ClearEvents()
	}

	return response, nil
}

// settle applies the gateway outcome to the form's state machine
func (uc *SubmitPaymentMethod) settle(form *domain.Form, receipt *domain.SubmissionReceipt, err error) *SubmitPaymentMethodResponse {
	if err != nil {
		form.FailSubmission(reasonGatewayUnreached)
		return &SubmitPaymentMethodResponse{Success: false, Message: reasonGatewayUnreached}
	}

	if !receipt.Success {
		reason := receipt.Message
		if reason == "" {
			reason = reasonGatewayUnreached
		}
		form.FailSubmission(reason)
		return &SubmitPaymentMethodResponse{Success: false, Message: reason}
	}

	if err := form.CompleteSubmission(receipt.Message); err != nil {
		form.FailSubmission(reasonGatewayUnreached)
		return &SubmitPaymentMethodResponse{Success: false, Message: reasonGatewayUnreached}
	}

	return &SubmitPaymentMethodResponse{Success: true, Message: receipt.Message}
}

func (uc *SubmitPaymentMethod) persistAndPublish(ctx context.Context, form *domain.Form) error {
	if err := uc.formRepository.Save(ctx, form); err != nil {
		return errors.Wrap(err, "failed to save checkout form")
	}

	if err := uc.eventPublisher.Publish(ctx, form.Events()...); err != nil {
		return errors.Wrap(err, "failed to publish form events")
	}
	form.ClearEvents()
	return nil
}

func validationFailureReason(result *domain.ValidationResult) string {
	switch {
	case errors.Is(result.Err, domain.ErrNoMethodSelected):
		return domain.ErrNoMethodSelected.Error()
	case errors.Is(result.Err, domain.ErrUnknownMethodType):
		return reasonUnknownMethod
	case len(result.FieldErrors) > 0:
		return reasonFieldErrors
	default:
		return reasonFieldErrors
	}
}
