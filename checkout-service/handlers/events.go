package handlers

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// CheckoutEventHandlers turns checkout domain events into telemetry. It is
// the in-process observer for the form lifecycle; nothing here feeds back
// into form state.
type CheckoutEventHandlers struct{}

// NewCheckoutEventHandlers creates new checkout event handlers
func NewCheckoutEventHandlers() *CheckoutEventHandlers {
	return &CheckoutEventHandlers{}
}

// Handle implements the events.EventHandler interface
func (h *CheckoutEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.CheckoutFormCreatedEvent:
		telemetry.RecordCounter(ctx, "checkout_forms_created_total", "Checkout forms opened", 1)

	case events.MethodSelectedEvent:
		var data domain.MethodSelectedData
		if err := event.UnmarshalPayload(&data); err != nil {
			return err
		}
		telemetry.RecordCounter(ctx, "checkout_method_selected_total", "Payment method selections", 1,
			attribute.String("method_type", data.MethodType.String()),
		)

	case events.SubmissionStartedEvent:
		var data domain.SubmissionStartedData
		if err := event.UnmarshalPayload(&data); err != nil {
			return err
		}
		telemetry.RecordCounter(ctx, "checkout_submissions_total", "Payment method submissions", 1,
			attribute.String("method_type", data.MethodType.String()),
		)

	case events.SubmissionSucceededEvent:
		telemetry.RecordCounter(ctx, "checkout_submission_results_total", "Submission outcomes", 1,
			attribute.String("result", "succeeded"),
		)

	case events.SubmissionFailedEvent:
		telemetry.RecordCounter(ctx, "checkout_submission_results_total", "Submission outcomes", 1,
			attribute.String("result", "failed"),
		)

	default:
		// Field edits and resets are not metered
	}

	return nil
}
