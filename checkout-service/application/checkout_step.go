package application

import (
	"context"
	"sync/atomic"

	"github.com/draftea/checkout-system/shared/models"
)

// CheckoutStep is the imperative handle a parent wizard holds for the
// payment-method step. It exposes a single submit entry point that always
// resolves to a boolean: true only when the payment method was locally valid
// and accepted by the gateway, false for every expected failure mode.
type CheckoutStep struct {
	formID    models.ID
	submit    *SubmitPaymentMethod
	closeForm *CloseCheckoutForm
	closed    atomic.Bool
}

// NewCheckoutStep creates a handle bound to one checkout form
func NewCheckoutStep(
	formID models.ID,
	submit *SubmitPaymentMethod,
	closeForm *CloseCheckoutForm,
) *CheckoutStep {
	return &CheckoutStep{
		formID:    formID,
		submit:    submit,
		closeForm: closeForm,
	}
}

// FormID returns the bound form's identifier
func (s *CheckoutStep) FormID() models.ID {
	return s.formID
}

// SubmitPaymentMethod validates and submits the step's payment method.
// It never panics and never leaves the caller hanging: unexpected faults
// resolve to false with the reason recorded on the form.
func (s *CheckoutStep) SubmitPaymentMethod(ctx context.Context) bool {
	if s.closed.Load() {
		return false
	}

	response, err := s.submit.Execute(ctx, &SubmitPaymentMethodCommand{FormID: s.formID})
	if err != nil {
		return false
	}
	return response.Success
}

// Close abandons the step. The backing form is deleted, so a gateway response
// that arrives afterwards settles the caller's boolean without acting on
// discarded state.
func (s *CheckoutStep) Close(ctx context.Context) {
	if s.closed.CompareAndSwap(false, true) {
		_ = s.closeForm.Execute(ctx, s.formID)
	}
}
