package application

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// GetCheckoutFormQuery represents the query to read a form's render state
type GetCheckoutFormQuery struct {
	FormID models.ID `json:"form_id"`
}

// CheckoutFormView is the read-only state a renderer needs: the selected
// method, raw values, per-field errors and the submission flags.
type CheckoutFormView struct {
	FormID           string            `json:"form_id"`
	MethodType       string            `json:"method_type,omitempty"`
	Values           map[string]string `json:"values"`
	FieldErrors      map[string]string `json:"field_errors"`
	SubmissionStatus string            `json:"submission_status"`
	Pending          bool              `json:"submission_pending"`
	SubmissionError  string            `json:"submission_error,omitempty"`
}

// GetCheckoutForm use case reads a checkout form for rendering
type GetCheckoutForm struct {
	formRepository domain.FormRepository
}

// NewGetCheckoutForm creates a new GetCheckoutForm use case
func NewGetCheckoutForm(formRepository domain.FormRepository) *GetCheckoutForm {
	return &GetCheckoutForm{formRepository: formRepository}
}

// Execute returns the form's observable state
func (uc *GetCheckoutForm) Execute(ctx context.Context, query *GetCheckoutFormQuery) (*CheckoutFormView, error) {
	form, err := uc.formRepository.FindByID(ctx, query.FormID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find checkout form")
	}

	form.Lock()
	defer form.Unlock()

	view := &CheckoutFormView{
		FormID:           form.ID.String(),
		Values:           form.Values.Clone(),
		FieldErrors:      cloneErrors(form.FieldErrors),
		SubmissionStatus: string(form.Submission),
		Pending:          form.Submission == domain.SubmissionStatusPending,
		SubmissionError:  form.FailureReason,
	}
	if form.MethodType != nil {
		view.MethodType = form.MethodType.String()
	}

	return view, nil
}

func cloneErrors(fieldErrors map[string]string) map[string]string {
	clone := make(map[string]string, len(fieldErrors))
	for field, message := range fieldErrors {
		clone[field] = message
	}
	return clone
}
