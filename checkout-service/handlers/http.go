package handlers

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// CheckoutHandlers contains checkout HTTP handlers
type CheckoutHandlers struct {
	createForm   *application.CreateCheckoutForm
	getForm      *application.GetCheckoutForm
	selectMethod *application.SelectPaymentMethod
	updateField  *application.UpdatePaymentField
	submitMethod *application.SubmitPaymentMethod
	resetForm    *application.ResetCheckoutForm
	closeForm    *application.CloseCheckoutForm
	listMethods  *application.ListPaymentMethods
}

// NewCheckoutHandlers creates new checkout handlers
func NewCheckoutHandlers(
	createForm *application.CreateCheckoutForm,
	getForm *application.GetCheckoutForm,
	selectMethod *application.SelectPaymentMethod,
	updateField *application.UpdatePaymentField,
	submitMethod *application.SubmitPaymentMethod,
	resetForm *application.ResetCheckoutForm,
	closeForm *application.CloseCheckoutForm,
	listMethods *application.ListPaymentMethods,
) *CheckoutHandlers {
	return &CheckoutHandlers{
		createForm:   createForm,
		getForm:      getForm,
		selectMethod: selectMethod,
		updateField:  updateField,
		submitMethod: submitMethod,
		resetForm:    resetForm,
		closeForm:    closeForm,
		listMethods:  listMethods,
	}
}

// ListPaymentMethods handles payment method listing requests. A failed fetch
// comes back as a retryable 502 snapshot rather than a bare error so the
// client can render a retry affordance.
func (h *CheckoutHandlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	response, err := h.listMethods.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, h.listMethods.Snapshot())
		return
	}

	writeJSON(w, http.StatusOK, application.PaymentMethodsSnapshot{
		Status:         application.CatalogStatusLoaded,
		PaymentMethods: response.PaymentMethods,
	})
}

// CreateForm handles form session creation requests
func (h *CheckoutHandlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	response, err := h.createForm.Execute(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetForm handles render state requests
func (h *CheckoutHandlers) GetForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	view, err := h.getForm.Execute(r.Context(), &application.GetCheckoutFormQuery{FormID: formID})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// SelectMethod handles payment method selection requests
func (h *CheckoutHandlers) SelectMethod(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	var cmd application.SelectPaymentMethodCommand
	if err := decodeBody(r, &cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.FormID = formID

	response, err := h.selectMethod.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// UpdateField handles single field edits
func (h *CheckoutHandlers) UpdateField(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	var cmd application.UpdatePaymentFieldCommand
	if err := decodeBody(r, &cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.FormID = formID

	response, err := h.updateField.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Submit handles submission requests; the body mirrors the imperative
// façade's boolean contract plus the displayable message
func (h *CheckoutHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	response, err := h.submitMethod.Execute(r.Context(), &application.SubmitPaymentMethodCommand{FormID: formID})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ResetForm handles snapshot restore requests
func (h *CheckoutHandlers) ResetForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	// An empty body resets to the empty state
	var cmd application.ResetCheckoutFormCommand
	if err := decodeBody(r, &cmd); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.FormID = formID

	response, err := h.resetForm.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// DeleteForm handles step abandonment
func (h *CheckoutHandlers) DeleteForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}

	if err := h.closeForm.Execute(r.Context(), formID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/payment-methods", h.ListPaymentMethods)

	r.Route("/checkout/forms", func(r chi.Router) {
		r.Post("/", h.CreateForm)
		r.Get("/{id}", h.GetForm)
		r.Put("/{id}/method", h.SelectMethod)
		r.Put("/{id}/fields", h.UpdateField)
		r.Post("/{id}/reset", h.ResetForm)
		r.Post("/{id}/submit", h.Submit)
		r.Delete("/{id}", h.DeleteForm)
	})
}

func (h *CheckoutHandlers) formID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		http.Error(w, "Form ID is required", http.StatusBadRequest)
		return "", false
	}

	formID, err := models.NewID(raw)
	if err != nil {
		http.Error(w, "Invalid form ID", http.StatusBadRequest)
		return "", false
	}
	return formID, true
}

func (h *CheckoutHandlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFormNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrUnknownMethodType),
		errors.Is(err, domain.ErrNoMethodSelected),
		errors.Is(err, domain.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(v)
}
