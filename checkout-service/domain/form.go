package domain

import (
	"context"
	"sync"

	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/pkg/errors"
)

var (
	// ErrFormNotFound indicates the checkout form does not exist or was abandoned
	ErrFormNotFound = errors.New("checkout form not found")
	// ErrNoMethodSelected is the top-level validation error for a submit or
	// validate call before any payment method was chosen
	ErrNoMethodSelected = errors.New("no payment method selected")
	// ErrSubmissionInFlight rejects operations that would race an in-flight submission
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrUnknownField rejects edits to fields outside the active schema
	ErrUnknownField = errors.New("field does not belong to the active schema")
)

// SubmissionStatus represents the submission lifecycle of a checkout form
type SubmissionStatus string

const (
	SubmissionStatusIdle      SubmissionStatus = "idle"
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusSucceeded SubmissionStatus = "succeeded"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// ValidationResult is the outcome of validating a form. Exactly one of Record,
// FieldErrors or Err is meaningful: a typed record on success, per-field
// messages for rule violations, and Err for top-level failures (no method
// selected, unknown method type).
type ValidationResult struct {
	Record      *PaymentMethod
	FieldErrors map[string]string
	Err         error
}

// Valid reports whether the result carries a usable payment method record
func (r *ValidationResult) Valid() bool {
	return r.Err == nil && len(r.FieldErrors) == 0 && r.Record != nil
}

// FormSnapshot captures restorable form input for Reset
type FormSnapshot struct {
	MethodType *PaymentMethodType
	Values     FieldValues
}

// Form aggregate root. It is the single source of truth for what the user is
// currently entering in the payment-method step: the selected method type,
// the raw field values and their error annotations, and the submission
// lifecycle status.
type Form struct {
	ID            models.ID
	MethodType    *PaymentMethodType
	Values        FieldValues
	FieldErrors   map[string]string
	Submission    SubmissionStatus
	FailureReason string
	Timestamps    models.Timestamps
	Version       models.Version

	mu     sync.Mutex
	events []*events.Event
}

// Lock serializes access to the form. The repository hands the same instance
// to every caller, so a read-mutate-save cycle must hold the lock.
func (f *Form) Lock() {
	f.mu.Lock()
}

// Unlock releases the form's lock
func (f *Form) Unlock() {
	f.mu.Unlock()
}

// CreateForm factory method
func CreateForm() *Form {
	form := &Form{
		ID:          models.GenerateUUID(),
		Values:      make(FieldValues),
		FieldErrors: make(map[string]string),
		Submission:  SubmissionStatusIdle,
		Timestamps:  models.NewTimestamps(),
		Version:     models.NewVersion(),
	}

	event := events.NewEvent(form.ID, events.CheckoutFormCreatedEvent, CheckoutFormCreatedData{
		FormID: form.ID,
	})

	form.recordEvent(event)
	return form
}

// SelectMethod sets the active payment method type. All previously entered
// fields are dropped (the method schemas share no field names) and error
// annotations are cleared, so no field of another schema can survive the
// switch. Switching is rejected while a submission is pending.
func (f *Form) SelectMethod(methodType PaymentMethodType, registry *SchemaRegistry) error {
	if f.Submission == SubmissionStatusPending {
		return errors.Wrap(ErrSubmissionInFlight, "cannot switch payment method")
	}

	if _, err := registry.Resolve(&methodType); err != nil {
		return err
	}

	f.MethodType = &methodType
	f.Values = make(FieldValues)
	f.FieldErrors = make(map[string]string)
	f.Submission = SubmissionStatusIdle
	f.FailureReason = ""
	f.touch()

	event := events.NewEvent(f.ID, events.MethodSelectedEvent, MethodSelectedData{
		FormID:     f.ID,
		MethodType: methodType,
	})

	f.recordEvent(event)
	return nil
}

// SetField stores one raw field value. Input is kept even when syntactically
// invalid; error annotations are refreshed on every edit so errors surface
// live without dropping what the user typed. Fields outside the active
// schema are rejected.
func (f *Form) SetField(name, value string, registry *SchemaRegistry) error {
	if f.MethodType == nil {
		return ErrNoMethodSelected
	}

	schema, err := registry.Resolve(f.MethodType)
	if err != nil {
		return err
	}

	if !schema.HasField(name) {
		return errors.Wrapf(ErrUnknownField, "%q is not a %s field", name, f.MethodType.String())
	}

	f.Values[name] = value
	f.FieldErrors = schema.Validate(f.Values)
	f.touch()

	event := events.NewEvent(f.ID, events.FieldUpdatedEvent, FieldUpdatedData{
		FormID: f.ID,
		Field:  name,
	})

	f.recordEvent(event)
	return nil
}

// Validate runs the active schema against the current values and refreshes
// the form's error annotations. Without field mutations in between, repeated
// calls yield identical results.
func (f *Form) Validate(registry *SchemaRegistry) *ValidationResult {
	if f.MethodType == nil {
		return &ValidationResult{Err: ErrNoMethodSelected}
	}

	schema, err := registry.Resolve(f.MethodType)
	if err != nil {
		return &ValidationResult{Err: err}
	}

	fieldErrors := schema.Validate(f.Values)
	f.FieldErrors = fieldErrors
	if len(fieldErrors) > 0 {
		return &ValidationResult{FieldErrors: fieldErrors}
	}

	record, err := NewPaymentMethod(*f.MethodType, f.Values)
	if err != nil {
		return &ValidationResult{Err: err}
	}

	return &ValidationResult{Record: record}
}

// Reset restores the form to the given snapshot, or to the empty state when
// snapshot is nil. Rejected while a submission is pending.
func (f *Form) Reset(snapshot *FormSnapshot, registry *SchemaRegistry) error {
	if f.Submission == SubmissionStatusPending {
		return errors.Wrap(ErrSubmissionInFlight, "cannot reset form")
	}

	if snapshot != nil && snapshot.MethodType != nil {
		if _, err := registry.Resolve(snapshot.MethodType); err != nil {
			return err
		}
	}

	f.MethodType = nil
	f.Values = make(FieldValues)
	if snapshot != nil {
		f.MethodType = snapshot.MethodType
		if snapshot.Values != nil {
			f.Values = snapshot.Values.Clone()
		}
	}
	f.FieldErrors = make(map[string]string)
	f.Submission = SubmissionStatusIdle
	f.FailureReason = ""
	f.touch()

	event := events.NewEvent(f.ID, events.CheckoutFormResetEvent, CheckoutFormResetData{
		FormID: f.ID,
	})

	f.recordEvent(event)
	return nil
}

// BeginSubmission marks the form's submission as pending. Only one submission
// may be in flight at a time; settled states may re-enter pending on a fresh
// attempt.
func (f *Form) BeginSubmission() error {
	if f.Submission == SubmissionStatusPending {
		return ErrSubmissionInFlight
	}

	if f.MethodType == nil {
		return ErrNoMethodSelected
	}

	f.Submission = SubmissionStatusPending
	f.FailureReason = ""
	f.touch()

	event := events.NewEvent(f.ID, events.SubmissionStartedEvent, SubmissionStartedData{
		FormID:     f.ID,
		MethodType: *f.MethodType,
	})

	f.recordEvent(event)
	return nil
}

// CompleteSubmission marks the in-flight submission as succeeded
func (f *Form) CompleteSubmission(message string) error {
	if f.Submission != SubmissionStatusPending {
		return errors.New("submission can only complete from pending status")
	}

	f.Submission = SubmissionStatusSucceeded
	f.FailureReason = ""
	f.touch()

	event := events.NewEvent(f.ID, events.SubmissionSucceededEvent, SubmissionSucceededData{
		FormID:  f.ID,
		Message: message,
	})

	f.recordEvent(event)
	return nil
}

// FailSubmission settles the submission as failed with a displayable reason.
// Validation failures settle a submit attempt without ever entering pending,
// so this transition is allowed from any status.
func (f *Form) FailSubmission(reason string) {
	f.Submission = SubmissionStatusFailed
	f.FailureReason = reason
	f.touch()

	event := events.NewEvent(f.ID, events.SubmissionFailedEvent, SubmissionFailedData{
		FormID: f.ID,
		Reason: reason,
	})

	f.recordEvent(event)
}

// Events returns recorded domain events
func (f *Form) Events() []*events.Event {
	return f.events
}

// ClearEvents clears recorded domain events
func (f *Form) ClearEvents() {
	f.events = make([]*events.Event, 0)
}

func (f *Form) recordEvent(event *events.Event) {
	f.events = append(f.events, event)
}

func (f *Form) touch() {
	f.Timestamps = f.Timestamps.Update()
	f.Version = f.Version.Update()
}

// Event Data Structures
type CheckoutFormCreatedData struct {
	FormID models.ID `json:"form_id"`
}

type MethodSelectedData struct {
	FormID     models.ID         `json:"form_id"`
	MethodType PaymentMethodType `json:"method_type"`
}

// FieldUpdatedData carries the field name only; raw values never leave the form.
type FieldUpdatedData struct {
	FormID models.ID `json:"form_id"`
	Field  string    `json:"field"`
}

type CheckoutFormResetData struct {
	FormID models.ID `json:"form_id"`
}

type CheckoutFormClosedData struct {
	FormID models.ID `json:"form_id"`
}

type SubmissionStartedData struct {
	FormID     models.ID         `json:"form_id"`
	MethodType PaymentMethodType `json:"method_type"`
}

type SubmissionSucceededData struct {
	FormID  models.ID `json:"form_id"`
	Message string    `json:"message"`
}

type SubmissionFailedData struct {
	FormID models.ID `json:"form_id"`
	Reason string    `json:"reason"`
}

// FormRepository interface
type FormRepository interface {
	Save(ctx context.Context, form *Form) error
	FindByID(ctx context.Context, id models.ID) (*Form, error)
	Delete(ctx context.Context, id models.ID) error
}
