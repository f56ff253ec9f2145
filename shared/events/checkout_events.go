package events

// Checkout form lifecycle events
const (
	CheckoutFormCreatedEvent  = "checkout.form.created"
	MethodSelectedEvent       = "checkout.form.method_selected"
	FieldUpdatedEvent         = "checkout.form.field_updated"
	CheckoutFormResetEvent    = "checkout.form.reset"
	CheckoutFormClosedEvent   = "checkout.form.closed"
	SubmissionStartedEvent    = "checkout.submission.started"
	SubmissionSucceededEvent  = "checkout.submission.succeeded"
	SubmissionFailedEvent     = "checkout.submission.failed"
)
