package domain

import "context"

// PaymentMethod represents a validated payment method with type-specific data.
// Exactly one of the embedded variants is non-nil; instances are constructed
// only by the factory after schema validation.
type PaymentMethod struct {
	MethodType PaymentMethodType
	*CardPaymentMethod
	*BankTransferPaymentMethod
	*MobileMoneyPaymentMethod
}

type CardPaymentMethod struct {
	CardNumber     string
	CardholderName string
	ExpiryDate     string
	CVV            string
}

type BankTransferPaymentMethod struct {
	AccountNumber     string
	BankName          string
	AccountHolderName string
	RoutingNumber     string
}

type MobileMoneyPaymentMethod struct {
	PhoneNumber string
	Provider    string
}

// NewPaymentMethod creates a validated payment method from raw field values
func NewPaymentMethod(methodType PaymentMethodType, values FieldValues) (*PaymentMethod, error) {
	factory := NewPaymentMethodFactory()
	return factory.CreatePaymentMethod(methodType, values)
}

// SubmissionReceipt is the collaborator's answer to a submission attempt.
// Success=false carries a business rejection with a displayable message.
type SubmissionReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmissionGateway is the external collaborator that persists a payment method
type SubmissionGateway interface {
	SubmitPaymentMethod(ctx context.Context, method *PaymentMethod) (*SubmissionReceipt, error)
}
