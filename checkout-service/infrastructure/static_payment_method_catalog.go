package infrastructure

import (
	"context"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

var defaultPaymentMethods = []domain.PaymentMethodOption{
	{ID: domain.PaymentMethodTypeCard, Name: "Credit/Debit Card", Icon: "card-icon"},
	{ID: domain.PaymentMethodTypeBankTransfer, Name: "Bank Transfer", Icon: "bank-icon"},
	{ID: domain.PaymentMethodTypeMobileMoney, Name: "Mobile Money", Icon: "mobile-icon"},
}

// StaticPaymentMethodCatalog serves the built-in payment method list. Used in
// local environments and as the fallback when no upstream catalog is
// configured.
type StaticPaymentMethodCatalog struct {
	methods []domain.PaymentMethodOption
}

// NewStaticPaymentMethodCatalog creates a catalog with the default methods
func NewStaticPaymentMethodCatalog() *StaticPaymentMethodCatalog {
	return &StaticPaymentMethodCatalog{methods: defaultPaymentMethods}
}

// FetchPaymentMethods returns a copy of the configured methods
func (c *StaticPaymentMethodCatalog) FetchPaymentMethods(ctx context.Context) ([]domain.PaymentMethodOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	methods := make([]domain.PaymentMethodOption, len(c.methods))
	copy(methods, c.methods)
	return methods, nil
}
