package domain

import (
	"context"

	"github.com/pkg/errors"
)

// ErrUnknownMethodType indicates a payment method type outside the configured registry.
// It is a configuration error, not a field validation error.
var ErrUnknownMethodType = errors.New("unknown payment method type")

type PaymentMethodType string

const (
	PaymentMethodTypeCard         PaymentMethodType = "CARD"
	PaymentMethodTypeBankTransfer PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodTypeMobileMoney  PaymentMethodType = "MOBILE_MONEY"
)

var allPaymentMethodTypes = map[string]PaymentMethodType{
	PaymentMethodTypeCard.String():         PaymentMethodTypeCard,
	PaymentMethodTypeBankTransfer.String(): PaymentMethodTypeBankTransfer,
	PaymentMethodTypeMobileMoney.String():  PaymentMethodTypeMobileMoney,
}

func NewPaymentMethodType(value string) (*PaymentMethodType, error) {
	if methodType, ok := allPaymentMethodTypes[value]; ok {
		return &methodType, nil
	}
	return nil, errors.Wrapf(ErrUnknownMethodType, "%q", value)
}

func (pt PaymentMethodType) String() string {
	return string(pt)
}

// PaymentMethodOption is the display record for one selectable payment method.
// Options are produced only by the catalog and are read-only to the rest of
// the system; identity is ID.
type PaymentMethodOption struct {
	ID   PaymentMethodType `json:"id"`
	Name string            `json:"name"`
	Icon string            `json:"icon"`
}

// PaymentMethodCatalog supplies the selectable payment methods
type PaymentMethodCatalog interface {
	FetchPaymentMethods(ctx context.Context) ([]PaymentMethodOption, error)
}
