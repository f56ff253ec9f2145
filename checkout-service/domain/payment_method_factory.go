package domain

import "github.com/pkg/errors"

// PaymentMethodFactory builds typed payment method records from raw field
// values. The factory re-checks required fields as a last line of defense;
// schema validation is expected to have run first.
type PaymentMethodFactory struct{}

// NewPaymentMethodFactory creates a new payment method factory
func NewPaymentMethodFactory() *PaymentMethodFactory {
	return &PaymentMethodFactory{}
}

// CreatePaymentMethod creates a payment method record for the given type
func (f *PaymentMethodFactory) CreatePaymentMethod(methodType PaymentMethodType, values FieldValues) (*PaymentMethod, error) {
	if values == nil {
		return nil, errors.New("field values cannot be nil")
	}

	switch methodType {
	case PaymentMethodTypeCard:
		return f.createCardPaymentMethod(values)
	case PaymentMethodTypeBankTransfer:
		return f.createBankTransferPaymentMethod(values)
	case PaymentMethodTypeMobileMoney:
		return f.createMobileMoneyPaymentMethod(values)
	default:
		return nil, errors.Wrapf(ErrUnknownMethodType, "%q", methodType.String())
	}
}

func (f *PaymentMethodFactory) createCardPaymentMethod(values FieldValues) (*PaymentMethod, error) {
	if err := requireFields(values, FieldCardNumber, FieldCardholderName, FieldExpiryDate, FieldCVV); err != nil {
		return nil, err
	}

	return &PaymentMethod{
		MethodType: PaymentMethodTypeCard,
		CardPaymentMethod: &CardPaymentMethod{
			CardNumber:     values[FieldCardNumber],
			CardholderName: values[FieldCardholderName],
			ExpiryDate:     values[FieldExpiryDate],
			CVV:            values[FieldCVV],
		},
	}, nil
}

func (f *PaymentMethodFactory) createBankTransferPaymentMethod(values FieldValues) (*PaymentMethod, error) {
	if err := requireFields(values, FieldAccountNumber, FieldBankName, FieldAccountHolderName, FieldRoutingNumber); err != nil {
		return nil, err
	}

	return &PaymentMethod{
		MethodType: PaymentMethodTypeBankTransfer,
		BankTransferPaymentMethod: &BankTransferPaymentMethod{
			AccountNumber:     values[FieldAccountNumber],
			BankName:          values[FieldBankName],
			AccountHolderName: values[FieldAccountHolderName],
			RoutingNumber:     values[FieldRoutingNumber],
		},
	}, nil
}

func (f *PaymentMethodFactory) createMobileMoneyPaymentMethod(values FieldValues) (*PaymentMethod, error) {
	if err := requireFields(values, FieldPhoneNumber, FieldProvider); err != nil {
		return nil, err
	}

	return &PaymentMethod{
		MethodType: PaymentMethodTypeMobileMoney,
		MobileMoneyPaymentMethod: &MobileMoneyPaymentMethod{
			PhoneNumber: values[FieldPhoneNumber],
			Provider:    values[FieldProvider],
		},
	}, nil
}

func requireFields(values FieldValues, names ...string) error {
	for _, name := range names {
		if values[name] == "" {
			return errors.Errorf("%s is required", name)
		}
	}
	return nil
}
