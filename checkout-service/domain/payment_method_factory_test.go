package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodFactory_CreatePaymentMethod(t *testing.T) {
	factory := NewPaymentMethodFactory()

	tests := []struct {
		name          string
		methodType    PaymentMethodType
		values        FieldValues
		expectedError string
		check         func(*testing.T, *PaymentMethod)
	}{
		{
			name:       "card record",
			methodType: PaymentMethodTypeCard,
			values:     validCardValues(),
			check: func(t *testing.T, method *PaymentMethod) {
				assert.NotNil(t, method.CardPaymentMethod)
				assert.Nil(t, method.BankTransferPaymentMethod)
				assert.Nil(t, method.MobileMoneyPaymentMethod)
				assert.Equal(t, "Jane Doe", method.CardPaymentMethod.CardholderName)
			},
		},
		{
			name:       "bank transfer record",
			methodType: PaymentMethodTypeBankTransfer,
			values:     validBankTransferValues(),
			check: func(t *testing.T, method *PaymentMethod) {
				assert.NotNil(t, method.BankTransferPaymentMethod)
				assert.Equal(t, "021000021", method.BankTransferPaymentMethod.RoutingNumber)
			},
		},
		{
			name:       "mobile money record",
			methodType: PaymentMethodTypeMobileMoney,
			values:     validMobileMoneyValues(),
			check: func(t *testing.T, method *PaymentMethod) {
				assert.NotNil(t, method.MobileMoneyPaymentMethod)
				assert.Equal(t, "M-Pesa", method.MobileMoneyPaymentMethod.Provider)
			},
		},
		{
			name:          "missing required field",
			methodType:    PaymentMethodTypeCard,
			values:        FieldValues{FieldCardNumber: "4242424242424242"},
			expectedError: "is required",
		},
		{
			name:          "nil values",
			methodType:    PaymentMethodTypeCard,
			values:        nil,
			expectedError: "field values cannot be nil",
		},
		{
			name:          "unknown method type",
			methodType:    PaymentMethodType("CRYPTO"),
			values:        FieldValues{},
			expectedError: "unknown payment method type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := factory.CreatePaymentMethod(tt.methodType, tt.values)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, method)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.methodType, method.MethodType)
				tt.check(t, method)
			}
		})
	}
}

func TestNewPaymentMethodType(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      PaymentMethodType
		expectedError bool
	}{
		{name: "card", value: "CARD", expected: PaymentMethodTypeCard},
		{name: "bank transfer", value: "BANK_TRANSFER", expected: PaymentMethodTypeBankTransfer},
		{name: "mobile money", value: "MOBILE_MONEY", expected: PaymentMethodTypeMobileMoney},
		{name: "lowercase is rejected", value: "card", expectedError: true},
		{name: "empty is rejected", value: "", expectedError: true},
		{name: "unknown is rejected", value: "CRYPTO", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methodType, err := NewPaymentMethodType(tt.value)

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownMethodType)
				assert.Nil(t, methodType)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, *methodType)
			}
		})
	}
}
