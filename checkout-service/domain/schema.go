package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Field names per payment method type
const (
	FieldCardNumber     = "cardNumber"
	FieldCardholderName = "cardholderName"
	FieldExpiryDate     = "expiryDate"
	FieldCVV            = "cvv"

	FieldAccountNumber     = "accountNumber"
	FieldBankName          = "bankName"
	FieldAccountHolderName = "accountHolderName"
	FieldRoutingNumber     = "routingNumber"

	FieldPhoneNumber = "phoneNumber"
	FieldProvider    = "provider"
)

var (
	cardNumberPattern  = regexp.MustCompile(`^\d{16}$`)
	expiryDatePattern  = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern         = regexp.MustCompile(`^\d{3,4}$`)
	phoneNumberPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// FieldValues holds raw user input keyed by field name, scoped to the
// currently selected payment method type
type FieldValues map[string]string

func (v FieldValues) Clone() FieldValues {
	clone := make(FieldValues, len(v))
	for name, value := range v {
		clone[name] = value
	}
	return clone
}

// FieldRule validates a single field. Every rule is required: an empty value
// always fails with the rule's message.
type FieldRule struct {
	Name      string
	Pattern   *regexp.Regexp
	MinLength int
	Message   string
}

// Check returns the error message for value, or empty when valid
func (r FieldRule) Check(value string) string {
	if value == "" {
		return r.Message
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return r.Message
	}
	if r.MinLength > 0 && utf8.RuneCountInString(value) < r.MinLength {
		return r.Message
	}
	return ""
}

// Schema is the validation rule set for one payment method type. The zero
// value is the permissive schema used when no method is selected.
type Schema struct {
	MethodType PaymentMethodType
	Rules      []FieldRule
}

// HasField reports whether the schema owns a field with the given name
func (s Schema) HasField(name string) bool {
	for _, rule := range s.Rules {
		if rule.Name == name {
			return true
		}
	}
	return false
}

// FieldNames lists the schema's field names in rule order
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Rules))
	for _, rule := range s.Rules {
		names = append(names, rule.Name)
	}
	return names
}

// Validate runs every rule against the given values and returns the
// per-field error messages. It is a pure function of its inputs.
func (s Schema) Validate(values FieldValues) map[string]string {
	fieldErrors := make(map[string]string)
	for _, rule := range s.Rules {
		if msg := rule.Check(values[rule.Name]); msg != "" {
			fieldErrors[rule.Name] = msg
		}
	}
	return fieldErrors
}

// SchemaRegistry maps payment method types to their validation schemas
type SchemaRegistry struct {
	schemas map[PaymentMethodType]Schema
}

// NewSchemaRegistry creates the registry with the supported method schemas
func NewSchemaRegistry() *SchemaRegistry {
	schemas := map[PaymentMethodType]Schema{
		PaymentMethodTypeCard: {
			MethodType: PaymentMethodTypeCard,
			Rules: []FieldRule{
				{Name: FieldCardNumber, Pattern: cardNumberPattern, Message: "Card number must be 16 digits"},
				{Name: FieldCardholderName, MinLength: 3, Message: "Cardholder name is required"},
				{Name: FieldExpiryDate, Pattern: expiryDatePattern, Message: "Expiry date must be in MM/YY format"},
				{Name: FieldCVV, Pattern: cvvPattern, Message: "CVV must be 3 or 4 digits"},
			},
		},
		PaymentMethodTypeBankTransfer: {
			MethodType: PaymentMethodTypeBankTransfer,
			Rules: []FieldRule{
				{Name: FieldAccountNumber, MinLength: 8, Message: "Valid account number is required"},
				{Name: FieldBankName, MinLength: 2, Message: "Bank name is required"},
				{Name: FieldAccountHolderName, MinLength: 3, Message: "Account holder name is required"},
				// Required with minimum length 9; the optional-routing-number
				// variant of this schema was retired.
				{Name: FieldRoutingNumber, MinLength: 9, Message: "Routing number must be at least 9 digits"},
			},
		},
		PaymentMethodTypeMobileMoney: {
			MethodType: PaymentMethodTypeMobileMoney,
			Rules: []FieldRule{
				{Name: FieldPhoneNumber, Pattern: phoneNumberPattern, Message: "Valid phone number is required"},
				{Name: FieldProvider, MinLength: 2, Message: "Provider name is required"},
			},
		},
	}

	return &SchemaRegistry{schemas: schemas}
}

// Resolve returns the schema for the given method type. A nil method type
// resolves to the permissive empty schema so callers can detect "no method
// chosen yet" without producing field errors.
func (r *SchemaRegistry) Resolve(methodType *PaymentMethodType) (Schema, error) {
	if methodType == nil {
		return Schema{}, nil
	}

	schema, ok := r.schemas[*methodType]
	if !ok {
		return Schema{}, errors.Wrapf(ErrUnknownMethodType, "%q", methodType.String())
	}
	return schema, nil
}
