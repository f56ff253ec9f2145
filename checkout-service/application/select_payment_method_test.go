package application

import (
	"context"
	"testing"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/mocks"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSelectPaymentMethod_Execute(t *testing.T) {
	registry := domain.NewSchemaRegistry()

	tests := []struct {
		name             string
		methodType       string
		setupForm        func(t *testing.T) *domain.Form
		setupMocks       func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher)
		expectedError    string
		expectedResponse *SelectPaymentMethodResponse
	}{
		{
			name:       "selecting card exposes the card fields",
			methodType: "CARD",
			setupForm: func(t *testing.T) *domain.Form {
				form := domain.CreateForm()
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.MethodSelectedEvent
				})).Return(nil).Once()
			},
			expectedResponse: &SelectPaymentMethodResponse{
				MethodType: "CARD",
				Fields: []string{
					domain.FieldCardNumber,
					domain.FieldCardholderName,
					domain.FieldExpiryDate,
					domain.FieldCVV,
				},
			},
		},
		{
			name:       "switching to mobile money exposes its fields",
			methodType: "MOBILE_MONEY",
			setupForm: func(t *testing.T) *domain.Form {
				form := domain.CreateForm()
				assert.NoError(t, form.SelectMethod(domain.PaymentMethodTypeCard, registry))
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedResponse: &SelectPaymentMethodResponse{
				MethodType: "MOBILE_MONEY",
				Fields:     []string{domain.FieldPhoneNumber, domain.FieldProvider},
			},
		},
		{
			name:       "unknown method type is rejected before touching the form",
			methodType: "CRYPTO",
			setupForm: func(t *testing.T) *domain.Form {
				return domain.CreateForm()
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				// No expectations - the type is rejected first
			},
			expectedError: "unknown payment method type",
		},
		{
			name:       "form not found",
			methodType: "CARD",
			setupForm: func(t *testing.T) *domain.Form {
				return domain.CreateForm()
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(nil, domain.ErrFormNotFound).Once()
			},
			expectedError: "checkout form not found",
		},
		{
			name:       "switch while pending is rejected",
			methodType: "BANK_TRANSFER",
			setupForm: func(t *testing.T) *domain.Form {
				form := newFormWithValidCard(t, registry)
				assert.NoError(t, form.BeginSubmission())
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
			},
			expectedError: "submission is already in flight",
		},
		{
			name:       "repository save error",
			methodType: "CARD",
			setupForm: func(t *testing.T) *domain.Form {
				form := domain.CreateForm()
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(errors.New("storage unavailable")).Once()
			},
			expectedError: "failed to save checkout form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockFormRepository(t)
			mockPublisher := mocks.NewMockPublisher(t)

			form := tt.setupForm(t)
			tt.setupMocks(t, form, mockRepo, mockPublisher)

			useCase := NewSelectPaymentMethod(mockRepo, registry, mockPublisher)

			response, err := useCase.Execute(context.Background(), &SelectPaymentMethodCommand{
				FormID:     form.ID,
				MethodType: tt.methodType,
			})

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResponse, response)
			}
		})
	}
}
