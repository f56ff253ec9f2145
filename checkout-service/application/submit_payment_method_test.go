package application

import (
	"context"
	"testing"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/infrastructure"
	"github.com/draftea/checkout-system/checkout-service/mocks"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFormWithValidCard(t *testing.T, registry *domain.SchemaRegistry) *domain.Form {
	form := domain.CreateForm()
	assert.NoError(t, form.SelectMethod(domain.PaymentMethodTypeCard, registry))

	values := map[string]string{
		domain.FieldCardNumber:     "4242424242424242",
		domain.FieldCardholderName: "Jane Doe",
		domain.FieldExpiryDate:     "12/27",
		domain.FieldCVV:            "123",
	}
	for name, value := range values {
		assert.NoError(t, form.SetField(name, value, registry))
	}
	form.ClearEvents()
	return form
}

func TestSubmitPaymentMethod_Execute(t *testing.T) {
	registry := domain.NewSchemaRegistry()

	tests := []struct {
		name             string
		setupForm        func(t *testing.T) *domain.Form
		setupMocks       func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher)
		expectedError    string
		expectedResponse *SubmitPaymentMethodResponse
		expectedStatus   domain.SubmissionStatus
	}{
		{
			name: "valid form accepted by gateway",
			setupForm: func(t *testing.T) *domain.Form {
				return newFormWithValidCard(t, registry)
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Twice()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Twice()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()
				gateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.MatchedBy(func(method *domain.PaymentMethod) bool {
					return method.MethodType == domain.PaymentMethodTypeCard &&
						method.CardPaymentMethod.CardNumber == "4242424242424242"
				})).Return(&domain.SubmissionReceipt{Success: true, Message: "Payment method saved"}, nil).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: true, Message: "Payment method saved"},
			expectedStatus:   domain.SubmissionStatusSucceeded,
		},
		{
			name: "field errors settle as failed without reaching the gateway",
			setupForm: func(t *testing.T) *domain.Form {
				form := domain.CreateForm()
				assert.NoError(t, form.SelectMethod(domain.PaymentMethodTypeCard, registry))
				assert.NoError(t, form.SetField(domain.FieldCardNumber, "4242", registry))
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.SubmissionFailedEvent
				})).Return(nil).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: false, Message: reasonFieldErrors},
			expectedStatus:   domain.SubmissionStatusFailed,
		},
		{
			name: "no method selected settles as failed without reaching the gateway",
			setupForm: func(t *testing.T) *domain.Form {
				form := domain.CreateForm()
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: false, Message: domain.ErrNoMethodSelected.Error()},
			expectedStatus:   domain.SubmissionStatusFailed,
		},
		{
			name: "re-entrant submit while pending is rejected before the gateway",
			setupForm: func(t *testing.T) *domain.Form {
				form := newFormWithValidCard(t, registry)
				assert.NoError(t, form.BeginSubmission())
				form.ClearEvents()
				return form
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: false, Message: reasonInFlight},
			expectedStatus:   domain.SubmissionStatusPending,
		},
		{
			name: "gateway business rejection surfaces its message",
			setupForm: func(t *testing.T) *domain.Form {
				return newFormWithValidCard(t, registry)
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Twice()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Twice()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()
				gateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.Anything).
					Return(&domain.SubmissionReceipt{Success: false, Message: "Card declined"}, nil).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: false, Message: "Card declined"},
			expectedStatus:   domain.SubmissionStatusFailed,
		},
		{
			name: "gateway transport fault settles as failed",
			setupForm: func(t *testing.T) *domain.Form {
				return newFormWithValidCard(t, registry)
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Twice()
				repo.EXPECT().Save(mock.Anything, form).Return(nil).Twice()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()
				gateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedResponse: &SubmitPaymentMethodResponse{Success: false, Message: reasonGatewayUnreached},
			expectedStatus:   domain.SubmissionStatusFailed,
		},
		{
			name: "form not found",
			setupForm: func(t *testing.T) *domain.Form {
				return newFormWithValidCard(t, registry)
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(nil, domain.ErrFormNotFound).Once()
			},
			expectedError: "checkout form not found",
		},
		{
			name: "repository save error",
			setupForm: func(t *testing.T) *domain.Form {
				return newFormWithValidCard(t, registry)
			},
			setupMocks: func(t *testing.T, form *domain.Form, repo *mocks.MockFormRepository, gateway *mocks.MockSubmissionGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
				repo.EXPECT().Save(mock.Anything, form).Return(errors.New("storage unavailable")).Once()
			},
			expectedError: "failed to save checkout form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockFormRepository(t)
			mockGateway := mocks.NewMockSubmissionGateway(t)
			mockPublisher := mocks.NewMockPublisher(t)

			form := tt.setupForm(t)
			tt.setupMocks(t, form, mockRepo, mockGateway, mockPublisher)

			useCase := NewSubmitPaymentMethod(mockRepo, registry, mockGateway, mockPublisher)

			response, err := useCase.Execute(context.Background(), &SubmitPaymentMethodCommand{FormID: form.ID})

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResponse, response)
				assert.Equal(t, tt.expectedStatus, form.Submission)
			}
		})
	}
}

func TestSubmitPaymentMethod_Execute_AbandonedDuringGatewayCall(t *testing.T) {
	registry := domain.NewSchemaRegistry()

	mockRepo := mocks.NewMockFormRepository(t)
	mockGateway := mocks.NewMockSubmissionGateway(t)
	mockPublisher := mocks.NewMockPublisher(t)

	form := newFormWithValidCard(t, registry)

	mockRepo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Once()
	mockRepo.EXPECT().Save(mock.Anything, form).Return(nil).Once()
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	mockGateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, method *domain.PaymentMethod) (*domain.SubmissionReceipt, error) {
			// The step is abandoned while the gateway call is in flight
			mockRepo.EXPECT().FindByID(mock.Anything, form.ID).Return(nil, domain.ErrFormNotFound).Once()
			return &domain.SubmissionReceipt{Success: true, Message: "Payment method saved"}, nil
		}).Once()

	useCase := NewSubmitPaymentMethod(mockRepo, registry, mockGateway, mockPublisher)

	response, err := useCase.Execute(context.Background(), &SubmitPaymentMethodCommand{FormID: form.ID})

	// The outcome still resolves, but nothing is persisted for the abandoned form
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Empty(t, form.Events())
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestSubmitPaymentMethod_Execute_ConcurrentSubmitsShareOneGatewayCall(t *testing.T) {
	registry := domain.NewSchemaRegistry()

	// The real repository hands every caller the same form instance, so two
	// overlapping submits exercise the per-form serialization.
	repo := infrastructure.NewMemoryFormRepository()
	bus := events.NewMemoryBus()
	mockGateway := mocks.NewMockSubmissionGateway(t)

	form := newFormWithValidCard(t, registry)
	assert.NoError(t, repo.Save(context.Background(), form))

	entered := make(chan struct{})
	release := make(chan struct{})
	mockGateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, method *domain.PaymentMethod) (*domain.SubmissionReceipt, error) {
			close(entered)
			<-release
			return &domain.SubmissionReceipt{Success: true, Message: "Payment method saved"}, nil
		}).Once()

	useCase := NewSubmitPaymentMethod(repo, registry, mockGateway, bus)

	firstResult := make(chan *SubmitPaymentMethodResponse, 1)
	go func() {
		response, err := useCase.Execute(context.Background(), &SubmitPaymentMethodCommand{FormID: form.ID})
		assert.NoError(t, err)
		firstResult <- response
	}()

	// The first submit is parked inside the gateway with the form pending;
	// the rival submit must be rejected, not start a second gateway call.
	<-entered
	second, err := useCase.Execute(context.Background(), &SubmitPaymentMethodCommand{FormID: form.ID})
	assert.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, reasonInFlight, second.Message)

	close(release)
	first := <-firstResult
	assert.True(t, first.Success)
	assert.Equal(t, domain.SubmissionStatusSucceeded, form.Submission)
	mockGateway.AssertNumberOfCalls(t, "SubmitPaymentMethod", 1)
}

func TestSubmitPaymentMethod_Execute_FreshAttemptAfterFailure(t *testing.T) {
	registry := domain.NewSchemaRegistry()

	mockRepo := mocks.NewMockFormRepository(t)
	mockGateway := mocks.NewMockSubmissionGateway(t)
	mockPublisher := mocks.NewMockPublisher(t)

	form := newFormWithValidCard(t, registry)
	form.FailSubmission("Card declined")
	form.ClearEvents()

	mockRepo.EXPECT().FindByID(mock.Anything, form.ID).Return(form, nil).Twice()
	mockRepo.EXPECT().Save(mock.Anything, form).Return(nil).Twice()
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()
	mockGateway.EXPECT().SubmitPaymentMethod(mock.Anything, mock.Anything).
		Return(&domain.SubmissionReceipt{Success: true, Message: "Payment method saved"}, nil).Once()

	useCase := NewSubmitPaymentMethod(mockRepo, registry, mockGateway, mockPublisher)

	response, err := useCase.Execute(context.Background(), &SubmitPaymentMethodCommand{FormID: form.ID})

	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, domain.SubmissionStatusSucceeded, form.Submission)
}
