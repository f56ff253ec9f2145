package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// submissionPayload is the flat wire shape the payments gateway expects:
// the discriminating type plus the selected variant's fields.
type submissionPayload struct {
	Type              string `json:"type"`
	CardNumber        string `json:"cardNumber,omitempty"`
	CardholderName    string `json:"cardholderName,omitempty"`
	ExpiryDate        string `json:"expiryDate,omitempty"`
	CVV               string `json:"cvv,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
	RoutingNumber     string `json:"routingNumber,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	Provider          string `json:"provider,omitempty"`
}

// FasthttpSubmissionGateway submits validated payment methods to the
// payments gateway over HTTP
type FasthttpSubmissionGateway struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

// NewFasthttpSubmissionGateway creates a new gateway client
func NewFasthttpSubmissionGateway(url string, timeout time.Duration) *FasthttpSubmissionGateway {
	return &FasthttpSubmissionGateway{
		url:     url,
		timeout: timeout,
		client:  &fasthttp.Client{},
	}
}

// SubmitPaymentMethod posts the record to the gateway. A parseable
// non-success body is a business rejection and comes back as a receipt;
// transport faults and unparseable responses are errors.
func (g *FasthttpSubmissionGateway) SubmitPaymentMethod(_ context.Context, method *domain.PaymentMethod) (*domain.SubmissionReceipt, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	payload, err := sonic.Marshal(buildPayload(method))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payment method")
	}

	req.SetRequestURI(g.url + "/payment-methods")
	req.Header.SetMethod(http.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	if err := g.client.DoTimeout(req, resp, g.timeout); err != nil {
		return nil, errors.Wrap(err, "failed to reach payments gateway")
	}

	var receipt domain.SubmissionReceipt
	if err := sonic.Unmarshal(resp.Body(), &receipt); err != nil {
		return nil, errors.Errorf("payments gateway returned status %d", resp.StatusCode())
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, errors.Errorf("payments gateway returned status %d", resp.StatusCode())
	}

	return &receipt, nil
}

func buildPayload(method *domain.PaymentMethod) submissionPayload {
	payload := submissionPayload{Type: method.MethodType.String()}

	switch {
	case method.CardPaymentMethod != nil:
		payload.CardNumber = method.CardPaymentMethod.CardNumber
		payload.CardholderName = method.CardPaymentMethod.CardholderName
		payload.ExpiryDate = method.CardPaymentMethod.ExpiryDate
		payload.CVV = method.CardPaymentMethod.CVV
	case method.BankTransferPaymentMethod != nil:
		payload.AccountNumber = method.BankTransferPaymentMethod.AccountNumber
		payload.BankName = method.BankTransferPaymentMethod.BankName
		payload.AccountHolderName = method.BankTransferPaymentMethod.AccountHolderName
		payload.RoutingNumber = method.BankTransferPaymentMethod.RoutingNumber
	case method.MobileMoneyPaymentMethod != nil:
		payload.PhoneNumber = method.MobileMoneyPaymentMethod.PhoneNumber
		payload.Provider = method.MobileMoneyPaymentMethod.Provider
	}

	return payload
}
