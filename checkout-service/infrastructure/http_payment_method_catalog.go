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

type paymentMethodsEnvelope struct {
	PaymentMethods []domain.PaymentMethodOption `json:"paymentMethods"`
}

// HTTPPaymentMethodCatalog fetches the selectable payment methods from an
// upstream catalog service. Latency is whatever the upstream takes; callers
// must treat the fetch as an arbitrary-latency async call.
type HTTPPaymentMethodCatalog struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

// NewHTTPPaymentMethodCatalog creates a new catalog client
func NewHTTPPaymentMethodCatalog(url string, timeout time.Duration) *HTTPPaymentMethodCatalog {
	return &HTTPPaymentMethodCatalog{
		url:     url,
		timeout: timeout,
		client:  &fasthttp.Client{},
	}
}

// FetchPaymentMethods requests the catalog from the upstream service
func (c *HTTPPaymentMethodCatalog) FetchPaymentMethods(_ context.Context) ([]domain.PaymentMethodOption, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.url + "/payment-methods")
	req.Header.SetMethod(http.MethodGet)

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, errors.Wrap(err, "failed to reach payment method catalog")
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("payment method catalog returned status %d", resp.StatusCode())
	}

	var envelope paymentMethodsEnvelope
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment method catalog response")
	}

	return envelope.PaymentMethods, nil
}
