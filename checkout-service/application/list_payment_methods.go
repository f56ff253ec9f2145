package application

import (
	"context"
	"sync"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// CatalogStatus is the observable fetch state of the payment method catalog
type CatalogStatus string

const (
	CatalogStatusLoading CatalogStatus = "loading"
	CatalogStatusLoaded  CatalogStatus = "loaded"
	CatalogStatusFailed  CatalogStatus = "failed"
)

// PaymentMethodsSnapshot is the render view of the catalog: the options plus
// loading/error flags. A Failed snapshot is the retry affordance; retrying is
// just another Execute call.
type PaymentMethodsSnapshot struct {
	Status         CatalogStatus                `json:"status"`
	PaymentMethods []domain.PaymentMethodOption `json:"payment_methods,omitempty"`
	Error          string                       `json:"error,omitempty"`
}

// ListPaymentMethodsResponse represents the response with selectable methods
type ListPaymentMethodsResponse struct {
	PaymentMethods []domain.PaymentMethodOption `json:"payment_methods"`
}

// ListPaymentMethods use case fetches the selectable payment methods once per
// session and caches the result. Concurrent callers share a single upstream
// fetch; a failed fetch is not cached, so the next call retries.
type ListPaymentMethods struct {
	catalog domain.PaymentMethodCatalog
	group   singleflight.Group

	mu      sync.RWMutex
	status  CatalogStatus
	methods []domain.PaymentMethodOption
	lastErr error
}

// NewListPaymentMethods creates a new ListPaymentMethods use case
func NewListPaymentMethods(catalog domain.PaymentMethodCatalog) *ListPaymentMethods {
	return &ListPaymentMethods{
		catalog: catalog,
		status:  CatalogStatusLoading,
	}
}

// Execute returns the cached catalog, fetching it on first use
func (uc *ListPaymentMethods) Execute(ctx context.Context) (*ListPaymentMethodsResponse, error) {
	uc.mu.RLock()
	if uc.status == CatalogStatusLoaded {
		methods := uc.methods
		uc.mu.RUnlock()
		return &ListPaymentMethodsResponse{PaymentMethods: methods}, nil
	}
	uc.mu.RUnlock()

	result, err, _ := uc.group.Do("payment-methods", func() (interface{}, error) {
		// The fetch is shared by every coalesced caller, so it must not die
		// with whichever caller happened to trigger it.
		methods, err := uc.catalog.FetchPaymentMethods(context.WithoutCancel(ctx))

		uc.mu.Lock()
		if err != nil {
			uc.status = CatalogStatusFailed
			uc.lastErr = err
		} else {
			uc.status = CatalogStatusLoaded
			uc.methods = methods
			uc.lastErr = nil
		}
		uc.mu.Unlock()

		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch payment methods")
		}
		return methods, nil
	})
	if err != nil {
		return nil, err
	}

	return &ListPaymentMethodsResponse{PaymentMethods: result.([]domain.PaymentMethodOption)}, nil
}

// Snapshot returns the catalog's observable state without triggering a fetch
func (uc *ListPaymentMethods) Snapshot() PaymentMethodsSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot := PaymentMethodsSnapshot{
		Status:         uc.status,
		PaymentMethods: uc.methods,
	}
	if uc.lastErr != nil {
		snapshot.Error = uc.lastErr.Error()
	}
	return snapshot
}
