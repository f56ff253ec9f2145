package config

import (
	"context"
	"fmt"
	"time"

	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/handlers"
	"github.com/draftea/checkout-system/checkout-service/infrastructure"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/telemetry"
	"github.com/redis/go-redis/v9"
)

type Dependencies struct {
	// Domain
	SchemaRegistry *domain.SchemaRegistry

	// Infrastructure
	FormRepository *infrastructure.MemoryFormRepository
	Catalog        domain.PaymentMethodCatalog
	Gateway        *infrastructure.FasthttpSubmissionGateway
	EventBus       *events.MemoryBus
	Redis          *redis.Client

	// Use Cases
	CreateForm   *application.CreateCheckoutForm
	GetForm      *application.GetCheckoutForm
	SelectMethod *application.SelectPaymentMethod
	UpdateField  *application.UpdatePaymentField
	SubmitMethod *application.SubmitPaymentMethod
	ResetForm    *application.ResetCheckoutForm
	CloseForm    *application.CloseCheckoutForm
	ListMethods  *application.ListPaymentMethods

	// HTTP Handlers
	CheckoutHandlers *handlers.CheckoutHandlers

	// Event Handlers
	CheckoutEventHandlers *handlers.CheckoutEventHandlers

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	telConfig := telemetry.CheckoutServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
	if config.ServiceName != "" {
		telConfig.ServiceName = config.ServiceName
	}

	tel, telShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.telemetryShutdown = telShutdown

	deps.SchemaRegistry = domain.NewSchemaRegistry()
	deps.FormRepository = infrastructure.NewMemoryFormRepository()
	deps.EventBus = events.NewMemoryBus()

	deps.Gateway = infrastructure.NewFasthttpSubmissionGateway(
		config.Gateway.URL,
		time.Duration(config.Gateway.TimeoutSeconds)*time.Second,
	)

	catalog, rdb, err := buildCatalog(config)
	if err != nil {
		return nil, err
	}
	deps.Catalog = catalog
	deps.Redis = rdb

	// Use cases
	deps.CreateForm = application.NewCreateCheckoutForm(deps.FormRepository, deps.EventBus)
	deps.GetForm = application.NewGetCheckoutForm(deps.FormRepository)
	deps.SelectMethod = application.NewSelectPaymentMethod(deps.FormRepository, deps.SchemaRegistry, deps.EventBus)
	deps.UpdateField = application.NewUpdatePaymentField(deps.FormRepository, deps.SchemaRegistry, deps.EventBus)
	deps.SubmitMethod = application.NewSubmitPaymentMethod(deps.FormRepository, deps.SchemaRegistry, deps.Gateway, deps.EventBus)
	deps.ResetForm = application.NewResetCheckoutForm(deps.FormRepository, deps.SchemaRegistry, deps.EventBus)
	deps.CloseForm = application.NewCloseCheckoutForm(deps.FormRepository, deps.EventBus)
	deps.ListMethods = application.NewListPaymentMethods(deps.Catalog)

	// Handlers
	deps.CheckoutHandlers = handlers.NewCheckoutHandlers(
		deps.CreateForm,
		deps.GetForm,
		deps.SelectMethod,
		deps.UpdateField,
		deps.SubmitMethod,
		deps.ResetForm,
		deps.CloseForm,
		deps.ListMethods,
	)
	deps.CheckoutEventHandlers = handlers.NewCheckoutEventHandlers()

	return deps, nil
}

func buildCatalog(config *Config) (domain.PaymentMethodCatalog, *redis.Client, error) {
	var catalog domain.PaymentMethodCatalog
	switch config.Catalog.Source {
	case "http":
		catalog = infrastructure.NewHTTPPaymentMethodCatalog(
			config.Catalog.URL,
			time.Duration(config.Catalog.TimeoutSeconds)*time.Second,
		)
	case "static", "":
		catalog = infrastructure.NewStaticPaymentMethodCatalog()
	default:
		return nil, nil, fmt.Errorf("unknown catalog source: %s", config.Catalog.Source)
	}

	if !config.Redis.Enabled {
		return catalog, nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Redis.Host, config.Redis.Port),
	})

	cached := infrastructure.NewRedisCatalogCache(
		rdb,
		catalog,
		time.Duration(config.Catalog.CacheTTLSeconds)*time.Second,
	)
	return cached, rdb, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}
	return nil
}
