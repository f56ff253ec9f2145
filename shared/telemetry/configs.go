package telemetry

// CheckoutServiceConfig is the default telemetry configuration for the
// checkout service
var CheckoutServiceConfig = Config{
	ServiceName:    "checkout-service",
	ServiceVersion: "1.0.0",
}

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}
