package telemetry

// VisaCheckoutServiceConfig is the telemetry configuration for the visa checkout service
var VisaCheckoutServiceConfig = Config{
	ServiceName:    "visa-checkout-service",
	ServiceVersion: "1.0.0",
}

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

// WithEnvironment sets the deployment environment for a config
func (c Config) WithEnvironment(env string) Config {
	c.Environment = env
	return c
}
