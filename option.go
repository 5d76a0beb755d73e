package auth0endpoints

// Option configures an Auth0 instance.
// Returns error for validation failures.
type Option func(*Auth0) error

// WithConfigurationDomain sets an explicit domain that serves the tenant
// configuration. It short-circuits all tenant detection: the normalized
// value is used as the configuration URL whatever the tenant domain looks
// like. An empty value is the same as not passing the option.
//
// Example:
//
//	a, err := auth0endpoints.New(
//	    "my-client-id",
//	    "login.example.com",
//	    auth0endpoints.WithConfigurationDomain("config.example.com"),
//	)
func WithConfigurationDomain(domain string) Option {
	return func(a *Auth0) error {
		a.configurationDomain = domain
		return nil
	}
}

// WithLogger sets the logger used to report how endpoints were resolved.
//
// Default: a logger that discards everything.
func WithLogger(logger Logger) Option {
	return func(a *Auth0) error {
		if logger == nil {
			return ErrLoggerNil
		}
		a.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink.
//
// Default: NoopMetrics
func WithMetrics(metrics Metrics) Option {
	return func(a *Auth0) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		a.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer that records a span for the resolution.
//
// Default: NoopTracer
func WithTracer(tracer Tracer) Option {
	return func(a *Auth0) error {
		if tracer == nil {
			return ErrTracerNil
		}
		a.tracer = tracer
		return nil
	}
}
