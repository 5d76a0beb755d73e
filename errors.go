package auth0endpoints

import "errors"

// Sentinel errors.
var (
	// ErrInvalidConfiguration is matched by every error caused by a domain
	// that cannot be turned into an endpoint URL. It is not retryable: the
	// caller has to supply a valid domain.
	ErrInvalidConfiguration = errors.New("invalid auth0 configuration")

	ErrLoggerNil  = errors.New("logger cannot be nil")
	ErrMetricsNil = errors.New("metrics cannot be nil")
	ErrTracerNil  = errors.New("tracer cannot be nil")
)

// Error codes carried by ConfigurationError.
const (
	ErrorCodeDomainMissing = "domain_missing"
	ErrorCodeDomainInvalid = "domain_invalid"
)

// ConfigurationError reports why an endpoint URL could not be built from
// the configured domain.
type ConfigurationError struct {
	// Code is a machine-readable error code, e.g. "domain_invalid".
	Code string

	// Message is a human-readable error message.
	Message string

	// Details contains the underlying error, if any.
	Details error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Details != nil {
		return e.Message + ": " + e.Details.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Details
}

// Is allows the error to be compared with ErrInvalidConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func newConfigurationError(code, message string, details error) *ConfigurationError {
	return &ConfigurationError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
