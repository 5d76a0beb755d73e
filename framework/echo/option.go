package auth0echo

import (
	"github.com/labstack/echo/v4"
)

// Option is a function that configures the handler
type Option func(*echoHandlerConfig)

// WithErrorHandler sets a custom error handler. It is called when the
// endpoints cannot be built and its return value is returned to echo.
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(config *echoHandlerConfig) {
		if handler != nil {
			config.errorHandler = handler
		}
	}
}
