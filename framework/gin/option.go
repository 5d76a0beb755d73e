package auth0gin

import (
	"github.com/gin-gonic/gin"
)

// Option defines a functional option for configuring the handler
type Option func(*ginHandlerConfig)

// WithErrorHandler sets a custom error handler for the handler
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *ginHandlerConfig) {
		if handler != nil {
			config.errorHandler = handler
		}
	}
}
