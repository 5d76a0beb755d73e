package auth0gin

import (
	"net/http"

	auth0endpoints "github.com/auth0/go-auth0-endpoints"
	"github.com/gin-gonic/gin"
)

// DefaultPath is where Register mounts the endpoints document when no
// path is given.
const DefaultPath = "/.well-known/auth0-endpoints"

// ginHandlerConfig holds all configuration for the handler
type ginHandlerConfig struct {
	errorHandler func(*gin.Context, error)
}

// Handler returns a gin.HandlerFunc that serves the Endpoints of a as JSON.
func Handler(a *auth0endpoints.Auth0, opts ...Option) gin.HandlerFunc {
	config := &ginHandlerConfig{
		errorHandler: defaultGinErrorHandler,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		endpoints, err := a.Endpoints()
		if err != nil {
			config.errorHandler(c, err)
			return
		}
		c.JSON(http.StatusOK, endpoints)
	}
}

// Register mounts Handler on r for GET requests. An empty path means
// DefaultPath.
func Register(r gin.IRoutes, path string, a *auth0endpoints.Auth0, opts ...Option) gin.IRoutes {
	if path == "" {
		path = DefaultPath
	}
	return r.GET(path, Handler(a, opts...))
}

func defaultGinErrorHandler(c *gin.Context, err error) {
	status, body := auth0endpoints.ErrorResponseFor(err)
	c.AbortWithStatusJSON(status, body)
}
