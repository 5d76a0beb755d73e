package auth0echo

import (
	"net/http"

	auth0endpoints "github.com/auth0/go-auth0-endpoints"
	"github.com/labstack/echo/v4"
)

// DefaultPath is where Register mounts the endpoints document when no
// path is given.
const DefaultPath = "/.well-known/auth0-endpoints"

// echoHandlerConfig holds all configuration for the handler
type echoHandlerConfig struct {
	errorHandler func(echo.Context, error) error
}

// Handler returns an echo.HandlerFunc that serves the Endpoints of a as
// JSON.
func Handler(a *auth0endpoints.Auth0, opts ...Option) echo.HandlerFunc {
	config := &echoHandlerConfig{
		errorHandler: defaultEchoErrorHandler,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c echo.Context) error {
		endpoints, err := a.Endpoints()
		if err != nil {
			return config.errorHandler(c, err)
		}
		return c.JSON(http.StatusOK, endpoints)
	}
}

// Register mounts Handler on e for GET requests. An empty path means
// DefaultPath.
func Register(e *echo.Echo, path string, a *auth0endpoints.Auth0, opts ...Option) *echo.Route {
	if path == "" {
		path = DefaultPath
	}
	return e.GET(path, Handler(a, opts...))
}

func defaultEchoErrorHandler(c echo.Context, err error) error {
	status, body := auth0endpoints.ErrorResponseFor(err)
	return c.JSON(status, body)
}
