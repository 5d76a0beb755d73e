/*
Package auth0endpoints resolves the URLs an Auth0 client needs from a client
id and a tenant domain.

Nothing here performs network I/O. New derives three values once:

  - the domain URL, the tenant domain with an https scheme added when the
    input has no http(s) scheme
  - the configuration URL, where the tenant configuration is served from
  - the client id, kept verbatim

and the remaining endpoint URLs (authorize, logout, discovery, JWKS) are
built from the domain URL on each call.

# Quick Start

	a, err := auth0endpoints.New("my-client-id", "tenant.auth0.com")
	if err != nil {
	    log.Fatal(err)
	}

	a.DomainURL()        // https://tenant.auth0.com
	a.ConfigurationURL() // https://cdn.auth0.com

	authorizeURL, err := a.AuthorizeURL() // https://tenant.auth0.com/authorize

# Configuration URL Resolution

The configuration URL is chosen by the first matching rule:

 1. WithConfigurationDomain was given: its normalized value.
 2. No domain: empty.
 3. The host ends with ".auth0.com" and has more than three labels
    (tenant.us.auth0.com): https://cdn.{third label from the end}.auth0.com
 4. The host ends with ".auth0.com" otherwise: https://cdn.auth0.com
 5. Any other host is self-hosted and serves its own configuration: the
    domain URL.

ConfigurationSource reports which rule applied.

# Errors

Normalization is textual, so a malformed domain is accepted by New and only
surfaces when a URL is built from it:

	_, err := a.AuthorizeURL()
	if errors.Is(err, auth0endpoints.ErrInvalidConfiguration) {
	    var configErr *auth0endpoints.ConfigurationError
	    errors.As(err, &configErr)
	    log.Printf("bad domain (%s): %v", configErr.Code, err)
	}

# Observability

	a, err := auth0endpoints.New(
	    clientID,
	    domain,
	    auth0endpoints.WithLogger(auth0endpoints.NewLogrusLogger(logrus.New())),
	    auth0endpoints.WithMetrics(auth0endpoints.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
	    auth0endpoints.WithTracer(auth0endpoints.NewOpenTelemetryTracer(otel.Tracer("auth0"))),
	)

# Serving Endpoints

NewHandler exposes the resolved values as JSON for browser clients. See the
framework/echo and framework/gin packages for router integrations and the
config package for loading values from files and the environment.
*/
package auth0endpoints
