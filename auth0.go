package auth0endpoints

import (
	"fmt"
	"net/url"
	"strings"
)

// Auth0 holds the client id of an application together with the tenant
// URLs derived from it. It is immutable once New returns and safe for
// concurrent use.
type Auth0 struct {
	clientID         string
	domainURL        string
	configurationURL string
	source           Source

	configurationDomain string
	logger              Logger
	metrics             Metrics
	tracer              Tracer
}

// Endpoints is the set of values handed to an authentication API client.
type Endpoints struct {
	ClientID         string `json:"client_id" yaml:"client_id"`
	DomainURL        string `json:"domain_url" yaml:"domain_url"`
	ConfigurationURL string `json:"configuration_url" yaml:"configuration_url"`
	AuthorizeURL     string `json:"authorize_url" yaml:"authorize_url"`
}

// New resolves the tenant URLs for clientID and domain.
//
// domain may be a bare host ("tenant.auth0.com") or an absolute URL. The
// input strings are never validated, so New only fails when an option is
// invalid. An empty domain yields an empty DomainURL and, unless
// WithConfigurationDomain is used, an empty ConfigurationURL.
//
// Example:
//
//	a, err := auth0endpoints.New("my-client-id", "tenant.us.auth0.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a.ConfigurationURL() // https://cdn.us.auth0.com
func New(clientID, domain string, opts ...Option) (*Auth0, error) {
	a := &Auth0{
		clientID: clientID,
		logger:   nopLogger{},
		metrics:  &NoopMetrics{},
		tracer:   &NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	span := a.tracer.StartSpan(SpanResolveConfiguration)
	defer span.Finish()

	a.domainURL = NormalizeURL(domain)
	a.configurationURL, a.source = resolveConfiguration(a.configurationDomain, a.domainURL)

	span.SetTag("domain_url", a.domainURL)
	span.SetTag("configuration_url", a.configurationURL)
	span.SetTag("source", a.source)
	a.metrics.IncCounter(MetricResolutions, map[string]string{"source": string(a.source)})
	a.logger.Debugf("resolved configuration url %q for domain %q (source: %s)", a.configurationURL, a.domainURL, a.source)

	return a, nil
}

// ClientID returns the client id exactly as it was given to New.
func (a *Auth0) ClientID() string {
	return a.clientID
}

// DomainURL returns the normalized tenant domain URL.
func (a *Auth0) DomainURL() string {
	return a.domainURL
}

// ConfigurationURL returns the URL the tenant configuration is served from.
func (a *Auth0) ConfigurationURL() string {
	return a.configurationURL
}

// ConfigurationSource reports which rule produced ConfigurationURL.
func (a *Auth0) ConfigurationSource() Source {
	return a.source
}

// AuthorizeURL returns the authorization endpoint of the tenant. The error
// matches ErrInvalidConfiguration when the domain is missing or is not a
// valid absolute URL.
//
// The result only depends on DomainURL. A failure is also reported to the
// configured Logger (warn) and Metrics (MetricURLBuildErrors); the same holds
// for the other URL builders. Auth0 itself is never modified.
func (a *Auth0) AuthorizeURL() (string, error) {
	u, err := a.buildURL("authorize", "authorize")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// OpenIDConfigurationURL returns the OIDC discovery document URL.
func (a *Auth0) OpenIDConfigurationURL() (string, error) {
	u, err := a.buildURL("openid_configuration", ".well-known", "openid-configuration")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// JWKSURL returns the URL of the tenant's JSON Web Key Set.
func (a *Auth0) JWKSURL() (string, error) {
	u, err := a.buildURL("jwks", ".well-known", "jwks.json")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// LogoutURL returns the tenant logout endpoint for this client. returnTo is
// left out of the query when empty.
func (a *Auth0) LogoutURL(returnTo string) (string, error) {
	u, err := a.buildURL("logout", "v2", "logout")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", a.clientID)
	if returnTo != "" {
		q.Set("returnTo", returnTo)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// IssuerURL returns the domain URL with a trailing slash, the form found in
// the iss claim of tokens issued by the tenant.
func (a *Auth0) IssuerURL() (string, error) {
	u, err := a.parseDomain("issuer")
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u.String(), nil
}

// Endpoints returns the values an authentication API client needs.
func (a *Auth0) Endpoints() (Endpoints, error) {
	authorizeURL, err := a.AuthorizeURL()
	if err != nil {
		return Endpoints{}, err
	}
	return Endpoints{
		ClientID:         a.clientID,
		DomainURL:        a.domainURL,
		ConfigurationURL: a.configurationURL,
		AuthorizeURL:     authorizeURL,
	}, nil
}

// buildURL appends escaped path segments to the domain URL, keeping any
// query of the domain.
func (a *Auth0) buildURL(endpoint string, segments ...string) (*url.URL, error) {
	u, err := a.parseDomain(endpoint)
	if err != nil {
		return nil, err
	}

	escaped := strings.TrimSuffix(u.EscapedPath(), "/")
	for _, segment := range segments {
		escaped += "/" + url.PathEscape(segment)
	}
	p, err := url.PathUnescape(escaped)
	if err != nil {
		return nil, a.fail(endpoint, newConfigurationError(ErrorCodeDomainInvalid, "could not build path for "+endpoint, err))
	}
	u.Path = p
	u.RawPath = escaped

	return u, nil
}

func (a *Auth0) parseDomain(endpoint string) (*url.URL, error) {
	if a.domainURL == "" {
		return nil, a.fail(endpoint, newConfigurationError(ErrorCodeDomainMissing, "domain is not set", nil))
	}

	u, err := url.Parse(a.domainURL)
	if err != nil {
		return nil, a.fail(endpoint, newConfigurationError(ErrorCodeDomainInvalid, fmt.Sprintf("could not parse domain url %q", a.domainURL), err))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, a.fail(endpoint, newConfigurationError(ErrorCodeDomainInvalid, fmt.Sprintf("domain url %q is not an absolute url", a.domainURL), nil))
	}

	return u, nil
}

func (a *Auth0) fail(endpoint string, err *ConfigurationError) error {
	a.metrics.IncCounter(MetricURLBuildErrors, map[string]string{"endpoint": endpoint, "code": err.Code})
	a.logger.Warnf("could not build %s url: %v", endpoint, err)
	return err
}
