package auth0endpoints

import (
	"net/url"
	"strings"
)

const (
	// DefaultCDNURL is the shared configuration CDN of the public cloud.
	DefaultCDNURL = "https://cdn.auth0.com"

	// Auth0DomainSuffix marks a hosted tenant domain.
	Auth0DomainSuffix = ".auth0.com"

	httpPrefix    = "http"
	defaultScheme = "https://"
	cdnPrefix     = "https://cdn."
)

// Source describes how a configuration URL was chosen.
type Source string

const (
	// SourceNone means no domain and no override were supplied.
	SourceNone Source = "none"
	// SourceOverride means an explicit configuration domain was supplied.
	SourceOverride Source = "override"
	// SourceRegionalCDN means the tenant lives in a regional deployment
	// such as tenant.us.auth0.com.
	SourceRegionalCDN Source = "regional_cdn"
	// SourceDefaultCDN means the tenant is served by DefaultCDNURL.
	SourceDefaultCDN Source = "default_cdn"
	// SourceDomain means the domain is self-hosted and serves its own
	// configuration.
	SourceDomain Source = "domain"
)

// NormalizeURL turns a bare host into an absolute https URL.
//
// Any value starting with "http" is returned unchanged, everything else gets
// the https:// scheme prepended. The check is textual only: malformed hosts
// pass through and only fail once a URL is built from them. The empty
// string is returned as is.
func NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, httpPrefix) {
		return raw
	}
	return defaultScheme + raw
}

// ResolveConfigurationURL returns the URL the tenant configuration is served
// from. A non-empty configurationDomain always wins. Otherwise hosted
// tenants map to their CDN and custom domains serve their own configuration.
func ResolveConfigurationURL(configurationDomain, domainURL string) string {
	configurationURL, _ := resolveConfiguration(configurationDomain, domainURL)
	return configurationURL
}

func resolveConfiguration(configurationDomain, domainURL string) (string, Source) {
	if configurationDomain != "" {
		return NormalizeURL(configurationDomain), SourceOverride
	}
	if domainURL == "" {
		return "", SourceNone
	}

	host := hostOf(domainURL)
	if !strings.HasSuffix(host, Auth0DomainSuffix) {
		return domainURL, SourceDomain
	}

	labels := strings.Split(host, ".")
	if len(labels) > 3 {
		return cdnPrefix + labels[len(labels)-3] + Auth0DomainSuffix, SourceRegionalCDN
	}
	return DefaultCDNURL, SourceDefaultCDN
}

// hostOf returns the lower-cased host of rawURL without its port, or an
// empty string when rawURL cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
