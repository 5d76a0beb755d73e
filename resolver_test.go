package auth0endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty stays empty", raw: "", want: ""},
		{name: "bare host gets https", raw: "tenant.auth0.com", want: "https://tenant.auth0.com"},
		{name: "https is kept", raw: "https://tenant.auth0.com", want: "https://tenant.auth0.com"},
		{name: "http is kept", raw: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "prefix check is textual", raw: "httpbin.org", want: "httpbin.org"},
		{name: "prefix check is case sensitive", raw: "HTTPS://tenant.auth0.com", want: "https://HTTPS://tenant.auth0.com"},
		{name: "malformed host passes through", raw: "not a host", want: "https://not a host"},
		{name: "path is kept", raw: "tenant.auth0.com/base", want: "https://tenant.auth0.com/base"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.raw))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	for _, raw := range []string{"tenant.auth0.com", "https://a.example.com", "http://b.example.com", "x"} {
		once := NormalizeURL(raw)
		assert.Equal(t, once, NormalizeURL(once), raw)
	}
}

func TestResolveConfigurationURL(t *testing.T) {
	tests := []struct {
		name                string
		configurationDomain string
		domainURL           string
		want                string
		wantSource          Source
	}{
		{
			name:       "nothing supplied",
			want:       "",
			wantSource: SourceNone,
		},
		{
			name:       "three label tenant uses the default cdn",
			domainURL:  "https://tenant.auth0.com",
			want:       "https://cdn.auth0.com",
			wantSource: SourceDefaultCDN,
		},
		{
			name:       "regional tenant uses the regional cdn",
			domainURL:  "https://tenant.us.auth0.com",
			want:       "https://cdn.us.auth0.com",
			wantSource: SourceRegionalCDN,
		},
		{
			name:       "eu tenant",
			domainURL:  "https://my-tenant.eu.auth0.com",
			want:       "https://cdn.eu.auth0.com",
			wantSource: SourceRegionalCDN,
		},
		{
			name:       "third label from the end is picked on deep hosts",
			domainURL:  "https://a.b.c.auth0.com",
			want:       "https://cdn.c.auth0.com",
			wantSource: SourceRegionalCDN,
		},
		{
			name:       "bare auth0.com has too few labels",
			domainURL:  "https://www.auth0.com",
			want:       "https://cdn.auth0.com",
			wantSource: SourceDefaultCDN,
		},
		{
			name:       "port and path are ignored for detection",
			domainURL:  "https://tenant.us.auth0.com:8443/base",
			want:       "https://cdn.us.auth0.com",
			wantSource: SourceRegionalCDN,
		},
		{
			name:       "host case is ignored",
			domainURL:  "https://Tenant.AUTH0.com",
			want:       "https://cdn.auth0.com",
			wantSource: SourceDefaultCDN,
		},
		{
			name:       "custom domain serves its own configuration",
			domainURL:  "https://custom.example.com",
			want:       "https://custom.example.com",
			wantSource: SourceDomain,
		},
		{
			name:       "suffix must match a whole label",
			domainURL:  "https://tenant.notauth0.com",
			want:       "https://tenant.notauth0.com",
			wantSource: SourceDomain,
		},
		{
			name:       "unparseable domain is passed through",
			domainURL:  "https://bad host.auth0.com",
			want:       "https://bad host.auth0.com",
			wantSource: SourceDomain,
		},
		{
			name:                "override wins over a hosted tenant",
			configurationDomain: "https://override.example.com",
			domainURL:           "https://tenant.auth0.com",
			want:                "https://override.example.com",
			wantSource:          SourceOverride,
		},
		{
			name:                "override is normalized",
			configurationDomain: "config.example.com",
			domainURL:           "https://custom.example.com",
			want:                "https://config.example.com",
			wantSource:          SourceOverride,
		},
		{
			name:                "override works without a domain",
			configurationDomain: "config.example.com",
			want:                "https://config.example.com",
			wantSource:          SourceOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := resolveConfiguration(tt.configurationDomain, tt.domainURL)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.want, ResolveConfigurationURL(tt.configurationDomain, tt.domainURL))
		})
	}
}
