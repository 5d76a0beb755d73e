// Package config loads the values New needs from a JSON or YAML file and the
// environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	auth0endpoints "github.com/auth0/go-auth0-endpoints"
)

// EnvPrefix is the prefix of the environment variables read by Load, e.g.
// AUTH0_DOMAIN.
const EnvPrefix = "AUTH0_"

// Configuration keys, shared by files and the environment.
const (
	KeyClientID            = "client_id"
	KeyDomain              = "domain"
	KeyConfigurationDomain = "configuration_domain"
)

// Config is the raw, unresolved client configuration.
type Config struct {
	ClientID            string `json:"client_id" yaml:"client_id"`
	Domain              string `json:"domain" yaml:"domain"`
	ConfigurationDomain string `json:"configuration_domain,omitempty" yaml:"configuration_domain,omitempty"`
}

// Load reads path, when not empty, and then the non-empty AUTH0_*
// environment variables, which take precedence. The parser is picked from the file
// extension (.json, .yaml, .yml).
//
// Values are not validated: an empty domain is passed on as is and yields
// empty URLs once resolved.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load environment: %w", err)
	}

	return &Config{
		ClientID:            k.String(KeyClientID),
		Domain:              k.String(KeyDomain),
		ConfigurationDomain: k.String(KeyConfigurationDomain),
	}, nil
}

// New resolves c into an Auth0 instance.
func (c *Config) New(opts ...auth0endpoints.Option) (*auth0endpoints.Auth0, error) {
	if c.ConfigurationDomain != "" {
		opts = append([]auth0endpoints.Option{auth0endpoints.WithConfigurationDomain(c.ConfigurationDomain)}, opts...)
	}
	return auth0endpoints.New(c.ClientID, c.Domain, opts...)
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (use .json, .yaml or .yml)", ext)
	}
}

// envValue maps AUTH0_CLIENT_ID to client_id. Variables that are set but
// empty are skipped so they do not blank out values from the file.
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}
