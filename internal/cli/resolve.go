package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	auth0endpoints "github.com/auth0/go-auth0-endpoints"
	"github.com/auth0/go-auth0-endpoints/config"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type resolveOptions struct {
	configFile          string
	clientID            string
	domain              string
	configurationDomain string
	output              string
}

func newResolveCommand(logger *logrus.Logger) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved tenant URLs",
		Long: `Print the client id, domain URL, configuration URL and authorize URL.

Values are read from --config, then AUTH0_CLIENT_ID, AUTH0_DOMAIN and
AUTH0_CONFIGURATION_DOMAIN, then flags; later sources win.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a JSON or YAML config file")
	cmd.Flags().StringVar(&opts.clientID, "client-id", "", "Client id of the application")
	cmd.Flags().StringVar(&opts.domain, "domain", "", "Tenant domain, e.g. tenant.us.auth0.com")
	cmd.Flags().StringVar(&opts.configurationDomain, "configuration-domain", "", "Domain serving the tenant configuration")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputText, "Output format (text, json, yaml)")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, logger *logrus.Logger) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("client-id") {
		cfg.ClientID = opts.clientID
	}
	if flags.Changed("domain") {
		cfg.Domain = opts.domain
	}
	if flags.Changed("configuration-domain") {
		cfg.ConfigurationDomain = opts.configurationDomain
	}

	a, err := cfg.New(auth0endpoints.WithLogger(auth0endpoints.NewLogrusLogger(logger)))
	if err != nil {
		return fmt.Errorf("failed to resolve endpoints: %w", err)
	}

	endpoints, err := a.Endpoints()
	if err != nil {
		return fmt.Errorf("failed to build endpoints: %w", err)
	}

	return writeEndpoints(cmd.OutOrStdout(), opts.output, endpoints)
}

func writeEndpoints(out io.Writer, format string, endpoints auth0endpoints.Endpoints) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(endpoints)
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(endpoints)
	case OutputText:
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "CLIENT ID\t%s\n", endpoints.ClientID)
		fmt.Fprintf(w, "DOMAIN URL\t%s\n", endpoints.DomainURL)
		fmt.Fprintf(w, "CONFIGURATION URL\t%s\n", endpoints.ConfigurationURL)
		fmt.Fprintf(w, "AUTHORIZE URL\t%s\n", endpoints.AuthorizeURL)
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}
