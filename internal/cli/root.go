// Package cli implements the auth0-endpoints command line.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command
func NewRootCommand() *cobra.Command {
	var logLevel string
	logger := logrus.New()

	rootCmd := &cobra.Command{
		Use:           "auth0-endpoints",
		Short:         "Resolve the URLs of an Auth0 tenant",
		Long:          `Resolve the domain, configuration and authorize URLs of an Auth0 tenant without contacting it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logger, cmd.ErrOrStderr(), logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newResolveCommand(logger))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func setupLogging(logger *logrus.Logger, out io.Writer, level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
