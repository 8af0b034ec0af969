package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// options are the flags shared by every subcommand.
type options struct {
	profile   string
	configDir string
}

// loadConfig loads and validates configuration (fail fast).
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.configDir, o.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// defaultProfile is APP_ENVIRONMENT, or "local" when unset.
func defaultProfile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand serves the API.
func newRootCmd() *cobra.Command {
	opts := &options{}

	serve := newServeCmd(opts)

	root := &cobra.Command{
		Use:           "quotes-service",
		Short:         "HTTP API for storing and serving quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", defaultProfile(),
		"configuration profile to load on top of base.yaml")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir,
		"directory holding base.yaml and profile files")

	root.AddCommand(serve, newVersionCmd(), newConfigCmd(opts))

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := handlers.NewBuildInfo(Version, Commit, BuildTime)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "quotes-service %s (commit %s, built %s, %s)\n",
				info.Version, info.Commit, info.BuildTime, info.GoVersion)

			return err
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			return enc.Close()
		},
	}
}
