// Package cli implements the swaggerdoc command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vitalvas/swaggerdoc/internal/config"
)

// Execute runs the swaggerdoc CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swaggerdoc",
		Short: "Serve Swagger 1.2 discovery documents for a demo pet store API",
		Long: "swaggerdoc mounts a pet store API, documents its routes from their validation rules " +
			"and serves the resulting Swagger 1.2 resource listing and API declarations.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file path (YAML)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")

	cmd.AddCommand(newServeCmd(), newDumpCmd(), newVersionCmd())

	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		c.SetFlagErrorFunc(flagError)
	}

	return cmd
}

func flagError(c *cobra.Command, err error) error {
	return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
}

// loadConfig reads the --config file and applies the global flag
// overrides.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := overrideString(flags, "log-level", &cfg.Log.Level); err != nil {
		return nil, err
	}
	if err := overrideString(flags, "log-format", &cfg.Log.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overrideString(flags *pflag.FlagSet, name string, dst *string) error {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// newApp builds the server for cmd, logging to logOut.
func newApp(cmd *cobra.Command, logOut io.Writer) (*app, *config.File, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	a, err := buildApp(cfg, logOut)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}
