package main

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/imui"
)

// options shared by all commands.
type rootOptions struct {
	verbose    bool
	configPath string
	topology   string
	logger     *charmlog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "imuidump",
		Short:        "imuidump runs scripted imui frames and prints the results",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			opts.logger = newLogger(os.Stderr, level)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVarP(&opts.topology, "topology", "t", "", "override topology (vertex_list, vertex_strip, indexed_list, indexed_strip)")

	root.AddCommand(newDrawCmd(opts))
	root.AddCommand(newTreeCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// newLogger creates a charm logger with timestamp formatting.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// config resolves the effective configuration from the flags.
func (o *rootOptions) config() (imui.Config, error) {
	cfg := imui.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = imui.LoadConfig(o.configPath); err != nil {
			return imui.Config{}, err
		}
	}
	if o.topology != "" {
		if err := cfg.Topology.UnmarshalText([]byte(o.topology)); err != nil {
			return imui.Config{}, err
		}
	}
	cfg.Verbose = cfg.Verbose || o.verbose
	// the charm logger implements slog.Handler
	cfg.Logger = slog.New(o.logger)
	return cfg, nil
}

// newContext creates a context from the flags.
func (o *rootOptions) newContext() (*imui.Context, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return imui.New(imui.WithConfig(cfg))
}
