package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/hexland/internal/config"
	"github.com/mitchelldurbincs/hexland/internal/coord"
	"github.com/mitchelldurbincs/hexland/internal/logging"
)

type rootOptions struct {
	configPath string
	topology   string
	addr       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hexland",
		Short: "Inspect and serve tile co-ordinates",
		Long: `hexland works with integer tile co-ordinates on a square or hex grid:
their spiral-order index, their neighbours and the distance between them.

Examples:
  hexland index "(3,4)" "(-1,0)"
  hexland coord 0 1 2
  hexland adjacent --topology hex6 0,0
  hexland distance "(0,0)" "(3,4)"
  hexland serve --port 50061`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.topology, "topology", "", "Grid topology ("+strings.Join(coord.Names(), ", ")+")")
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", "", "Address of a running hexland server")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newIndexCmd(opts))
	cmd.AddCommand(newCoordCmd(opts))
	cmd.AddCommand(newAdjacentCmd(opts))
	cmd.AddCommand(newDistanceCmd(opts))
	cmd.AddCommand(newSpiralCmd())
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

// load reads the config, merges the APP_ENV overlay and applies flag
// overrides on top of both.
func (o *rootOptions) load(cmd *cobra.Command) error {
	if err := config.Init(o.configPath); err != nil {
		return err
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		return err
	}
	if o.topology != "" {
		config.Set("grid.topology", o.topology)
	}
	if err := config.Validate(config.Get()); err != nil {
		return err
	}

	level := o.logLevel
	if level == "" {
		level = config.Get().CLI.LogLevel
	}
	logging.Setup(level, "console", cmd.ErrOrStderr())
	return nil
}

func (o *rootOptions) system() (coord.CoordSystem, error) {
	sys, err := config.Get().Topology()
	if err != nil {
		return nil, fmt.Errorf("selecting topology: %w", err)
	}
	return sys, nil
}
