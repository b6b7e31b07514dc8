package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/hexland/internal/config"
	"github.com/mitchelldurbincs/hexland/internal/grpc/coordserver"
	"github.com/mitchelldurbincs/hexland/internal/logging"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC coordinate service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if host == "" {
				host = cfg.Server.Host
			}
			if port == 0 {
				port = cfg.Server.Port
			}
			level := opts.logLevel
			if level == "" {
				level = cfg.Server.LogLevel
			}
			logger := logging.Setup(level, cfg.Server.LogFormat, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf("%s:%d", host, port)
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}
			snapshot := *cfg
			watchLogLevel()
			return serve(ctx, snapshot, lis, logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "The server host (empty to use config default)")
	cmd.Flags().IntVar(&port, "port", 0, "The server port (0 to use config default)")

	return cmd
}

// serve runs the service on lis until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config, lis net.Listener, logger zerolog.Logger) error {
	sys, err := cfg.Topology()
	if err != nil {
		lis.Close()
		return err
	}

	grpcServer, healthServer := coordserver.NewGRPCServer(
		coordserver.NewServer(sys, cfg.Server.MaxAdjacentBatch),
		logger,
	)

	logger.Info().
		Str("address", lis.Addr().String()).
		Str("topology", cfg.Grid.Topology).
		Int("max_adjacent_batch", cfg.Server.MaxAdjacentBatch).
		Msg("Coordinate server listening")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("Shutting down")

		coordserver.MarkNotServing(healthServer)

		// Give ongoing requests time to complete
		time.Sleep(time.Duration(cfg.Server.GracefulShutdownDelay) * time.Second)

		grpcServer.GracefulStop()
		logger.Info().Msg("Server shutdown complete")
		return nil
	})

	return g.Wait()
}

// watchLogLevel applies log level edits to the config file while serving.
func watchLogLevel() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	config.WatchConfig(func(c *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(c.Server.LogLevel))
		log.Info().Str("log_level", c.Server.LogLevel).Msg("Config reloaded")
	}, func(err error) {
		log.Warn().Err(err).Msg("Ignoring invalid config change")
	})
}
