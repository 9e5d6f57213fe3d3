package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/cli/config"
	httpctrl "github.com/secmon-lab/curbside/pkg/controller/http"
	"github.com/secmon-lab/curbside/pkg/usecase"
	"github.com/secmon-lab/curbside/pkg/utils/async"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
	"github.com/secmon-lab/curbside/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var timezone string
	var httpTimeout time.Duration
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var slackCfg config.Slack
	var amqpCfg config.AMQP
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CURBSIDE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone for week, month and legacy day boundaries (e.g. Asia/Tokyo)",
			Value:       "Local",
			Sources:     cli.EnvVars("CURBSIDE_TIMEZONE"),
			Destination: &timezone,
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Maximum time a handler may spend on one request",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("CURBSIDE_HTTP_TIMEOUT"),
			Destination: &httpTimeout,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, amqpCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Serve configuration",
				"addr", addr,
				"timezone", timezone,
				"http_timeout", httpTimeout,
				"repository", repoCfg,
				"slack", slackCfg,
				"amqp", amqpCfg,
				"sentry", sentryCfg,
			)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return goerr.Wrap(err, "invalid timezone", goerr.V("timezone", timezone))
			}
			if httpTimeout <= 0 {
				return goerr.Wrap(config.ErrInvalidConfig, "http-timeout must be positive", goerr.V("http_timeout", httpTimeout))
			}

			catalog, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, "repository", repo)

			ucOpts := []usecase.Option{
				usecase.WithLocation(loc),
				usecase.WithCatalog(catalog),
			}

			slackNotifier, err := slackCfg.Configure(catalog)
			if err != nil {
				return err
			}
			if slackNotifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(slackNotifier))
				logger.Info("Slack notification enabled")
			}

			publisher, err := amqpCfg.Configure()
			if err != nil {
				return err
			}
			if publisher != nil {
				defer safe.Close(ctx, "amqp publisher", publisher)
				ucOpts = append(ucOpts, usecase.WithNotifier(publisher))
				logger.Info("AMQP event publishing enabled")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithTimeout(httpTimeout)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				// Deliver notifications still in flight before the publisher closes
				if err := async.Wait(shutdownCtx); err != nil {
					logger.Warn("Pending notifications dropped", "error", err)
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
