package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
	"portfolio/internal/server"
	"portfolio/internal/telemetry"
	"portfolio/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Portfolio contact form API",
	Long: `Portfolio contact form API accepts visitor messages over HTTP and relays
them to the site owner's mailbox through SMTP.

Without EMAIL_PASS the server runs in test mode: messages are accepted
and acknowledged but never sent.

Example:
  portfolio-api               # Listen on PORT (default 5000)
  portfolio-api --port 8080   # Override the listen port`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

var verifySMTPCmd = &cobra.Command{
	Use:   "verify-smtp",
	Short: "Check the SMTP configuration without starting the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Close()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Connecting to %s:%d...", cfg.Mail.Host, cfg.Mail.Port)
		s.Start()
		transport := mail.Setup(cmd.Context(), cfg.Mail, logger)
		s.Stop()

		if !transport.Configured() {
			return fmt.Errorf("relay mode: %s", transport.Mode())
		}
		fmt.Printf("Relay mode: %s (%s)\n", transport.Mode(), transport.Account())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("portfolio-api %s\n", version.Info())
	},
}

// bootstrap loads configuration and installs the process logger
func bootstrap(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	logger, err := logging.Init(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Requests:   cfg.LogRequests,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Starting portfolio-api %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	transport := mail.Setup(ctx, cfg.Mail, logger)

	srv, err := server.NewServer(cfg, transport, logger)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		return err
	}

	if err := srv.Start(ctx); err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			logger.Error("Port %d is already in use", cfg.Port)
		} else {
			logger.Error("Server error: %v", err)
		}
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func init() {
	rootCmd.Flags().Int("port", 0, "Port to listen on (overrides PORT)")

	rootCmd.AddCommand(verifySMTPCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
