package main

import (
	"os"
	"os/signal"
	"syscall"

	"jobly/internal/app"
	"jobly/internal/config"
	"jobly/pkg/lib/logger/zaplogger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobly",
		Short:         "Jobly jobs API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		configPath    string
		dbPasswordEnv string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			log := zaplogger.SetupLogger(os.Getenv("JOBLY_ENV"))
			defer func() { _ = log.Sync() }()

			cfg, err := config.LoadServiceConfig(log, configPath, dbPasswordEnv)
			if err != nil {
				log.Error("Failed to load service config", zaplogger.Err(err))
				return err
			}
			if cfg.Env != "" {
				log = zaplogger.SetupLogger(cfg.Env)
			}
			log.Info("Jobly service started", zap.String("env", cfg.Env))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.Run(ctx, log, cfg); err != nil {
				log.Error("Service encountered an error", zaplogger.Err(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "path to the YAML config file")
	cmd.Flags().StringVar(&dbPasswordEnv, "db-password-env", "DB_PASSWORD", "environment variable holding the database password")

	return cmd
}
