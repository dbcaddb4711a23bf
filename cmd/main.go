package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_fridge/internal/config"
	"smart_fridge/internal/gemini"
	"smart_fridge/internal/handlers"
	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/repository"
	"smart_fridge/internal/repository/db"
	"smart_fridge/internal/server"
	"smart_fridge/internal/service"

	"github.com/spf13/cobra"
)

const (
	appName         = "smart-fridge"
	shutdownTimeout = 10 * time.Second
)

// Version is set at build time with -ldflags.
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Smart fridge dashboard backend",
		Long: `Serves the smart fridge dashboard: inventory with expiry tracking,
image scans through the Gemini vision model, recipe suggestions and a
simulated sensor feed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default configs/config.yml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	m := metrics.New()
	model := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	})
	if cfg.Gemini.APIKey == "" {
		log.Warnw("gemini api key not set; scans will fail and recipes fall back")
	}

	services, err := service.NewService(repos, service.Deps{
		Vision:    model,
		Text:      model,
		Telemetry: service.NewSimulatorSource(uint64(time.Now().UnixNano())),
		Metrics:   m,
		Log:       log,
		Auth: service.AuthConfig{
			Password:   cfg.Auth.Password,
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		SeedDemo: cfg.Inventory.SeedDemo,
	})
	if err != nil {
		return fmt.Errorf("init services: %w", err)
	}

	// the session's series is generated once, up front
	if _, err := services.Series(context.Background()); err != nil {
		log.Warnw("telemetry warm-up failed", "err", err)
	}

	apiHandler := handlers.NewHandler(services, log, m).WithStreamInterval(cfg.Server.WSInterval)

	// start HTTP server
	srv := server.New(cfg.Server.WriteTimeout)
	errCh := runHTTPServer(srv, cfg.Port, apiHandler, log)

	log.Infow("smart fridge started",
		"port", cfg.Port,
		"auth", services.Enabled(),
		"model", cfg.Gemini.Model,
		"seed_demo", cfg.Inventory.SeedDemo,
	)

	// graceful shutdown
	return waitForShutdown(srv, errCh, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Errorw("error starting server", "err", err)
			errCh <- err
		}
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure.
func waitForShutdown(srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
