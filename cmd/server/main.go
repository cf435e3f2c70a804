package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/handler"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/server"
	"github.com/MKhiriev/timi-sync/internal/service"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("timi-sync-server")
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}
	if cfg.UsesDefaultSecrets() {
		log.Warn().Msg("default token sign key or admin password in use, change them before exposing the server")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(startupCtx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	storages := store.NewStorages(db, log)
	m := metrics.New()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(storages, *cfg, buildInfo, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}
	if err = services.AuthService.EnsureAdmin(startupCtx); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(context.Background())
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
