package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/crypto"
	"github.com/MKhiriev/dia-companion/internal/handler"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/server"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/workers"
	"github.com/MKhiriev/dia-companion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("dia-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = appVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashing)
	if err != nil {
		return fmt.Errorf("error creating password hasher: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, hasher, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	// the assistant stays a nil interface without a key
	var ai adapter.Assistant
	if assistant, aiErr := adapter.NewGenAIAssistant(ctx, cfg.AI, log); aiErr == nil {
		ai = assistant
	} else if errors.Is(aiErr, adapter.ErrMissingAPIKey) {
		log.Warn().Msg("AI API key is not set, assistant endpoints are disabled")
	} else {
		return fmt.Errorf("error creating assistant: %w", aiErr)
	}

	services, err := service.NewServices(storages, ai, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	background := workers.NewWorkers(
		workers.NewStoreWatcher(storages.Documents, handlers, cfg.Workers.CheckInterval, log),
	)

	var wg sync.WaitGroup
	wg.Go(func() { background.Run(ctx) })
	defer wg.Wait()

	// stop the workers when the server fails to start
	defer cancel()

	return srv.RunServer(ctx)
}

// appVersion falls back to the module version recorded by the Go toolchain.
func appVersion() string {
	if buildVersion != "" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}
