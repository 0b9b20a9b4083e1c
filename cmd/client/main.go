package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dia-companion/internal/client"
	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// a bad configuration is reported by the command itself, after flags
	cfg, err := config.GetClientConfig()
	if cfg == nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("dia-client", cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var app client.Client = client.NewApp(cfg, buildInfo, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
