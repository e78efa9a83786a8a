package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/handler"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/server"
	"github.com/MKhiriev/starwars-api/internal/service"
	"github.com/MKhiriev/starwars-api/internal/store"
	"github.com/MKhiriev/starwars-api/internal/telemetry"
	"github.com/MKhiriev/starwars-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("starwars-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		server.WithCloser("storage", func(context.Context) error { return storages.Close() }),
		server.WithCloser("tracing", shutdownTracing),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
