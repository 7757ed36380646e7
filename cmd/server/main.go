package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	httphandler "github.com/MKhiriev/go-auth-gate/internal/handler/http"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/server"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-auth-gate")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage, cfg.Auth.TokenDuration, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)

	// first boot only: the plaintext key is surfaced once and never stored
	superuserKey, err := services.UserService.EnsureSuperuser(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bootstrap superuser")
	}
	if superuserKey != "" {
		log.Info().
			Str("api_key", superuserKey).
			Msg("bootstrap superuser created; save this API key now, it cannot be recovered")
	}

	handlers := httphandler.NewHandler(services, cfg.API, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
