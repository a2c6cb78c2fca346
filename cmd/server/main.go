package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/adapter"
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/handler"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/server"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("bpl-web-backend", logger.Options{}).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, logger.Options{
		Level:  cfg.App.LogLevel,
		Pretty: cfg.App.LogPretty,
	})
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("api_prefix", cfg.Server.APIPrefix).
		Bool("local_jwt", cfg.Auth.JWTSecret != "").
		Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	storages := store.NewStorages(db, log)

	var identityProvider adapter.IdentityProvider
	if cfg.Auth.SupabaseURL != "" {
		identityProvider, err = adapter.NewGoTrueIdentityProvider(cfg.Auth, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating identity provider")
		}
	}

	validator, err := validators.NewSchemaValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling request schemas")
	}

	services := service.NewServices(storages, identityProvider, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, validator, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
