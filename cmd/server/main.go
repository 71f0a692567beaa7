package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/handler"
	transport "github.com/MKhiriev/go-crud-api/internal/handler/http"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/server"
	"github.com/MKhiriev/go-crud-api/internal/service"
	"github.com/MKhiriev/go-crud-api/internal/store"
	"github.com/MKhiriev/go-crud-api/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("go-crud-api")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.New("go-crud-api", cfg.Log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}
	defer log.Close()

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("database_url", cfg.Storage.DB.URL).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, store.PasswordHasherFunc(utils.HashPassword), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, log)

	dispatcher, err := handler.NewHandler(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dispatcher")
	}

	router := transport.NewHandler(dispatcher, cfg.Server, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
