package main

import (
	"fmt"

	"github.com/MKhiriev/personal-server/internal/adapter"
	"github.com/MKhiriev/personal-server/internal/config"
	httphandler "github.com/MKhiriev/personal-server/internal/handler/http"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/runner"
	"github.com/MKhiriev/personal-server/internal/server"
	"github.com/MKhiriev/personal-server/internal/service"
	"github.com/MKhiriev/personal-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("personal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages()

	fetcher := adapter.NewPageFetcher(adapter.FetcherConfig{
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   cfg.Scraper.Timeout,
	}, log)

	shell := runner.NewShellRunner(log)

	services := service.NewServices(storages, fetcher, shell, cfg, log)

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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

	httphandler.ServerVersion = buildVersion

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
