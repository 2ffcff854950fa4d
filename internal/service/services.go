// Package service implements the record families behind the HTTP routes:
// normalization of loose client payloads into fixed CSV rows, artifact
// rendering, and delegation to the storage and outbound layers.
package service

import (
	"github.com/MKhiriev/personal-server/internal/adapter"
	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/runner"
	"github.com/MKhiriev/personal-server/internal/store"
)

// Services aggregates one service per record family.
type Services struct {
	Notes        NotesService
	Transactions TransactionsService
	Weights      WeightsService
	Scrapes      ScrapesService
	Commands     CommandsService
}

// NewServices wires every service to its storage, the page fetcher, and the
// shell runner.
func NewServices(storages *store.Storages, fetcher adapter.PageFetcher, run runner.Runner, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Notes:        NewNotesService(storages.Index, storages.Artifacts, cfg.Storage, logger),
		Transactions: NewTransactionsService(storages.Index, cfg.Storage, logger),
		Weights:      NewWeightsService(storages.Index, cfg.Storage, logger),
		Scrapes:      NewScrapesService(storages.Index, storages.Artifacts, fetcher, cfg.Storage, logger),
		Commands:     NewCommandsService(run, cfg.Runner, logger),
	}
}
