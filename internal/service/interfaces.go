package service

import (
	"context"

	"github.com/MKhiriev/personal-server/models"
)

// NotesService logs Markdown notes and reads them back.
type NotesService interface {
	// CreateNote validates the request, writes the Markdown file with YAML
	// frontmatter plus a rendered HTML companion, and appends the index
	// row. Returns the new record.
	CreateNote(ctx context.Context, req models.NoteRequest) (models.NoteRecord, error)

	// ListNotes returns every logged note in append order.
	ListNotes(ctx context.Context) ([]models.NoteRecord, error)

	// GetNote returns one note with its body recovered from the Markdown
	// file.
	GetNote(ctx context.Context, id string) (models.NoteDocument, error)
}

// TransactionsService logs financial transactions.
type TransactionsService interface {
	// LogTransaction normalizes alias keys, preserves the raw payload, and
	// appends the index row.
	LogTransaction(ctx context.Context, payload models.TransactionPayload) (models.TransactionRecord, error)

	// ListTransactions returns every logged transaction in append order.
	ListTransactions(ctx context.Context) ([]models.TransactionRecord, error)
}

// WeightsService logs body weight entries.
type WeightsService interface {
	// LogWeight normalizes units (kg/lb), body-fat aliases, and appends
	// the index row.
	LogWeight(ctx context.Context, payload models.WeightPayload) (models.WeightRecord, error)

	// ListWeights returns every logged weight entry in append order.
	ListWeights(ctx context.Context) ([]models.WeightRecord, error)
}

// ScrapesService fetches pages and archives them.
type ScrapesService interface {
	// ScrapePage fetches the URL, writes the raw HTML and extracted text
	// artifacts, and appends the index row.
	ScrapePage(ctx context.Context, req models.ScrapeRequest) (models.ScrapeRecord, error)

	// ListScrapes returns every archived scrape in append order.
	ListScrapes(ctx context.Context) ([]models.ScrapeRecord, error)
}

// CommandsService executes shell commands from /run requests.
type CommandsService interface {
	// Run validates the request and executes it. Exactly one of the two
	// results is non-nil: single for a one-command request, sequence for a
	// multi-command one.
	Run(ctx context.Context, req models.RunRequest) (*models.RunResult, *models.RunSequenceResult, error)
}
