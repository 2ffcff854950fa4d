package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/service"
	"github.com/MKhiriev/personal-server/models"
)

// ───────────────────────── Mock: NotesService ─────────────────────────

type mockNotesSvc struct {
	createFn func(ctx context.Context, req models.NoteRequest) (models.NoteRecord, error)
	listFn   func(ctx context.Context) ([]models.NoteRecord, error)
	getFn    func(ctx context.Context, id string) (models.NoteDocument, error)
}

func (m *mockNotesSvc) CreateNote(ctx context.Context, req models.NoteRequest) (models.NoteRecord, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.NoteRecord{}, nil
}

func (m *mockNotesSvc) ListNotes(ctx context.Context) ([]models.NoteRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockNotesSvc) GetNote(ctx context.Context, id string) (models.NoteDocument, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.NoteDocument{}, nil
}

// ──────────────────────── Mock: TransactionsService ────────────────────────

type mockTransactionsSvc struct {
	logFn  func(ctx context.Context, payload models.TransactionPayload) (models.TransactionRecord, error)
	listFn func(ctx context.Context) ([]models.TransactionRecord, error)
}

func (m *mockTransactionsSvc) LogTransaction(ctx context.Context, payload models.TransactionPayload) (models.TransactionRecord, error) {
	if m.logFn != nil {
		return m.logFn(ctx, payload)
	}
	return models.TransactionRecord{}, nil
}

func (m *mockTransactionsSvc) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ───────────────────────── Mock: WeightsService ─────────────────────────

type mockWeightsSvc struct {
	logFn  func(ctx context.Context, payload models.WeightPayload) (models.WeightRecord, error)
	listFn func(ctx context.Context) ([]models.WeightRecord, error)
}

func (m *mockWeightsSvc) LogWeight(ctx context.Context, payload models.WeightPayload) (models.WeightRecord, error) {
	if m.logFn != nil {
		return m.logFn(ctx, payload)
	}
	return models.WeightRecord{}, nil
}

func (m *mockWeightsSvc) ListWeights(ctx context.Context) ([]models.WeightRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ───────────────────────── Mock: ScrapesService ─────────────────────────

type mockScrapesSvc struct {
	scrapeFn func(ctx context.Context, req models.ScrapeRequest) (models.ScrapeRecord, error)
	listFn   func(ctx context.Context) ([]models.ScrapeRecord, error)
}

func (m *mockScrapesSvc) ScrapePage(ctx context.Context, req models.ScrapeRequest) (models.ScrapeRecord, error) {
	if m.scrapeFn != nil {
		return m.scrapeFn(ctx, req)
	}
	return models.ScrapeRecord{}, nil
}

func (m *mockScrapesSvc) ListScrapes(ctx context.Context) ([]models.ScrapeRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ───────────────────────── Mock: CommandsService ─────────────────────────

type mockCommandsSvc struct {
	runFn func(ctx context.Context, req models.RunRequest) (*models.RunResult, *models.RunSequenceResult, error)
}

func (m *mockCommandsSvc) Run(ctx context.Context, req models.RunRequest) (*models.RunResult, *models.RunSequenceResult, error) {
	if m.runFn != nil {
		return m.runFn(ctx, req)
	}
	return &models.RunResult{OK: true}, nil, nil
}

// ───────────────────────── Helpers ─────────────────────────

func defaultServices() *service.Services {
	return &service.Services{
		Notes:        &mockNotesSvc{},
		Transactions: &mockTransactionsSvc{},
		Weights:      &mockWeightsSvc{},
		Scrapes:      &mockScrapesSvc{},
		Commands:     &mockCommandsSvc{},
	}
}

func decodeBody(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services == nil {
		services = defaultServices()
	}
	h := &Handler{
		logger:   logger.Nop(),
		services: services,
	}
	return h.Init()
}
