package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/store"
	"github.com/MKhiriev/personal-server/internal/utils"
	"github.com/MKhiriev/personal-server/models"
)

type transactionsService struct {
	index store.CSVIndex
	paths config.Storage

	logger *logger.Logger
}

// NewTransactionsService constructs the default [TransactionsService].
func NewTransactionsService(index store.CSVIndex, paths config.Storage, logger *logger.Logger) TransactionsService {
	return &transactionsService{
		index:  index,
		paths:  paths,
		logger: logger,
	}
}

func (t *transactionsService) LogTransaction(ctx context.Context, payload models.TransactionPayload) (models.TransactionRecord, error) {
	rawJSON, err := json.Marshal(payload)
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	date := payload.Alias("date", "timestamp")
	if date == "" {
		date = utils.NowUTC()
	}

	record := models.TransactionRecord{
		ID:       utils.NewRecordID("txn-"),
		Date:     date,
		Amount:   payload.Alias("amount", "value"),
		Merchant: payload.Alias("merchant", "payee"),
		Category: payload.Alias("category", "type"),
		Account:  payload.Alias("account", "source"),
		Notes:    payload.Alias("notes", "memo"),
		RawJSON:  string(rawJSON),
	}

	if err := t.index.Append(ctx, t.paths.TransactionsCSV(), models.TransactionCSVHeader, record.CSVRow()); err != nil {
		return models.TransactionRecord{}, err
	}

	t.logger.Info().Str("id", record.ID).Str("merchant", record.Merchant).Msg("transaction logged")

	return record, nil
}

func (t *transactionsService) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	rows, err := t.index.ReadAll(ctx, t.paths.TransactionsCSV(), models.TransactionCSVHeader)
	if err != nil {
		return nil, err
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.TransactionRecordFromCSV(row))
	}

	return records, nil
}
