package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/store"
	"github.com/MKhiriev/personal-server/internal/utils"
	"github.com/MKhiriev/personal-server/models"
)

// lbPerKg is the pound/kilogram conversion factor.
const lbPerKg = 2.2046226218

type weightsService struct {
	index store.CSVIndex
	paths config.Storage

	logger *logger.Logger
}

// NewWeightsService constructs the default [WeightsService].
func NewWeightsService(index store.CSVIndex, paths config.Storage, logger *logger.Logger) WeightsService {
	return &weightsService{
		index:  index,
		paths:  paths,
		logger: logger,
	}
}

func (w *weightsService) LogWeight(ctx context.Context, payload models.WeightPayload) (models.WeightRecord, error) {
	rawJSON, err := json.Marshal(payload)
	if err != nil {
		return models.WeightRecord{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	date := payload.Alias("date", "timestamp")
	if date == "" {
		date = utils.NowUTC()
	}

	kgCell, lbCell := normalizeWeight(
		payload.Alias("weight", "weight_kg", "kg", "weight_lb", "lb"),
		payload.Alias("unit"),
	)

	bodyFatCell := ""
	if bf, ok := extractFloat(payload.Alias("body_fat_pct", "body_fat", "bodyFat", "bf")); ok {
		bodyFatCell = fmt.Sprintf("%.2f", bf)
	}

	record := models.WeightRecord{
		ID:         utils.NewRecordID("wt-"),
		Date:       date,
		WeightKg:   kgCell,
		WeightLb:   lbCell,
		BodyFatPct: bodyFatCell,
		Source:     payload.Alias("source", "device"),
		Notes:      payload.Alias("notes", "memo"),
		RawJSON:    string(rawJSON),
	}

	if err := w.index.Append(ctx, w.paths.WeightsCSV(), models.WeightCSVHeader, record.CSVRow()); err != nil {
		return models.WeightRecord{}, err
	}

	w.logger.Info().Str("id", record.ID).Str("kg", record.WeightKg).Msg("weight logged")

	return record, nil
}

func (w *weightsService) ListWeights(ctx context.Context) ([]models.WeightRecord, error) {
	rows, err := w.index.ReadAll(ctx, w.paths.WeightsCSV(), models.WeightCSVHeader)
	if err != nil {
		return nil, err
	}

	records := make([]models.WeightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.WeightRecordFromCSV(row))
	}

	return records, nil
}

// normalizeWeight converts a loose weight value into kg and lb cells.
// The unit comes from the explicit unit field, or from a hint embedded in
// the value itself ("180 lb", "82.5kg"); kilograms are the default. Both
// cells stay empty when the value has no parsable number.
func normalizeWeight(value, unit string) (kgCell, lbCell string) {
	val, ok := extractFloat(value)
	if !ok {
		return "", ""
	}

	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" {
		lowered := strings.ToLower(value)
		switch {
		case strings.Contains(lowered, "lb"), strings.Contains(lowered, "pound"):
			unit = "lb"
		case strings.Contains(lowered, "kg"):
			unit = "kg"
		}
	}

	var kg, lb float64
	if unit == "lb" || unit == "lbs" {
		lb = val
		kg = lb / lbPerKg
	} else {
		kg = val
		lb = kg * lbPerKg
	}

	return fmt.Sprintf("%.3f", kg), fmt.Sprintf("%.3f", lb)
}
