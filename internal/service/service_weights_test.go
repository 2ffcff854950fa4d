package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func newTestWeightsService(index *mockCSVIndex) WeightsService {
	return NewWeightsService(index, config.Storage{DataDir: "/data"}, logger.Nop())
}

// TestLogWeight_KilogramsDefault verifies a bare number is treated as kg
// and converted to lb.
func TestLogWeight_KilogramsDefault(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{"weight": 82.5})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(record.ID, "wt-"))
	assert.Equal(t, "82.500", record.WeightKg)
	assert.Equal(t, "181.881", record.WeightLb)
}

// TestLogWeight_PoundsUnit verifies explicit lb input converts to kg.
func TestLogWeight_PoundsUnit(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{
		"weight": 180,
		"unit":   "lb",
	})
	require.NoError(t, err)

	assert.Equal(t, "81.647", record.WeightKg)
	assert.Equal(t, "180.000", record.WeightLb)
}

// TestLogWeight_UnitEmbeddedInValue verifies "180 lb" style strings parse
// with their embedded unit hint.
func TestLogWeight_UnitEmbeddedInValue(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{"weight": "180 lb"})
	require.NoError(t, err)
	assert.Equal(t, "81.647", record.WeightKg)

	record, err = svc.LogWeight(context.Background(), models.WeightPayload{"weight": "82.5kg"})
	require.NoError(t, err)
	assert.Equal(t, "82.500", record.WeightKg)
}

// TestLogWeight_AlternateKeys verifies weight_lb / kg key aliases.
func TestLogWeight_AlternateKeys(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{"kg": 90})
	require.NoError(t, err)
	assert.Equal(t, "90.000", record.WeightKg)
}

// TestLogWeight_BodyFatAliases verifies all body-fat key spellings.
func TestLogWeight_BodyFatAliases(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	for _, key := range []string{"body_fat_pct", "body_fat", "bodyFat", "bf"} {
		record, err := svc.LogWeight(context.Background(), models.WeightPayload{
			"weight": 80,
			key:      21.456,
		})
		require.NoError(t, err)
		assert.Equal(t, "21.46", record.BodyFatPct, "key %s", key)
	}
}

// TestLogWeight_UnparsableWeight verifies that garbage input still logs a
// row with empty weight cells.
func TestLogWeight_UnparsableWeight(t *testing.T) {
	index := &mockCSVIndex{}
	svc := newTestWeightsService(index)

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{
		"weight": "heavy",
		"notes":  "scale broken",
	})
	require.NoError(t, err)
	assert.Empty(t, record.WeightKg)
	assert.Empty(t, record.WeightLb)
	assert.Equal(t, "scale broken", record.Notes)
	assert.Len(t, index.appended, 1)
}

// TestLogWeight_SourceAndDeviceAliases verifies source column aliases.
func TestLogWeight_SourceAndDeviceAliases(t *testing.T) {
	svc := newTestWeightsService(&mockCSVIndex{})

	record, err := svc.LogWeight(context.Background(), models.WeightPayload{
		"weight": 80,
		"device": "withings",
	})
	require.NoError(t, err)
	assert.Equal(t, "withings", record.Source)
}

// TestListWeights_MapsRows verifies CSV rows map back into records.
func TestListWeights_MapsRows(t *testing.T) {
	index := &mockCSVIndex{
		readAllFn: func(ctx context.Context, path string, header []string) ([][]string, error) {
			return [][]string{
				{"wt-1", "d", "80.000", "176.370", "20.00", "s", "n", "{}"},
			}, nil
		},
	}
	svc := newTestWeightsService(index)

	records, err := svc.ListWeights(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "80.000", records[0].WeightKg)
}
