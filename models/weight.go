package models

// WeightPayload is the raw body of POST /weights. Scales and health apps
// disagree on field names and units, so the payload stays schemaless and the
// weights service normalizes it into a WeightRecord.
//
// Recognized keys:
//   - weight value: weight, weight_kg, kg, weight_lb, lb
//   - unit: unit ("kg"/"lb"), or a hint embedded in the value ("180 lb")
//   - body fat: body_fat_pct, body_fat, bodyFat, bf
//   - date: date, timestamp (defaults to now)
//   - source: source, device
//   - notes: notes, memo
type WeightPayload map[string]any

// Alias resolves the first present, non-empty key from keys.
func (p WeightPayload) Alias(keys ...string) string {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if s := Stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// WeightRecord is one row of weights.csv. Weight is stored in both units;
// cells are empty when the submitted value could not be parsed.
type WeightRecord struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	WeightKg   string `json:"weight_kg"`
	WeightLb   string `json:"weight_lb"`
	BodyFatPct string `json:"body_fat_pct"`
	Source     string `json:"source"`
	Notes      string `json:"notes"`
	RawJSON    string `json:"raw_json"`
}

// WeightCSVHeader is the fixed column order of weights.csv.
var WeightCSVHeader = []string{"id", "date", "weight_kg", "weight_lb", "body_fat_pct", "source", "notes", "raw_json"}

// CSVRow returns the record's cells in WeightCSVHeader order.
func (w WeightRecord) CSVRow() []string {
	return []string{w.ID, w.Date, w.WeightKg, w.WeightLb, w.BodyFatPct, w.Source, w.Notes, w.RawJSON}
}

// WeightRecordFromCSV rebuilds a record from a weights.csv row.
func WeightRecordFromCSV(row []string) WeightRecord {
	return WeightRecord{
		ID:         row[0],
		Date:       row[1],
		WeightKg:   row[2],
		WeightLb:   row[3],
		BodyFatPct: row[4],
		Source:     row[5],
		Notes:      row[6],
		RawJSON:    row[7],
	}
}
