package models

// TransactionPayload is the raw body of POST /transactions. Clients send
// whatever their bank export produces, so the payload is kept schemaless:
// known keys (and their aliases) are normalized into TransactionRecord, and
// the payload as a whole is preserved in the raw_json column.
type TransactionPayload map[string]any

// Alias resolves the first present, non-empty key from keys and returns its
// string form. Used to accept date/timestamp, merchant/payee and similar
// key pairs interchangeably.
func (p TransactionPayload) Alias(keys ...string) string {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			if s := Stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// TransactionRecord is one row of transactions.csv.
type TransactionRecord struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Merchant string `json:"merchant"`
	Category string `json:"category"`
	Account  string `json:"account"`
	Notes    string `json:"notes"`

	// RawJSON is the submitted payload serialized verbatim, so no client
	// key is ever lost to normalization.
	RawJSON string `json:"raw_json"`
}

// TransactionCSVHeader is the fixed column order of transactions.csv.
var TransactionCSVHeader = []string{"id", "date", "amount", "merchant", "category", "account", "notes", "raw_json"}

// CSVRow returns the record's cells in TransactionCSVHeader order.
func (t TransactionRecord) CSVRow() []string {
	return []string{t.ID, t.Date, t.Amount, t.Merchant, t.Category, t.Account, t.Notes, t.RawJSON}
}

// TransactionRecordFromCSV rebuilds a record from a transactions.csv row.
func TransactionRecordFromCSV(row []string) TransactionRecord {
	return TransactionRecord{
		ID:       row[0],
		Date:     row[1],
		Amount:   row[2],
		Merchant: row[3],
		Category: row[4],
		Account:  row[5],
		Notes:    row[6],
		RawJSON:  row[7],
	}
}
