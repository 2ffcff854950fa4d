package models

// PingResponse is the fixed payload of GET /ping.
type PingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error envelope.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// NoteResponse wraps a freshly logged note.
type NoteResponse struct {
	OK   bool       `json:"ok"`
	Note NoteRecord `json:"note"`
}

// NoteListResponse wraps the notes.csv read-back.
type NoteListResponse struct {
	OK    bool         `json:"ok"`
	Notes []NoteRecord `json:"notes"`
}

// NoteDocumentResponse wraps a single note read back with its body.
type NoteDocumentResponse struct {
	OK   bool         `json:"ok"`
	Note NoteDocument `json:"note"`
}

// TransactionResponse wraps a freshly logged transaction.
type TransactionResponse struct {
	OK          bool              `json:"ok"`
	Transaction TransactionRecord `json:"transaction"`
}

// TransactionListResponse wraps the transactions.csv read-back.
type TransactionListResponse struct {
	OK           bool                `json:"ok"`
	Transactions []TransactionRecord `json:"transactions"`
}

// ScrapeResponse wraps a completed scrape.
type ScrapeResponse struct {
	OK     bool         `json:"ok"`
	Scrape ScrapeRecord `json:"scrape"`
}

// ScrapeListResponse wraps the scrapes.csv read-back.
type ScrapeListResponse struct {
	OK      bool           `json:"ok"`
	Scrapes []ScrapeRecord `json:"scrapes"`
}

// WeightResponse wraps a freshly logged weight entry.
type WeightResponse struct {
	OK     bool         `json:"ok"`
	Weight WeightRecord `json:"weight"`
}

// WeightListResponse wraps the weights.csv read-back.
type WeightListResponse struct {
	OK      bool           `json:"ok"`
	Weights []WeightRecord `json:"weights"`
}
