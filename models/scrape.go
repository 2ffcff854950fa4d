package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ScrapeRequest is the payload of POST /scrape.
type ScrapeRequest struct {
	// URL is the page to fetch. Required; must be an absolute URL.
	URL string `json:"url"`
}

// Validate checks the request with ozzo-validation rules.
func (s ScrapeRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.URL,
			validation.Required.Error("missing 'url'"),
			is.URL,
		),
	)
}

// Page is a fetched web page as returned by the scrape adapter.
type Page struct {
	// FinalURL is the URL after following redirects.
	FinalURL string

	// Title is the decoded content of the page's <title> element, empty
	// when the page has none.
	Title string

	// HTML is the raw page body.
	HTML string

	// Text is the visible text extracted from HTML, one chunk per line.
	Text string
}

// ScrapeRecord is one row of scrapes.csv.
type ScrapeRecord struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	FetchedAt    string `json:"fetched_at"`
	FilenameHTML string `json:"filename_html"`
	FilenameTxt  string `json:"filename_txt"`
	Title        string `json:"title"`
}

// ScrapeCSVHeader is the fixed column order of scrapes.csv.
var ScrapeCSVHeader = []string{"id", "url", "fetched_at", "filename_html", "filename_txt", "title"}

// CSVRow returns the record's cells in ScrapeCSVHeader order.
func (s ScrapeRecord) CSVRow() []string {
	return []string{s.ID, s.URL, s.FetchedAt, s.FilenameHTML, s.FilenameTxt, s.Title}
}

// ScrapeRecordFromCSV rebuilds a record from a scrapes.csv row.
func ScrapeRecordFromCSV(row []string) ScrapeRecord {
	return ScrapeRecord{
		ID:           row[0],
		URL:          row[1],
		FetchedAt:    row[2],
		FilenameHTML: row[3],
		FilenameTxt:  row[4],
		Title:        row[5],
	}
}
