package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NoteRequest is the payload of POST /notes.
type NoteRequest struct {
	// Title is the human-readable note title. Required; it also seeds the
	// slug used for the Markdown file name.
	Title string `json:"title"`

	// Content is the Markdown body of the note. May be empty.
	Content string `json:"content"`

	// Tags is an optional list of tags. Accepts both a JSON array and a
	// single comma-joined string.
	Tags FlexStrings `json:"tags"`
}

// Validate checks the request with ozzo-validation rules.
func (n NoteRequest) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required.Error("missing 'title'")),
	)
}

// TagsString returns the tags joined with commas, the form stored in the
// CSV index and in the note frontmatter.
func (n NoteRequest) TagsString() string {
	return strings.Join(n.Tags, ",")
}

// NoteRecord is one row of notes.csv.
type NoteRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"created_at"`
	Tags      string `json:"tags"`
}

// NoteCSVHeader is the fixed column order of notes.csv.
var NoteCSVHeader = []string{"id", "title", "filename", "created_at", "tags"}

// CSVRow returns the record's cells in NoteCSVHeader order.
func (n NoteRecord) CSVRow() []string {
	return []string{n.ID, n.Title, n.Filename, n.CreatedAt, n.Tags}
}

// NoteRecordFromCSV rebuilds a record from a notes.csv row.
func NoteRecordFromCSV(row []string) NoteRecord {
	return NoteRecord{
		ID:        row[0],
		Title:     row[1],
		Filename:  row[2],
		CreatedAt: row[3],
		Tags:      row[4],
	}
}

// NoteFrontmatter is the YAML header written at the top of every note file
// and parsed back out when the note is read.
type NoteFrontmatter struct {
	Title     string `yaml:"title"`
	CreatedAt string `yaml:"created_at"`
	Tags      string `yaml:"tags"`
}

// NoteDocument is the full read-back of a single note: the index row plus
// the Markdown body recovered from the note file.
type NoteDocument struct {
	Record  NoteRecord      `json:"record"`
	Meta    NoteFrontmatter `json:"meta"`
	Content string          `json:"content"`
}
