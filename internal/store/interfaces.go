package store

import "context"

// CSVIndex is the append-only record log. One file per record family; rows
// are immutable once written.
type CSVIndex interface {
	// Append writes one row to the index at path, creating the containing
	// directory and the header row when the file does not exist yet.
	Append(ctx context.Context, path string, header []string, row []string) error

	// ReadAll returns every data row of the index at path, verifying that
	// the stored header matches the expected column order. A missing file
	// reads as an empty index.
	ReadAll(ctx context.Context, path string, header []string) ([][]string, error)
}

// ArtifactStorage persists companion files next to the CSV indexes: note
// Markdown and HTML, scraped page bodies and text dumps.
type ArtifactStorage interface {
	// Write stores data at path, creating the containing directory if
	// absent.
	Write(ctx context.Context, path string, data []byte) error

	// Read loads the artifact at path.
	Read(ctx context.Context, path string) ([]byte, error)
}
