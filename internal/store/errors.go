package store

import "errors"

// Sentinel errors returned by the storage layer. Handlers map them to HTTP
// statuses with [errors.Is].
var (
	// ErrCreatingDirectory is returned when the containing directory of a
	// CSV index or artifact cannot be created.
	ErrCreatingDirectory = errors.New("error creating data directory")

	// ErrOpeningIndex is returned when the CSV index file cannot be opened
	// for appending.
	ErrOpeningIndex = errors.New("error opening csv index")

	// ErrWritingRow is returned when a header or data row fails to reach
	// the CSV index.
	ErrWritingRow = errors.New("error writing csv row")

	// ErrReadingIndex is returned when the CSV index cannot be read back.
	ErrReadingIndex = errors.New("error reading csv index")

	// ErrHeaderMismatch is returned when an existing CSV index carries a
	// header different from the expected column order.
	ErrHeaderMismatch = errors.New("csv header mismatch")

	// ErrWritingArtifact is returned when a companion file (Markdown,
	// HTML, text) cannot be written.
	ErrWritingArtifact = errors.New("error writing artifact file")

	// ErrArtifactNotFound is returned when a companion file referenced by
	// an index row no longer exists on disk.
	ErrArtifactNotFound = errors.New("artifact file not found")
)
