package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrInvalidServerAddress is returned when the merged bind port falls
	// outside the valid TCP range.
	ErrInvalidServerAddress = errors.New("invalid server address")

	// ErrEmptyDataDir is returned when no data directory survives the
	// merge. With the built-in default present this indicates an
	// explicitly emptied value.
	ErrEmptyDataDir = errors.New("data directory is empty")

	// ErrInvalidScrapeTimeout is returned for a negative scrape timeout.
	ErrInvalidScrapeTimeout = errors.New("invalid scrape timeout")
)
