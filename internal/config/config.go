// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// personal server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the bind address and request timeout for the HTTP
	// listener.
	Server Server `envPrefix:"PERSONAL_SERVER_"`

	// Storage holds the root of the flat-file data tree (CSV indexes plus
	// artifact files).
	Storage Storage `envPrefix:"PERSONAL_SERVER_"`

	// Scraper holds outbound HTTP settings for the /scrape endpoint.
	Scraper Scraper `envPrefix:"PERSONAL_SERVER_"`

	// Runner holds defaults for the /run shell executor.
	Runner Runner `envPrefix:"PERSONAL_SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the PERSONAL_SERVER_CONFIG variable or the -c / -config flag.
	JSONFilePath string `env:"PERSONAL_SERVER_CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP listener.
type Server struct {
	// Host is the bind host. Env: PERSONAL_SERVER_HOST. Default 127.0.0.1.
	Host string `env:"HOST"`

	// Port is the bind port. Env: PERSONAL_SERVER_PORT. Default 8080.
	Port int `env:"PORT"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Zero disables the limit, which long /run commands rely on.
	// Env: PERSONAL_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Address returns the host:port string the HTTP server binds to.
func (s Server) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Storage holds the layout of the flat-file data tree. Every record family
// lives in its own subdirectory with a single CSV index inside.
type Storage struct {
	// DataDir is the root of the data tree.
	// Env: PERSONAL_SERVER_ROOT. Default: current working directory.
	DataDir string `env:"ROOT"`
}

// NotesDir is the directory holding note Markdown/HTML files and notes.csv.
func (s Storage) NotesDir() string { return filepath.Join(s.DataDir, "notes") }

// NotesCSV is the notes index file.
func (s Storage) NotesCSV() string { return filepath.Join(s.NotesDir(), "notes.csv") }

// TransactionsDir is the directory holding transactions.csv.
func (s Storage) TransactionsDir() string { return filepath.Join(s.DataDir, "transactions") }

// TransactionsCSV is the transactions index file.
func (s Storage) TransactionsCSV() string {
	return filepath.Join(s.TransactionsDir(), "transactions.csv")
}

// ScrapesDir is the directory holding scraped page bodies and scrapes.csv.
func (s Storage) ScrapesDir() string { return filepath.Join(s.DataDir, "scrapes") }

// ScrapesCSV is the scrapes index file.
func (s Storage) ScrapesCSV() string { return filepath.Join(s.ScrapesDir(), "scrapes.csv") }

// WeightsDir is the directory holding weights.csv.
func (s Storage) WeightsDir() string { return filepath.Join(s.DataDir, "weights") }

// WeightsCSV is the weights index file.
func (s Storage) WeightsCSV() string { return filepath.Join(s.WeightsDir(), "weights.csv") }

// Scraper holds outbound HTTP settings for page fetching.
type Scraper struct {
	// Timeout bounds one page fetch. Env: PERSONAL_SERVER_SCRAPE_TIMEOUT.
	// Default 20s.
	Timeout time.Duration `env:"SCRAPE_TIMEOUT"`

	// UserAgent is sent with every fetch.
	// Env: PERSONAL_SERVER_SCRAPE_USER_AGENT. Default "PersonalServer/1.0".
	UserAgent string `env:"SCRAPE_USER_AGENT"`
}

// Runner holds defaults for shell command execution.
type Runner struct {
	// DefaultTimeout applies to commands whose request does not set one.
	// Zero means unlimited. Env: PERSONAL_SERVER_RUN_TIMEOUT.
	DefaultTimeout time.Duration `env:"RUN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins): environment variables, command-line flags,
// JSON file, built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
