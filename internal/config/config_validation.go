// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Built-in defaults, the lowest-priority configuration source.
const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 8080
	DefaultScrapeTimeout = 20 * time.Second
	DefaultUserAgent     = "PersonalServer/1.0"
)

func defaultConfig(dataDir string) *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		Scraper: Scraper{
			Timeout:   DefaultScrapeTimeout,
			UserAgent: DefaultUserAgent,
		},
	}
}

// validate rejects configurations the server cannot start with. Only
// structural problems fail here; everything else has a default.
func (c *StructuredConfig) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerAddress, c.Server.Port)
	}
	if c.Storage.DataDir == "" {
		return ErrEmptyDataDir
	}
	if c.Scraper.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScrapeTimeout, c.Scraper.Timeout)
	}

	return nil
}
