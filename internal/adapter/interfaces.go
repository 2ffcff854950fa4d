// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds outbound integrations. Its only member today is
// the page fetcher behind POST /scrape.
package adapter

import (
	"context"

	"github.com/MKhiriev/personal-server/models"
)

// PageFetcher retrieves a web page and extracts its title and visible text.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (models.Page, error)
}
