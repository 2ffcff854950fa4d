package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

// FetcherConfig configures the outbound HTTP client.
type FetcherConfig struct {
	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds the whole fetch, connection included.
	Timeout time.Duration
}

type pageFetcher struct {
	client *resty.Client
	logger *logger.Logger
}

// NewPageFetcher constructs a resty-backed [PageFetcher]. Zero config
// fields fall back to "PersonalServer/1.0" and 20 seconds, matching what
// the scrape endpoint advertises.
func NewPageFetcher(cfg FetcherConfig, logger *logger.Logger) PageFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "PersonalServer/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}

	cli := resty.New().
		SetHeader("User-Agent", cfg.UserAgent).
		SetTimeout(cfg.Timeout)

	return &pageFetcher{client: cli, logger: logger}
}

func (p *pageFetcher) Fetch(ctx context.Context, url string) (models.Page, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return models.Page{}, fmt.Errorf("%w: status %d from %s", ErrFetchFailed, resp.StatusCode(), url)
	}

	htmlText := string(resp.Body())

	finalURL := url
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		finalURL = raw.Request.URL.String()
	}

	page := models.Page{
		FinalURL: finalURL,
		Title:    ExtractTitle(htmlText),
		HTML:     htmlText,
		Text:     ExtractText(htmlText),
	}

	p.logger.Debug().
		Str("url", url).
		Str("final_url", page.FinalURL).
		Str("title", page.Title).
		Int("bytes", len(page.HTML)).
		Msg("page fetched")

	return page, nil
}
