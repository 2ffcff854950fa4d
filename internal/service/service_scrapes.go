package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/personal-server/internal/adapter"
	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/store"
	"github.com/MKhiriev/personal-server/internal/utils"
	"github.com/MKhiriev/personal-server/models"
)

type scrapesService struct {
	index     store.CSVIndex
	artifacts store.ArtifactStorage
	fetcher   adapter.PageFetcher
	paths     config.Storage

	logger *logger.Logger
}

// NewScrapesService constructs the default [ScrapesService].
func NewScrapesService(index store.CSVIndex, artifacts store.ArtifactStorage, fetcher adapter.PageFetcher, paths config.Storage, logger *logger.Logger) ScrapesService {
	return &scrapesService{
		index:     index,
		artifacts: artifacts,
		fetcher:   fetcher,
		paths:     paths,
		logger:    logger,
	}
}

func (s *scrapesService) ScrapePage(ctx context.Context, req models.ScrapeRequest) (models.ScrapeRecord, error) {
	if err := req.Validate(); err != nil {
		return models.ScrapeRecord{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	page, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return models.ScrapeRecord{}, err
	}

	fetchedAt := utils.NowUTC()
	slugSource := page.Title
	if slugSource == "" {
		slugSource = "page"
	}
	base := fetchedAt + "-" + utils.Slugify(slugSource)
	htmlName := base + ".html"
	txtName := base + ".txt"

	if err := s.artifacts.Write(ctx, filepath.Join(s.paths.ScrapesDir(), htmlName), []byte(page.HTML)); err != nil {
		return models.ScrapeRecord{}, err
	}
	if err := s.artifacts.Write(ctx, filepath.Join(s.paths.ScrapesDir(), txtName), []byte(page.Text)); err != nil {
		return models.ScrapeRecord{}, err
	}

	record := models.ScrapeRecord{
		ID:           utils.NewRecordID("scrape-"),
		URL:          page.FinalURL,
		FetchedAt:    fetchedAt,
		FilenameHTML: htmlName,
		FilenameTxt:  txtName,
		Title:        page.Title,
	}
	if err := s.index.Append(ctx, s.paths.ScrapesCSV(), models.ScrapeCSVHeader, record.CSVRow()); err != nil {
		return models.ScrapeRecord{}, err
	}

	s.logger.Info().Str("id", record.ID).Str("url", record.URL).Msg("page archived")

	return record, nil
}

func (s *scrapesService) ListScrapes(ctx context.Context) ([]models.ScrapeRecord, error) {
	rows, err := s.index.ReadAll(ctx, s.paths.ScrapesCSV(), models.ScrapeCSVHeader)
	if err != nil {
		return nil, err
	}

	records := make([]models.ScrapeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ScrapeRecordFromCSV(row))
	}

	return records, nil
}
