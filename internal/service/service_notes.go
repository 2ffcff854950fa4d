package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/internal/store"
	"github.com/MKhiriev/personal-server/internal/utils"
	"github.com/MKhiriev/personal-server/models"
)

type notesService struct {
	index     store.CSVIndex
	artifacts store.ArtifactStorage
	paths     config.Storage

	logger *logger.Logger
}

// NewNotesService constructs the default [NotesService].
func NewNotesService(index store.CSVIndex, artifacts store.ArtifactStorage, paths config.Storage, logger *logger.Logger) NotesService {
	return &notesService{
		index:     index,
		artifacts: artifacts,
		paths:     paths,
		logger:    logger,
	}
}

func (n *notesService) CreateNote(ctx context.Context, req models.NoteRequest) (models.NoteRecord, error) {
	if err := req.Validate(); err != nil {
		return models.NoteRecord{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	createdAt := utils.NowUTC()
	base := createdAt + "-" + utils.Slugify(req.Title)
	filename := base + ".md"

	meta := models.NoteFrontmatter{
		Title:     strings.TrimSpace(req.Title),
		CreatedAt: createdAt,
		Tags:      req.TagsString(),
	}

	noteFile, err := renderNoteFile(meta, req.Content)
	if err != nil {
		return models.NoteRecord{}, err
	}
	if err := n.artifacts.Write(ctx, filepath.Join(n.paths.NotesDir(), filename), noteFile); err != nil {
		return models.NoteRecord{}, err
	}

	noteHTML, err := renderNoteHTML(req.Content)
	if err != nil {
		return models.NoteRecord{}, err
	}
	if err := n.artifacts.Write(ctx, filepath.Join(n.paths.NotesDir(), base+".html"), noteHTML); err != nil {
		return models.NoteRecord{}, err
	}

	record := models.NoteRecord{
		ID:        utils.NewRecordID("note-"),
		Title:     meta.Title,
		Filename:  filename,
		CreatedAt: createdAt,
		Tags:      meta.Tags,
	}
	if err := n.index.Append(ctx, n.paths.NotesCSV(), models.NoteCSVHeader, record.CSVRow()); err != nil {
		return models.NoteRecord{}, err
	}

	n.logger.Info().Str("id", record.ID).Str("file", filename).Msg("note logged")

	return record, nil
}

func (n *notesService) ListNotes(ctx context.Context) ([]models.NoteRecord, error) {
	rows, err := n.index.ReadAll(ctx, n.paths.NotesCSV(), models.NoteCSVHeader)
	if err != nil {
		return nil, err
	}

	records := make([]models.NoteRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.NoteRecordFromCSV(row))
	}

	return records, nil
}

func (n *notesService) GetNote(ctx context.Context, id string) (models.NoteDocument, error) {
	records, err := n.ListNotes(ctx)
	if err != nil {
		return models.NoteDocument{}, err
	}

	for _, record := range records {
		if record.ID != id {
			continue
		}

		data, err := n.artifacts.Read(ctx, filepath.Join(n.paths.NotesDir(), record.Filename))
		if err != nil {
			return models.NoteDocument{}, err
		}

		meta, body, err := parseNoteFile(data)
		if err != nil {
			return models.NoteDocument{}, err
		}

		return models.NoteDocument{Record: record, Meta: meta, Content: body}, nil
	}

	return models.NoteDocument{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
}
