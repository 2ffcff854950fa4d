package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// artifactStorage is the local-filesystem implementation of
// [ArtifactStorage].
type artifactStorage struct{}

// NewArtifactStorage constructs the default filesystem [ArtifactStorage].
func NewArtifactStorage() ArtifactStorage {
	return &artifactStorage{}
}

func (a *artifactStorage) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrCreatingDirectory, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingArtifact, err)
	}

	return nil
}

func (a *artifactStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("error reading artifact: %w", err)
	}

	return data, nil
}
