// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// csvIndex is the file-backed implementation of [CSVIndex]. Appends on the
// same file are serialized with a per-file mutex so concurrent handlers
// cannot interleave partially written rows; distinct files do not contend.
type csvIndex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCSVIndex constructs the default file-backed [CSVIndex].
func NewCSVIndex() CSVIndex {
	return &csvIndex{locks: make(map[string]*sync.Mutex)}
}

func (c *csvIndex) fileLock(path string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[path] = lock
	}
	return lock
}

func (c *csvIndex) Append(ctx context.Context, path string, header []string, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := c.fileLock(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrCreatingDirectory, err)
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpeningIndex, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if isNew {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("%w: %v", ErrWritingRow, err)
		}
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingRow, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingRow, err)
	}

	return nil
}

func (c *csvIndex) ReadAll(ctx context.Context, path string, header []string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := c.fileLock(path)
	lock.Lock()
	defer lock.Unlock()

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingIndex, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingIndex, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	if !equalHeader(records[0], header) {
		return nil, fmt.Errorf("%w: %s has %v", ErrHeaderMismatch, filepath.Base(path), records[0])
	}

	return records[1:], nil
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
