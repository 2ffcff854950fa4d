// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"id", "title", "created_at"}

// TestCSVIndex_Append_CreatesFileWithHeader verifies that the first append
// creates the directory, the file, and exactly one header row.
func TestCSVIndex_Append_CreatesFileWithHeader(t *testing.T) {
	index := NewCSVIndex()
	path := filepath.Join(t.TempDir(), "notes", "notes.csv")

	err := index.Append(context.Background(), path, testHeader, []string{"note-1", "first", "ts"})
	require.NoError(t, err)

	rows := readRaw(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, testHeader, rows[0])
	assert.Equal(t, []string{"note-1", "first", "ts"}, rows[1])
}

// TestCSVIndex_Append_HeaderWrittenOnce verifies that subsequent appends do
// not repeat the header.
func TestCSVIndex_Append_HeaderWrittenOnce(t *testing.T) {
	index := NewCSVIndex()
	path := filepath.Join(t.TempDir(), "notes.csv")
	ctx := context.Background()

	require.NoError(t, index.Append(ctx, path, testHeader, []string{"a", "1", "t1"}))
	require.NoError(t, index.Append(ctx, path, testHeader, []string{"b", "2", "t2"}))
	require.NoError(t, index.Append(ctx, path, testHeader, []string{"c", "3", "t3"}))

	rows := readRaw(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, testHeader, rows[0])
	assert.NotEqual(t, testHeader, rows[1])
}

// TestCSVIndex_Append_QuotesSpecialCharacters verifies that commas,
// newlines, and quotes in cells survive a write/read round trip.
func TestCSVIndex_Append_QuotesSpecialCharacters(t *testing.T) {
	index := NewCSVIndex()
	path := filepath.Join(t.TempDir(), "tx.csv")
	ctx := context.Background()

	cell := `{"amount": "12,50", "memo": "line\nbreak \"quoted\""}`
	require.NoError(t, index.Append(ctx, path, testHeader, []string{"txn-1", cell, "ts"}))

	rows, err := index.ReadAll(ctx, path, testHeader)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, cell, rows[0][1])
}

// TestCSVIndex_ReadAll_MissingFileIsEmpty verifies that a nonexistent index
// reads as empty rather than failing.
func TestCSVIndex_ReadAll_MissingFileIsEmpty(t *testing.T) {
	index := NewCSVIndex()

	rows, err := index.ReadAll(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), testHeader)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestCSVIndex_ReadAll_HeaderMismatch verifies that a foreign header is
// rejected with ErrHeaderMismatch.
func TestCSVIndex_ReadAll_HeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weird.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,z\n1,2,3\n"), 0o644))

	index := NewCSVIndex()
	_, err := index.ReadAll(context.Background(), path, testHeader)
	require.ErrorIs(t, err, ErrHeaderMismatch)
}

// TestCSVIndex_Append_ConcurrentWritersDoNotInterleave verifies that many
// goroutines appending to the same file produce intact rows.
func TestCSVIndex_Append_ConcurrentWritersDoNotInterleave(t *testing.T) {
	index := NewCSVIndex()
	path := filepath.Join(t.TempDir(), "concurrent.csv")
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := "id-" + strconv.Itoa(n)
			assert.NoError(t, index.Append(ctx, path, testHeader, []string{id, "t", "ts"}))
		}(i)
	}
	wg.Wait()

	rows, err := index.ReadAll(ctx, path, testHeader)
	require.NoError(t, err)
	require.Len(t, rows, writers)

	seen := make(map[string]bool)
	for _, row := range rows {
		require.Len(t, row, len(testHeader))
		seen[row[0]] = true
	}
	assert.Len(t, seen, writers)
}

// TestCSVIndex_Append_CancelledContext verifies that a cancelled context
// short-circuits before touching the filesystem.
func TestCSVIndex_Append_CancelledContext(t *testing.T) {
	index := NewCSVIndex()
	path := filepath.Join(t.TempDir(), "never.csv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := index.Append(ctx, path, testHeader, []string{"a", "b", "c"})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func readRaw(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}
