package service

import (
	"context"
	"time"

	"github.com/MKhiriev/personal-server/models"
)

// ─────────────────────────────────────────────
// Mock: store.CSVIndex
// ─────────────────────────────────────────────

type mockCSVIndex struct {
	appendFn  func(ctx context.Context, path string, header []string, row []string) error
	readAllFn func(ctx context.Context, path string, header []string) ([][]string, error)

	appended [][]string
	paths    []string
}

func (m *mockCSVIndex) Append(ctx context.Context, path string, header []string, row []string) error {
	m.appended = append(m.appended, row)
	m.paths = append(m.paths, path)
	if m.appendFn != nil {
		return m.appendFn(ctx, path, header, row)
	}
	return nil
}

func (m *mockCSVIndex) ReadAll(ctx context.Context, path string, header []string) ([][]string, error) {
	if m.readAllFn != nil {
		return m.readAllFn(ctx, path, header)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.ArtifactStorage
// ─────────────────────────────────────────────

type mockArtifacts struct {
	writeFn func(ctx context.Context, path string, data []byte) error
	readFn  func(ctx context.Context, path string) ([]byte, error)

	written map[string][]byte
}

func (m *mockArtifacts) Write(ctx context.Context, path string, data []byte) error {
	if m.written == nil {
		m.written = make(map[string][]byte)
	}
	m.written[path] = data
	if m.writeFn != nil {
		return m.writeFn(ctx, path, data)
	}
	return nil
}

func (m *mockArtifacts) Read(ctx context.Context, path string) ([]byte, error) {
	if m.readFn != nil {
		return m.readFn(ctx, path)
	}
	if data, ok := m.written[path]; ok {
		return data, nil
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.PageFetcher
// ─────────────────────────────────────────────

type mockFetcher struct {
	fetchFn func(ctx context.Context, url string) (models.Page, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (models.Page, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, url)
	}
	return models.Page{}, nil
}

// ─────────────────────────────────────────────
// Mock: runner.Runner
// ─────────────────────────────────────────────

type mockRunner struct {
	runFn    func(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult
	runSeqFn func(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult
}

func (m *mockRunner) Run(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult {
	if m.runFn != nil {
		return m.runFn(ctx, cmd, timeout, cwd)
	}
	return models.RunResult{}
}

func (m *mockRunner) RunSequence(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult {
	if m.runSeqFn != nil {
		return m.runSeqFn(ctx, cmds, timeout, cwd, stopOnError)
	}
	return models.RunSequenceResult{}
}
