// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/personal-server/internal/config"
	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

func newTestCommandsService(run *mockRunner, cfg config.Runner) CommandsService {
	return NewCommandsService(run, cfg, logger.Nop())
}

// TestRun_SingleCommand verifies single-command dispatch with the timeout
// converted from seconds.
func TestRun_SingleCommand(t *testing.T) {
	var gotCmd string
	var gotTimeout time.Duration
	var gotCwd string
	run := &mockRunner{
		runFn: func(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult {
			gotCmd, gotTimeout, gotCwd = cmd, timeout, cwd
			return models.RunResult{OK: true, Stdout: "out"}
		},
	}
	svc := newTestCommandsService(run, config.Runner{})

	single, seq, err := svc.Run(context.Background(), models.RunRequest{
		Cmd:     models.FlexCommand{Values: []string{"ls -la"}},
		Timeout: 2.5,
		Cwd:     "/tmp",
	})
	require.NoError(t, err)
	require.NotNil(t, single)
	assert.Nil(t, seq)

	assert.Equal(t, "ls -la", gotCmd)
	assert.Equal(t, 2500*time.Millisecond, gotTimeout)
	assert.Equal(t, "/tmp", gotCwd)
	assert.Equal(t, "out", single.Stdout)
}

// TestRun_CommandAlias verifies the `command` key works for singles.
func TestRun_CommandAlias(t *testing.T) {
	var gotCmd string
	run := &mockRunner{
		runFn: func(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult {
			gotCmd = cmd
			return models.RunResult{OK: true}
		},
	}
	svc := newTestCommandsService(run, config.Runner{})

	_, _, err := svc.Run(context.Background(), models.RunRequest{Command: "uptime"})
	require.NoError(t, err)
	assert.Equal(t, "uptime", gotCmd)
}

// TestRun_Sequence verifies sequence dispatch including stop_on_error.
func TestRun_Sequence(t *testing.T) {
	var gotCmds []string
	var gotStop bool
	run := &mockRunner{
		runSeqFn: func(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult {
			gotCmds, gotStop = cmds, stopOnError
			return models.RunSequenceResult{OK: true}
		},
	}
	svc := newTestCommandsService(run, config.Runner{})

	single, seq, err := svc.Run(context.Background(), models.RunRequest{
		Cmds:        []string{"echo a", "echo b"},
		StopOnError: true,
	})
	require.NoError(t, err)
	assert.Nil(t, single)
	require.NotNil(t, seq)

	assert.Equal(t, []string{"echo a", "echo b"}, gotCmds)
	assert.True(t, gotStop)
}

// TestRun_CmdArrayIsSequence verifies `cmd` given as an array runs as a
// sequence.
func TestRun_CmdArrayIsSequence(t *testing.T) {
	run := &mockRunner{
		runSeqFn: func(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult {
			return models.RunSequenceResult{OK: true, Results: make([]models.RunResult, len(cmds))}
		},
	}
	svc := newTestCommandsService(run, config.Runner{})

	_, seq, err := svc.Run(context.Background(), models.RunRequest{
		Cmd: models.FlexCommand{Values: []string{"echo a", "echo b"}, IsArray: true},
	})
	require.NoError(t, err)
	require.NotNil(t, seq)
	assert.Len(t, seq.Results, 2)
}

// TestRun_OneElementCmdArrayIsSequence verifies a one-element `cmd` array
// still returns the aggregate results shape, matching the request shape.
func TestRun_OneElementCmdArrayIsSequence(t *testing.T) {
	var gotCmds []string
	run := &mockRunner{
		runSeqFn: func(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult {
			gotCmds = cmds
			return models.RunSequenceResult{OK: true, Results: make([]models.RunResult, len(cmds))}
		},
	}
	svc := newTestCommandsService(run, config.Runner{})

	single, seq, err := svc.Run(context.Background(), models.RunRequest{
		Cmd: models.FlexCommand{Values: []string{"ls"}, IsArray: true},
	})
	require.NoError(t, err)
	assert.Nil(t, single)
	require.NotNil(t, seq)
	assert.Equal(t, []string{"ls"}, gotCmds)
	assert.Len(t, seq.Results, 1)
}

// TestRun_MissingCommand verifies the validation sentinel.
func TestRun_MissingCommand(t *testing.T) {
	svc := newTestCommandsService(&mockRunner{}, config.Runner{})

	_, _, err := svc.Run(context.Background(), models.RunRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestRun_DefaultTimeoutFromConfig verifies the configured default applies
// when the request does not set one.
func TestRun_DefaultTimeoutFromConfig(t *testing.T) {
	var gotTimeout time.Duration
	run := &mockRunner{
		runFn: func(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult {
			gotTimeout = timeout
			return models.RunResult{OK: true}
		},
	}
	svc := newTestCommandsService(run, config.Runner{DefaultTimeout: time.Minute})

	_, _, err := svc.Run(context.Background(), models.RunRequest{Command: "true"})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, gotTimeout)
}
