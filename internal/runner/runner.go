// Package runner executes shell commands on behalf of the /run endpoint.
// Commands go through `sh -c` so pipes, globs, and env expansion behave the
// same as in an interactive shell. A non-zero exit is a normal result, not
// an error: errors are reserved for the runner itself failing.
package runner

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os/exec"
	"time"

	"github.com/MKhiriev/personal-server/internal/logger"
	"github.com/MKhiriev/personal-server/models"
)

// Runner executes single commands and command sequences.
type Runner interface {
	// Run executes one command and always returns a result, even on
	// timeout or start failure.
	Run(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult

	// RunSequence executes commands in order. When stopOnError is true the
	// sequence aborts after the first failing command; results of skipped
	// commands are not reported.
	RunSequence(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult
}

type shellRunner struct {
	logger *logger.Logger
}

// NewShellRunner constructs the default `sh -c` backed [Runner].
func NewShellRunner(logger *logger.Logger) Runner {
	return &shellRunner{logger: logger}
}

func (s *shellRunner) Run(ctx context.Context, cmd string, timeout time.Duration, cwd string) models.RunResult {
	runCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(runCtx, "sh", "-c", cmd)
	command.Dir = cwd
	command.Stdout = &stdout
	command.Stderr = &stderr

	start := time.Now()
	err := command.Run()
	duration := roundSeconds(time.Since(start))

	result := models.RunResult{
		Stdout:      stdout.String(),
		Stderr:      stderr.String(),
		DurationSec: duration,
	}

	switch {
	case err == nil:
		code := 0
		result.OK = true
		result.Code = &code

	case runCtx.Err() != nil:
		// killed by deadline or caller cancellation; no exit code exists
		result.Stderr += "\nTIMEOUT"
		s.logger.Warn().Str("cmd", cmd).Dur("timeout", timeout).Msg("command timed out")

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			result.Code = &code
		} else {
			// the command never started (bad cwd, missing shell)
			result.Stderr += "ERROR: " + err.Error()
		}
	}

	return result
}

func (s *shellRunner) RunSequence(ctx context.Context, cmds []string, timeout time.Duration, cwd string, stopOnError bool) models.RunSequenceResult {
	aggregate := models.RunSequenceResult{
		OK:      true,
		Results: make([]models.RunResult, 0, len(cmds)),
	}

	for _, cmd := range cmds {
		result := s.Run(ctx, cmd, timeout, cwd)
		aggregate.Results = append(aggregate.Results, result)

		if !result.OK {
			aggregate.OK = false
			if stopOnError {
				break
			}
		}
	}

	return aggregate
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*10000) / 10000
}
