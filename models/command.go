// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// RunRequest is the payload of POST /run. A single command is given via
// `cmd` (or its alias `command`); a sequence via `cmds` (or `commands`).
// When both are present the sequence wins.
type RunRequest struct {
	Cmd      FlexCommand `json:"cmd"`
	Command  string      `json:"command"`
	Cmds     []string    `json:"cmds"`
	Commands []string    `json:"commands"`

	// Timeout bounds each command's execution, in seconds. Zero means no
	// limit.
	Timeout float64 `json:"timeout"`

	// Cwd is the working directory for the command. Empty means the
	// server's working directory.
	Cwd string `json:"cwd"`

	// StopOnError aborts a sequence at the first failing command.
	StopOnError bool `json:"stop_on_error"`
}

// Sequence returns the list of commands to run in order, or nil when the
// request is a single-command request. `cmd` given as a JSON array always
// counts as a sequence, one-element arrays included.
func (r RunRequest) Sequence() []string {
	switch {
	case len(r.Cmds) > 0:
		return r.Cmds
	case len(r.Commands) > 0:
		return r.Commands
	case r.Cmd.IsArray && len(r.Cmd.Values) > 0:
		return r.Cmd.Values
	}
	return nil
}

// Single returns the single command string, empty when none was given.
func (r RunRequest) Single() string {
	if !r.Cmd.IsArray && len(r.Cmd.Values) == 1 {
		return r.Cmd.Values[0]
	}
	return r.Command
}

// Validate requires at least one command in either form.
func (r RunRequest) Validate() error {
	if len(r.Sequence()) == 0 && r.Single() == "" {
		return validation.Errors{"cmd": validation.ErrRequired.SetMessage("missing 'cmd' or 'cmds'")}
	}
	return nil
}

// RunResult is the outcome of one shell command.
type RunResult struct {
	// OK is true when the command ran to completion with exit code zero.
	OK bool `json:"ok"`

	// Code is the command's exit code. Nil when the command never produced
	// one (timeout or a failure to start).
	Code *int `json:"code"`

	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`

	// DurationSec is the wall-clock run time in seconds, rounded to four
	// decimal places.
	DurationSec float64 `json:"duration_sec"`
}

// RunSequenceResult aggregates the results of a command sequence.
type RunSequenceResult struct {
	// OK is true only when every executed command succeeded.
	OK bool `json:"ok"`

	Results []RunResult `json:"results"`
}
