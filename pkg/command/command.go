/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package command runs external programs with a bounded lifetime and reports
// the outcome as a typed Result instead of an error-or-panic.
package command

//go:generate mockgen -destination=mock_runner.go -package=command github.com/mfreeman451/goesradar/pkg/command Runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const (
	// DefaultTimeout bounds every command unless the runner is built with another value.
	DefaultTimeout = 5 * time.Second

	// TimedOutMarker is the text reported in place of output when a command hits its deadline.
	TimedOutMarker = "Command timed out"
)

// Runner executes an external command and captures its text output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// Result is the outcome of one command invocation. Output holds stdout
// followed by stderr. Err is nil on success, otherwise it wraps one of
// ErrTimeout, ErrNotFound, ErrNonZeroExit, ErrCanceled or ErrExec.
type Result struct {
	Output   string
	ExitCode int
	Err      error
}

// OK reports whether the command ran to completion with exit status zero.
func (r Result) OK() bool {
	return r.Err == nil
}

// TimedOut reports whether the command was killed at its deadline.
func (r Result) TimedOut() bool {
	return errors.Is(r.Err, ErrTimeout)
}

// Text returns what a human should see for this invocation: the captured
// output, the timeout marker, or the error text when nothing was captured.
func (r Result) Text() string {
	switch {
	case r.TimedOut():
		return TimedOutMarker
	case r.Output != "":
		return r.Output
	case r.Err != nil:
		return r.Err.Error()
	default:
		return ""
	}
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct {
	timeout time.Duration
}

// NewExecRunner returns a runner that kills commands after timeout.
// A non-positive timeout selects DefaultTimeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ExecRunner{timeout: timeout}
}

// Run implements Runner.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{Output: stdout.String() + stderr.String()}
	if err == nil {
		return res
	}

	res.ExitCode = -1
	res.Err = classify(runCtx, name, err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && errors.Is(res.Err, ErrNonZeroExit) {
		res.ExitCode = exitErr.ExitCode()
	}

	return res
}

func classify(ctx context.Context, name string, err error) error {
	switch ctxErr := ctx.Err(); {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrTimeout, name)
	case errors.Is(ctxErr, context.Canceled):
		return fmt.Errorf("%w: %s", ErrCanceled, name)
	}

	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %s exited with status %d", ErrNonZeroExit, name, exitErr.ExitCode())
	}

	return fmt.Errorf("%w: %s: %w", ErrExec, name, err)
}
