// Package errors provides sentinel errors and custom error types for the uprev tool.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that a path is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrUpstreamFileMissing indicates that a tracked file is absent from the upstream checkout
	ErrUpstreamFileMissing = errors.New("upstream file missing")

	// ErrPatchFailed indicates that a patch did not apply cleanly
	ErrPatchFailed = errors.New("patch failed to apply")

	// ErrRevisionMismatch indicates that the upstream checkout is not at the expected revision
	ErrRevisionMismatch = errors.New("upstream revision mismatch")
)

// UpstreamFileMissingError reports a file tracked by the output repository
// that does not exist under the upstream root.
type UpstreamFileMissingError struct {
	Path         string
	UpstreamRoot string
}

func (e *UpstreamFileMissingError) Error() string {
	return fmt.Sprintf("tracked file %s does not exist under upstream root %s", e.Path, e.UpstreamRoot)
}

// Is returns true if the target error is ErrUpstreamFileMissing
func (e *UpstreamFileMissingError) Is(target error) bool {
	return target == ErrUpstreamFileMissing
}

// NewUpstreamFileMissingError creates a new UpstreamFileMissingError
func NewUpstreamFileMissingError(path, upstreamRoot string) *UpstreamFileMissingError {
	return &UpstreamFileMissingError{Path: path, UpstreamRoot: upstreamRoot}
}

// PatchApplyError reports a patch file that failed to apply to the output tree.
type PatchApplyError struct {
	PatchFile string
	Err       error
}

func (e *PatchApplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("patch %s failed to apply: %v", e.PatchFile, e.Err)
	}
	return fmt.Sprintf("patch %s failed to apply", e.PatchFile)
}

func (e *PatchApplyError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrPatchFailed
func (e *PatchApplyError) Is(target error) bool {
	return target == ErrPatchFailed
}

// NewPatchApplyError creates a new PatchApplyError
func NewPatchApplyError(patchFile string, err error) *PatchApplyError {
	return &PatchApplyError{PatchFile: patchFile, Err: err}
}

// RevisionMismatchError reports an upstream checkout whose HEAD does not match
// the revision the caller pinned.
type RevisionMismatchError struct {
	Expected string
	Actual   string
}

func (e *RevisionMismatchError) Error() string {
	return fmt.Sprintf("upstream checkout is at %s, expected %s", e.Actual, e.Expected)
}

// Is returns true if the target error is ErrRevisionMismatch
func (e *RevisionMismatchError) Is(target error) bool {
	return target == ErrRevisionMismatch
}

// NewRevisionMismatchError creates a new RevisionMismatchError
func NewRevisionMismatchError(expected, actual string) *RevisionMismatchError {
	return &RevisionMismatchError{Expected: expected, Actual: actual}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
