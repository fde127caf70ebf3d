// Copyright 2025 The liwca Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds produced by this module. The typed
// errors below match them with errors.Is.
var (
	// ErrFormat indicates malformed input encountered during a parse.
	ErrFormat = errors.New("malformed dictionary file")

	// ErrValidation indicates invalid Dictionary contents at write time.
	ErrValidation = errors.New("invalid dictionary")

	// ErrNotFound indicates an unknown registry name.
	ErrNotFound = errors.New("dictionary not found")

	// ErrIntegrity indicates a checksum mismatch after download.
	ErrIntegrity = errors.New("checksum mismatch")

	// ErrToolUnavailable indicates the external analysis tool could not be
	// located.
	ErrToolUnavailable = errors.New("analysis tool unavailable")

	// ErrToolExecution indicates the external analysis tool failed to
	// produce results.
	ErrToolExecution = errors.New("analysis tool execution failed")
)

// FormatError is returned when a dictionary file cannot be parsed.
type FormatError struct {
	// Line is the 1-based line number of the offending input, or zero when
	// the error is not tied to a single line.
	Line int

	// Msg describes the problem.
	Msg string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed dictionary file: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("malformed dictionary file: %s", e.Msg)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ValidationError is returned when a Dictionary cannot be written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid dictionary: %s", e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a name has no registry entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dictionary %q not found in registry", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IntegrityError is returned when downloaded bytes do not match the
// registry's recorded checksum.
type IntegrityError struct {
	Name string
	Want string
	Got  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("checksum mismatch for %q: want %s, got %s", e.Name, e.Want, e.Got)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// ToolUnavailableError is returned when the external analysis executable
// cannot be located.
type ToolUnavailableError struct {
	Name string
	Err  error
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("analysis tool %q unavailable: %v", e.Name, e.Err)
}

func (e *ToolUnavailableError) Is(target error) bool {
	return target == ErrToolUnavailable
}

func (e *ToolUnavailableError) Unwrap() error {
	return e.Err
}

// ToolExecutionError is returned when the external analysis process exits
// with a non-zero status or does not produce the expected results artifact.
type ToolExecutionError struct {
	Msg    string
	Stderr string
	Err    error
}

func (e *ToolExecutionError) Error() string {
	s := "analysis tool execution failed: " + e.Msg
	if e.Stderr != "" {
		s += ": " + e.Stderr
	}
	return s
}

func (e *ToolExecutionError) Is(target error) bool {
	return target == ErrToolExecution
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a registry lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIntegrity reports whether err is a checksum mismatch.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsFormat reports whether err is a parse failure.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsValidation reports whether err is a write-time validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
