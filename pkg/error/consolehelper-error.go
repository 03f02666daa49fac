/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package error

import (
	"errors"
	"fmt"
)

// ConsoleHelperError is our custom error to pass around exit codes in the error
type ConsoleHelperError struct {
	err  string
	code int
}

func (e *ConsoleHelperError) Error() string {
	return e.err
}

func (e *ConsoleHelperError) ExitCode() int {
	return e.code
}

// NewFromError generates a ConsoleHelperError from an existing error,
// maintaining its error message. Errors already carrying an exit code
// keep it.
func NewFromError(err error, code int) error {
	if err == nil {
		return nil
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return err
	}
	return &ConsoleHelperError{err: err.Error(), code: code}
}

// New generates a ConsoleHelperError from a string
func New(err string, code int) error {
	return &ConsoleHelperError{err: err, code: code}
}

// ExitCodeOf returns the exit code carried by err, Unknown if it carries none
// and 0 for a nil error.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return Unknown
}

// Edge names the console border a rejected cursor position crossed.
type Edge string

const (
	LeftEdge   Edge = "left"
	RightEdge  Edge = "right"
	TopEdge    Edge = "top"
	BottomEdge Edge = "bottom"
)

// CursorOutOfBoundsError is returned when a window relative cursor position
// lies outside the visible console window.
type CursorOutOfBoundsError struct {
	Edge  Edge
	Value int
}

func (e *CursorOutOfBoundsError) Error() string {
	axis := "x"
	if e.Edge == TopEdge || e.Edge == BottomEdge {
		axis = "y"
	}
	return fmt.Sprintf("The %s value exceeds the %s console border (%s = %d).", axis, e.Edge, axis, e.Value)
}

func (e *CursorOutOfBoundsError) ExitCode() int {
	return CursorOutOfBounds
}

// NewCursorOutOfBounds generates a CursorOutOfBoundsError for the given edge
func NewCursorOutOfBounds(edge Edge, value int) error {
	return &CursorOutOfBoundsError{Edge: edge, Value: value}
}
