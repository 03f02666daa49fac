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

package consoleinfo

import (
	"fmt"

	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/types"
)

// Metrics describes the visible console window. BottomRow is the buffer
// absolute index of the last visible row.
type Metrics struct {
	Rows      int `yaml:"rows"`
	Columns   int `yaml:"columns"`
	BottomRow int `yaml:"bottom-row"`
}

// Fetcher reads the live geometry of a console. Nothing is cached, every
// call queries the console again.
type Fetcher struct {
	console types.Console
	logger  types.Logger
}

// NewFetcher returns a Fetcher sharing the given console handle
func NewFetcher(console types.Console, logger types.Logger) *Fetcher {
	if logger == nil {
		logger = types.NewNullLogger()
	}
	return &Fetcher{console: console, logger: logger}
}

// NewDefaultFetcher acquires the standard output console with the given opener
func NewDefaultFetcher(opener types.ConsoleOpener, logger types.Logger) (*Fetcher, error) {
	c, err := opener.Open(types.ConsoleSettings{Source: types.StdoutSource})
	if err != nil {
		return nil, chError.NewFromError(err, chError.ConsoleAcquire)
	}
	return NewFetcher(c, logger), nil
}

// Console returns the console handle the fetcher reads from
func (f *Fetcher) Console() types.Console {
	return f.console
}

func (f *Fetcher) window() (types.SmallRect, error) {
	info, err := f.console.ScreenBufferInfo()
	if err != nil {
		return types.SmallRect{}, chError.NewFromError(
			fmt.Errorf("querying console screen buffer: %w", err), chError.ConsoleQueryFailed,
		)
	}
	f.logger.Debugf(
		"Console window: left=%d top=%d right=%d bottom=%d",
		info.Window.Left, info.Window.Top, info.Window.Right, info.Window.Bottom,
	)
	return info.Window, nil
}

func rows(w types.SmallRect) int {
	return int(w.Bottom) - int(w.Top) + 1
}

func columns(w types.SmallRect) int {
	return int(w.Right) - int(w.Left) + 1
}

// VisibleRowCount returns the number of rows of the visible window
func (f *Fetcher) VisibleRowCount() (int, error) {
	w, err := f.window()
	if err != nil {
		return 0, err
	}
	return rows(w), nil
}

// VisibleColumnCount returns the number of columns of the visible window
func (f *Fetcher) VisibleColumnCount() (int, error) {
	w, err := f.window()
	if err != nil {
		return 0, err
	}
	return columns(w), nil
}

// BottomAbsoluteRow returns the buffer row shown at the bottom of the visible window
func (f *Fetcher) BottomAbsoluteRow() (int, error) {
	w, err := f.window()
	if err != nil {
		return 0, err
	}
	return int(w.Bottom), nil
}

// Metrics returns all the window metrics from a single console query
func (f *Fetcher) Metrics() (Metrics, error) {
	w, err := f.window()
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{Rows: rows(w), Columns: columns(w), BottomRow: int(w.Bottom)}, nil
}
