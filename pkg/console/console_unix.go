//go:build !windows

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

package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rancher/consolehelper/pkg/constants"
	"github.com/rancher/consolehelper/pkg/types"
)

// terminal is a console on a terminal without a console API. The visible
// window is the whole addressable buffer.
type terminal struct {
	file   *os.File
	logger types.Logger
}

// FromFile wraps a caller owned terminal file as a Console
func FromFile(f *os.File, logger types.Logger) types.Console {
	return &terminal{file: f, logger: logger}
}

func (o *Opener) openStdout() (types.Console, error) {
	return FromFile(os.Stdout, o.logger), nil
}

func (o *Opener) openDevice(name string) (types.Console, error) {
	f, err := o.fs.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return FromFile(f, o.logger), nil
}

func (t *terminal) fd() int {
	return int(t.file.Fd())
}

func (t *terminal) ScreenBufferInfo() (types.ScreenBufferInfo, error) {
	if !term.IsTerminal(t.fd()) {
		return types.ScreenBufferInfo{}, fmt.Errorf("%s is not a terminal", t.file.Name())
	}
	cols, rows, err := term.GetSize(t.fd())
	if err != nil {
		return types.ScreenBufferInfo{}, err
	}
	size := types.Coord{X: int16(cols), Y: int16(rows)}
	return types.ScreenBufferInfo{
		Size:              size,
		MaximumWindowSize: size,
		Window: types.SmallRect{
			Right:  int16(cols - 1),
			Bottom: int16(rows - 1),
		},
	}, nil
}

// CursorPosition asks the terminal for a cursor position report. The
// terminal is switched to raw mode while waiting for the answer.
func (t *terminal) CursorPosition() (types.Coord, error) {
	if !term.IsTerminal(t.fd()) {
		return types.Coord{}, fmt.Errorf("%s is not a terminal", t.file.Name())
	}
	state, err := term.MakeRaw(t.fd())
	if err != nil {
		return types.Coord{}, fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(t.fd(), state); err != nil {
			t.logger.Warnf("Could not restore terminal state: %s", err.Error())
		}
	}()

	if _, err = io.WriteString(t.file, constants.CursorReportRequest); err != nil {
		return types.Coord{}, err
	}
	report, err := readCursorReport(t.file)
	if err != nil {
		return types.Coord{}, err
	}
	t.logger.Debugf("Cursor position report: %q", report)
	return parseCursorReport(report)
}

func (t *terminal) SetCursorPosition(pos types.Coord) error {
	_, err := fmt.Fprintf(t.file, constants.CursorPositionFmt, int(pos.Y)+1, int(pos.X)+1)
	return err
}
