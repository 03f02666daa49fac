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
	"bytes"
	"fmt"
	"io"

	"github.com/rancher/consolehelper/pkg/constants"
	"github.com/rancher/consolehelper/pkg/types"
)

// Opener acquires console handles. The acquired handles are process scoped,
// nothing closes them.
type Opener struct {
	fs     types.FS
	logger types.Logger
}

func NewOpener(fs types.FS, logger types.Logger) *Opener {
	return &Opener{fs: fs, logger: logger}
}

// Open acquires the console handle described by settings
func (o *Opener) Open(settings types.ConsoleSettings) (types.Console, error) {
	switch settings.Source {
	case types.StdoutSource, "":
		o.logger.Debugf("Acquiring console from the standard output handle")
		c, err := o.openStdout()
		if err != nil {
			return nil, fmt.Errorf("acquiring standard output console: %w", err)
		}
		return c, nil
	case types.DeviceSource:
		device := settings.Device
		if device == "" {
			device = constants.GetDefaultConsoleDevice()
		}
		o.logger.Debugf("Opening console device %s", device)
		c, err := o.openDevice(device)
		if err != nil {
			return nil, fmt.Errorf("opening console device %s: %w", device, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown console source '%s'", settings.Source)
	}
}

// parseCursorReport extracts the zero based cursor position from a
// 'CSI row ; col R' device status report.
func parseCursorReport(report []byte) (types.Coord, error) {
	start := bytes.LastIndex(report, []byte("\x1b["))
	if start < 0 {
		return types.Coord{}, fmt.Errorf("no cursor position report in %q", report)
	}
	var row, col int
	if _, err := fmt.Sscanf(string(report[start:]), constants.CursorReportFmt, &row, &col); err != nil {
		return types.Coord{}, fmt.Errorf("malformed cursor position report %q: %w", report[start:], err)
	}
	return types.Coord{X: int16(col - 1), Y: int16(row - 1)}, nil
}

// readCursorReport reads up to the 'R' terminating a cursor position report
func readCursorReport(r io.Reader) ([]byte, error) {
	report := make([]byte, 0, constants.CursorReportMax)
	b := make([]byte, 1)
	for len(report) < constants.CursorReportMax {
		n, err := r.Read(b)
		if err != nil {
			return nil, fmt.Errorf("reading cursor position report: %w", err)
		}
		if n == 0 {
			continue
		}
		report = append(report, b[0])
		if b[0] == 'R' {
			return report, nil
		}
	}
	return nil, fmt.Errorf("cursor position report exceeds %d bytes", constants.CursorReportMax)
}
