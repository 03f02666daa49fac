//go:build windows

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
	"os"

	"golang.org/x/sys/windows"

	"github.com/rancher/consolehelper/pkg/types"
)

// screenBuffer is a Windows console screen buffer
type screenBuffer struct {
	handle windows.Handle
	logger types.Logger
}

// FromFile wraps a caller owned console file as a Console
func FromFile(f *os.File, logger types.Logger) types.Console {
	return FromHandle(windows.Handle(f.Fd()), logger)
}

// FromHandle wraps a caller owned console screen buffer handle as a Console
func FromHandle(handle windows.Handle, logger types.Logger) types.Console {
	return &screenBuffer{handle: handle, logger: logger}
}

func (o *Opener) openStdout() (types.Console, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, err
	}
	return FromHandle(h, o.logger), nil
}

// openDevice opens a console device such as CONOUT$. Device names are not
// file system paths, so the configured FS is not involved.
func (o *Opener) openDevice(name string) (types.Console, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return nil, err
	}
	return FromHandle(h, o.logger), nil
}

func (s *screenBuffer) ScreenBufferInfo() (types.ScreenBufferInfo, error) {
	var csbi windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(s.handle, &csbi); err != nil {
		return types.ScreenBufferInfo{}, err
	}
	return types.ScreenBufferInfo{
		Size:           types.Coord{X: csbi.Size.X, Y: csbi.Size.Y},
		CursorPosition: types.Coord{X: csbi.CursorPosition.X, Y: csbi.CursorPosition.Y},
		Window: types.SmallRect{
			Left:   csbi.Window.Left,
			Top:    csbi.Window.Top,
			Right:  csbi.Window.Right,
			Bottom: csbi.Window.Bottom,
		},
		MaximumWindowSize: types.Coord{X: csbi.MaximumWindowSize.X, Y: csbi.MaximumWindowSize.Y},
	}, nil
}

func (s *screenBuffer) CursorPosition() (types.Coord, error) {
	info, err := s.ScreenBufferInfo()
	if err != nil {
		return types.Coord{}, err
	}
	return info.CursorPosition, nil
}

func (s *screenBuffer) SetCursorPosition(pos types.Coord) error {
	return windows.SetConsoleCursorPosition(s.handle, windows.Coord{X: pos.X, Y: pos.Y})
}
