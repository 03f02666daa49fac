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

package mocks

import (
	"errors"

	"github.com/rancher/consolehelper/pkg/types"
)

// FakeConsole is a console with scripted geometry that records every cursor
// position it is asked to set.
type FakeConsole struct {
	Info        types.ScreenBufferInfo
	QueryError  error
	CursorError error
	SetError    error
	// SideEffect runs before each screen buffer query, n counts the queries starting at 1
	SideEffect func(c *FakeConsole, n int)
	queries    int
	positions  []types.Coord
}

// NewFakeConsole returns a console whose visible window has the given size
// and ends at buffer row bottom.
func NewFakeConsole(columns, rows, bottom int) *FakeConsole {
	c := &FakeConsole{}
	c.Resize(columns, rows, bottom)
	return c
}

// Resize changes the visible window, keeping the cursor where it is
func (c *FakeConsole) Resize(columns, rows, bottom int) {
	c.Info.Window = types.SmallRect{
		Left:   0,
		Top:    int16(bottom - rows + 1),
		Right:  int16(columns - 1),
		Bottom: int16(bottom),
	}
	c.Info.Size = types.Coord{X: int16(columns), Y: int16(bottom + 1)}
	c.Info.MaximumWindowSize = types.Coord{X: int16(columns), Y: int16(rows)}
}

func (c *FakeConsole) ScreenBufferInfo() (types.ScreenBufferInfo, error) {
	c.queries++
	if c.SideEffect != nil {
		c.SideEffect(c, c.queries)
	}
	if c.QueryError != nil {
		return types.ScreenBufferInfo{}, c.QueryError
	}
	return c.Info, nil
}

func (c *FakeConsole) CursorPosition() (types.Coord, error) {
	if c.CursorError != nil {
		return types.Coord{}, c.CursorError
	}
	return c.Info.CursorPosition, nil
}

func (c *FakeConsole) SetCursorPosition(pos types.Coord) error {
	c.positions = append(c.positions, pos)
	if c.SetError != nil {
		return c.SetError
	}
	c.Info.CursorPosition = pos
	return nil
}

// Queries returns the number of screen buffer queries done so far
func (c FakeConsole) Queries() int {
	return c.queries
}

// GetPositions returns the cursor positions set so far, in call order
func (c FakeConsole) GetPositions() []types.Coord {
	return c.positions
}

// WasSetCalledWith checks the last cursor position set
func (c FakeConsole) WasSetCalledWith(x, y int16) bool {
	if len(c.positions) == 0 {
		return false
	}
	last := c.positions[len(c.positions)-1]
	return last.X == x && last.Y == y
}

// FakeOpener hands out a fixed console and records the settings it was asked for
type FakeOpener struct {
	Console  types.Console
	Error    error
	settings []types.ConsoleSettings
}

func NewFakeOpener(c types.Console) *FakeOpener {
	return &FakeOpener{Console: c}
}

func (o *FakeOpener) Open(settings types.ConsoleSettings) (types.Console, error) {
	o.settings = append(o.settings, settings)
	if o.Error != nil {
		return nil, o.Error
	}
	if o.Console == nil {
		return nil, errors.New("no console available")
	}
	return o.Console, nil
}

// GetSettings returns the settings of every Open call
func (o FakeOpener) GetSettings() []types.ConsoleSettings {
	return o.settings
}
