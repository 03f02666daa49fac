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

package types

// Coord is a character cell position. Coordinates are 16 bit signed values,
// the width the console APIs accept.
type Coord struct {
	X int16 `yaml:"x"`
	Y int16 `yaml:"y"`
}

// SmallRect holds the inclusive corners of a rectangle of character cells.
type SmallRect struct {
	Left   int16 `yaml:"left"`
	Top    int16 `yaml:"top"`
	Right  int16 `yaml:"right"`
	Bottom int16 `yaml:"bottom"`
}

// ScreenBufferInfo is a snapshot of a console screen buffer. Window is the
// visible part of the buffer, in buffer absolute coordinates.
type ScreenBufferInfo struct {
	Size              Coord     `yaml:"size"`
	CursorPosition    Coord     `yaml:"cursor"`
	Window            SmallRect `yaml:"window"`
	MaximumWindowSize Coord     `yaml:"maximum-window-size"`
}

// Console is a handle to an active console output buffer
type Console interface {
	ScreenBufferInfo() (ScreenBufferInfo, error)
	CursorPosition() (Coord, error)
	SetCursorPosition(pos Coord) error
}

// ConsoleOpener acquires a Console following the given settings
type ConsoleOpener interface {
	Open(settings ConsoleSettings) (Console, error)
}
