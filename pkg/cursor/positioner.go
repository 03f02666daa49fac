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

package cursor

import (
	"fmt"

	"github.com/rancher/consolehelper/pkg/consoleinfo"
	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/types"
)

// Positioner moves the console cursor to positions given relative to the
// visible window.
type Positioner struct {
	console types.Console
	fetcher *consoleinfo.Fetcher
	logger  types.Logger
	bounds  types.BoundsPolicy
	requery bool
}

// Option configures a Positioner
type Option func(p *Positioner)

// WithLogger sets the logger used for debug traces and truncation warnings
func WithLogger(logger types.Logger) Option {
	return func(p *Positioner) {
		p.logger = logger
	}
}

// WithBounds sets the policy applied to the right and bottom borders
func WithBounds(bounds types.BoundsPolicy) Option {
	return func(p *Positioner) {
		p.bounds = bounds
	}
}

// WithRequery makes every bound check query the console again instead of
// validating against a single snapshot.
func WithRequery(requery bool) Option {
	return func(p *Positioner) {
		p.requery = requery
	}
}

// NewPositioner returns a Positioner driving console. The fetcher must read
// the same console.
func NewPositioner(console types.Console, fetcher *consoleinfo.Fetcher, opts ...Option) *Positioner {
	p := &Positioner{
		console: console,
		fetcher: fetcher,
		logger:  types.NewNullLogger(),
		bounds:  types.InclusiveBounds,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// metrics serves the window metrics used by a single positioning request
type metrics struct {
	rows      func() (int, error)
	columns   func() (int, error)
	bottomRow func() (int, error)
}

func (p *Positioner) metrics() (metrics, error) {
	if p.requery {
		return metrics{
			rows:      p.fetcher.VisibleRowCount,
			columns:   p.fetcher.VisibleColumnCount,
			bottomRow: p.fetcher.BottomAbsoluteRow,
		}, nil
	}
	m, err := p.fetcher.Metrics()
	if err != nil {
		return metrics{}, err
	}
	return metrics{
		rows:      func() (int, error) { return m.Rows, nil },
		columns:   func() (int, error) { return m.Columns, nil },
		bottomRow: func() (int, error) { return m.BottomRow, nil },
	}, nil
}

func (p *Positioner) exceeds(v, limit int) bool {
	if p.bounds == types.ExclusiveBounds {
		return v >= limit
	}
	return v > limit
}

// SetRelativeCursorPosition moves the cursor to x|y relative to the top left
// corner of the visible window. Borders are checked in the order left, right,
// top, bottom and the first crossed one is reported; the cursor is not moved
// in that case.
func (p *Positioner) SetRelativeCursorPosition(x, y int) error {
	// the left border needs no console query
	if x < 0 {
		return p.reject(chError.LeftEdge, x)
	}
	m, err := p.metrics()
	if err != nil {
		return err
	}
	columns, err := m.columns()
	if err != nil {
		return err
	}
	if p.exceeds(x, columns) {
		return p.reject(chError.RightEdge, x)
	}

	if y < 0 {
		return p.reject(chError.TopEdge, y)
	}
	rows, err := m.rows()
	if err != nil {
		return err
	}
	if p.exceeds(y, rows) {
		return p.reject(chError.BottomEdge, y)
	}

	if p.requery {
		if rows, err = m.rows(); err != nil {
			return err
		}
	}
	bottom, err := m.bottomRow()
	if err != nil {
		return err
	}
	absoluteY := bottom - rows + y
	p.logger.Debugf("Relative cursor position %d|%d is absolute position %d|%d", x, y, x, absoluteY)

	return p.setAbsoluteCursorPosition(x, absoluteY)
}

func (p *Positioner) reject(edge chError.Edge, value int) error {
	err := chError.NewCursorOutOfBounds(edge, value)
	p.logger.Debugf("Rejected cursor position: %s", err.Error())
	return err
}

// setAbsoluteCursorPosition moves the cursor to x|y in buffer coordinates.
// Values outside of the 16 bit coordinate range are truncated.
func (p *Positioner) setAbsoluteCursorPosition(x, y int) error {
	pos := types.Coord{X: int16(x), Y: int16(y)}
	if int(pos.X) != x || int(pos.Y) != y {
		p.logger.Warnf("Cursor position %d|%d exceeds the console coordinate range, truncated to %d|%d", x, y, pos.X, pos.Y)
	}
	if err := p.console.SetCursorPosition(pos); err != nil {
		return chError.NewFromError(
			fmt.Errorf("setting console cursor position: %w", err), chError.ConsoleSetCursor,
		)
	}
	return nil
}

// CursorPosition returns the cursor position in buffer coordinates
func (p *Positioner) CursorPosition() (types.Coord, error) {
	pos, err := p.console.CursorPosition()
	if err != nil {
		return types.Coord{}, chError.NewFromError(
			fmt.Errorf("querying console cursor position: %w", err), chError.ConsoleQueryFailed,
		)
	}
	return pos, nil
}

// RelativeCursorPosition returns the cursor position in the coordinates
// accepted by SetRelativeCursorPosition.
func (p *Positioner) RelativeCursorPosition() (int, int, error) {
	pos, err := p.CursorPosition()
	if err != nil {
		return 0, 0, err
	}
	m, err := p.fetcher.Metrics()
	if err != nil {
		return 0, 0, err
	}
	return int(pos.X), int(pos.Y) - m.BottomRow + m.Rows, nil
}
