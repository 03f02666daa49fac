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

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ConsoleSource is the strategy used to acquire the console handle
type ConsoleSource string

const (
	// StdoutSource uses the handle of the process standard output
	StdoutSource ConsoleSource = "stdout"
	// DeviceSource opens the console device by name
	DeviceSource ConsoleSource = "device"
)

// ConsoleSources lists the accepted ConsoleSource values
func ConsoleSources() []string {
	return []string{string(StdoutSource), string(DeviceSource)}
}

// BoundsPolicy decides whether the window row and column counts are valid
// relative coordinates.
type BoundsPolicy string

const (
	// InclusiveBounds accepts x == columns and y == rows
	InclusiveBounds BoundsPolicy = "inclusive"
	// ExclusiveBounds only accepts zero based indexes inside the window
	ExclusiveBounds BoundsPolicy = "exclusive"
)

// BoundsPolicies lists the accepted BoundsPolicy values
func BoundsPolicies() []string {
	return []string{string(InclusiveBounds), string(ExclusiveBounds)}
}

type ConsoleSettings struct {
	Source ConsoleSource `yaml:"source" mapstructure:"source"`
	// Device is the console device opened by the device source, empty means the platform default
	Device string `yaml:"device,omitempty" mapstructure:"device"`
}

type CursorSettings struct {
	Bounds BoundsPolicy `yaml:"bounds" mapstructure:"bounds"`
	// Requery reads the console metrics again for every bound check instead of once per call
	Requery bool `yaml:"requery" mapstructure:"requery"`
}

// Config is the runtime configuration of a single consolehelper invocation
type Config struct {
	Logger  Logger          `yaml:"-"`
	Fs      FS              `yaml:"-"`
	Opener  ConsoleOpener   `yaml:"-"`
	Console ConsoleSettings `yaml:"console" mapstructure:"console"`
	Cursor  CursorSettings  `yaml:"cursor" mapstructure:"cursor"`
}

// Sanitize checks the consistency of the configuration and reports every problem found
func (c *Config) Sanitize() error {
	var errs error

	switch c.Console.Source {
	case StdoutSource, DeviceSource:
	default:
		errs = multierror.Append(errs, fmt.Errorf(
			"invalid console source '%s', valid values are: %s",
			c.Console.Source, strings.Join(ConsoleSources(), ","),
		))
	}
	if c.Console.Device != "" && c.Console.Source != DeviceSource {
		errs = multierror.Append(errs, fmt.Errorf("console device '%s' requires the '%s' console source", c.Console.Device, DeviceSource))
	}

	switch c.Cursor.Bounds {
	case InclusiveBounds, ExclusiveBounds:
	default:
		errs = multierror.Append(errs, fmt.Errorf(
			"invalid bounds policy '%s', valid values are: %s",
			c.Cursor.Bounds, strings.Join(BoundsPolicies(), ","),
		))
	}
	return errs
}
