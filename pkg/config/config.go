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

package config

import (
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher/consolehelper/pkg/console"
	"github.com/rancher/consolehelper/pkg/types"
)

type GenericOptions func(a *types.Config) error

func WithFs(fs types.FS) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Fs = fs
		return nil
	}
}

func WithLogger(logger types.Logger) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Logger = logger
		return nil
	}
}

func WithOpener(opener types.ConsoleOpener) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Opener = opener
		return nil
	}
}

func WithConsoleSettings(settings types.ConsoleSettings) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Console = settings
		return nil
	}
}

func WithCursorSettings(settings types.CursorSettings) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Cursor = settings
		return nil
	}
}

// NewConfig returns a Config with the defaults applied before the given options.
// It returns nil if any option fails.
func NewConfig(opts ...GenericOptions) *types.Config {
	log := types.NewLogger()

	c := &types.Config{
		Fs:     vfs.OSFS,
		Logger: log,
		Console: types.ConsoleSettings{
			Source: types.StdoutSource,
		},
		Cursor: types.CursorSettings{
			Bounds: types.InclusiveBounds,
		},
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	// delay opener creation after we have run over the options in case we use WithFs or WithLogger
	if c.Opener == nil {
		c.Opener = console.NewOpener(c.Fs, c.Logger)
	}
	return c
}
