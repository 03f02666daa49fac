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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher/consolehelper/cmd/config"
	"github.com/rancher/consolehelper/pkg/consoleinfo"
	"github.com/rancher/consolehelper/pkg/cursor"
	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/types"
)

// consoleOpener replaces the platform console opener when set
var consoleOpener types.ConsoleOpener

// readConfig reads the runtime configuration for cmd
func readConfig(cmd *cobra.Command) (*types.Config, error) {
	cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), consoleOpener)
	if err != nil {
		if cfg != nil {
			cfg.Logger.Errorf("Error reading config: %s", err)
		}
		return nil, chError.NewFromError(err, chError.ReadingConfig)
	}
	return cfg, nil
}

// openConsole acquires the console described by the configuration
func openConsole(cfg *types.Config) (types.Console, error) {
	c, err := cfg.Opener.Open(cfg.Console)
	if err != nil {
		cfg.Logger.Errorf("Error acquiring console: %s", err)
		return nil, chError.NewFromError(err, chError.ConsoleAcquire)
	}
	return c, nil
}

func newFetcher(cmd *cobra.Command) (*consoleinfo.Fetcher, *types.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	c, err := openConsole(cfg)
	if err != nil {
		return nil, nil, err
	}
	return consoleinfo.NewFetcher(c, cfg.Logger), cfg, nil
}

func newPositioner(cmd *cobra.Command) (*cursor.Positioner, error) {
	fetcher, cfg, err := newFetcher(cmd)
	if err != nil {
		return nil, err
	}
	return cursor.NewPositioner(
		fetcher.Console(), fetcher,
		cursor.WithLogger(cfg.Logger),
		cursor.WithBounds(cfg.Cursor.Bounds),
		cursor.WithRequery(cfg.Cursor.Requery),
	), nil
}
