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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher/consolehelper/pkg/constants"
	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/types"
)

// legacyOptions are the options every consolehelper version understands
var legacyOptions = []string{"printNumberOfRows", "printNumberOfColumns", "setCursor <x> <y>"}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.ProgName,
		Short: "Query the console window geometry and position its cursor",
		RunE: func(_ *cobra.Command, _ []string) error {
			return chError.New(
				fmt.Sprintf("no options passed, valid options are: %s", strings.Join(legacyOptions, ", ")),
				chError.InvalidArgumentCount,
			)
		},
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().String("config-dir", "", "Set config dir")
	cmd.PersistentFlags().String("logfile", "", "Set logfile")
	cmd.PersistentFlags().Bool("quiet", false, "Do not output logs to stderr")
	_ = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("config-dir", cmd.PersistentFlags().Lookup("config-dir"))
	_ = viper.BindPFlag("logfile", cmd.PersistentFlags().Lookup("logfile"))
	_ = viper.BindPFlag("quiet", cmd.PersistentFlags().Lookup("quiet"))

	// console and cursor flags are bound by the config reader only when set
	cmd.PersistentFlags().Var(
		newEnumFlag(types.ConsoleSources(), constants.DefaultSource), "console-source",
		fmt.Sprintf("How to acquire the console: %s", strings.Join(types.ConsoleSources(), ", ")),
	)
	cmd.PersistentFlags().String("console-device", "", "Console device opened by the device source (default: platform console)")
	cmd.PersistentFlags().Var(
		newEnumFlag(types.BoundsPolicies(), constants.DefaultBounds), "bounds",
		fmt.Sprintf("Whether the window size is a valid cursor coordinate: %s", strings.Join(types.BoundsPolicies(), ", ")),
	)
	cmd.PersistentFlags().Bool("requery", false, "Query the console again for every bound check")
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// callers capture stdout, errors and usage are reported there too
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stdout)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode returns the exit code carried by err. Errors raised by cobra
// itself are usage errors.
func exitCode(err error) int {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return chError.UnknownOption
}
