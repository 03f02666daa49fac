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
)

func NewSetCursorCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:     "setCursor X Y",
		Aliases: []string{"set-cursor"},
		Short:   "Move the cursor to a position of the visible console window",
		Long: `Move the cursor to X|Y relative to the visible console window.

Y counts rows from the bottom row minus the number of visible rows, so 'setCursor 0 1'
is the top left corner of the window. Positions outside of the window are rejected.`,
		// negative coordinates must not be taken as flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, err := parseRawArgs(cmd, args)
			if err != nil {
				return err
			}
			x, y, err := parseCoordinates(args)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			p, err := newPositioner(cmd)
			if err != nil {
				return err
			}
			return p.SetRelativeCursorPosition(x, y)
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewSetCursorCmd(rootCmd)
