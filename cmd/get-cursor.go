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
	"fmt"

	"github.com/spf13/cobra"
)

func NewGetCursorCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:     "getCursor",
		Aliases: []string{"get-cursor"},
		Short:   "Print the cursor position as 'X Y'",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := newPositioner(cmd)
			if err != nil {
				return err
			}
			if relative, _ := cmd.Flags().GetBool("relative"); relative {
				x, y, err := p.RelativeCursorPosition()
				if err != nil {
					return err
				}
				fmt.Printf("%d %d", x, y)
				return nil
			}
			pos, err := p.CursorPosition()
			if err != nil {
				return err
			}
			fmt.Printf("%d %d", pos.X, pos.Y)
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("relative", false, "Print the position in the coordinates accepted by setCursor")
	return c
}

// register the subcommand into rootCmd
var _ = NewGetCursorCmd(rootCmd)
