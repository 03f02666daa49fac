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

	"github.com/rancher/consolehelper/pkg/consoleinfo"
)

type metricFunc func(f *consoleinfo.Fetcher) (int, error)

// newPrintMetricCmd returns a command printing a single window metric, without a
// trailing newline. Extra arguments are ignored.
func newPrintMetricCmd(root *cobra.Command, use, alias, short string, metric metricFunc) *cobra.Command {
	c := &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			fetcher, _, err := newFetcher(cmd)
			if err != nil {
				return err
			}
			v, err := metric(fetcher)
			if err != nil {
				return err
			}
			fmt.Print(v)
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

func NewPrintRowsCmd(root *cobra.Command) *cobra.Command {
	return newPrintMetricCmd(
		root, "printNumberOfRows", "rows", "Print the number of rows of the visible console window",
		(*consoleinfo.Fetcher).VisibleRowCount,
	)
}

func NewPrintColumnsCmd(root *cobra.Command) *cobra.Command {
	return newPrintMetricCmd(
		root, "printNumberOfColumns", "columns", "Print the number of columns of the visible console window",
		(*consoleinfo.Fetcher).VisibleColumnCount,
	)
}

func NewPrintBottomRowCmd(root *cobra.Command) *cobra.Command {
	return newPrintMetricCmd(
		root, "printBottomRow", "bottom-row", "Print the buffer row shown at the bottom of the console window",
		(*consoleinfo.Fetcher).BottomAbsoluteRow,
	)
}

// register the subcommands into rootCmd
var _ = NewPrintRowsCmd(rootCmd)
var _ = NewPrintColumnsCmd(rootCmd)
var _ = NewPrintBottomRowCmd(rootCmd)
