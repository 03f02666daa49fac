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
	"gopkg.in/yaml.v3"

	"github.com/rancher/consolehelper/internal/version"
	"github.com/rancher/consolehelper/pkg/constants"
)

// shortCommit is the length of the abbreviated commit in the short version
const shortCommit = 7

func NewVersionCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Args:  cobra.ExactArgs(0),
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Get()
			if long, _ := cmd.Flags().GetBool("long"); long {
				out, err := yaml.Marshal(v)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
				return nil
			}
			s := v.Version
			if v.GitCommit != "" {
				commit := v.GitCommit
				if len(commit) > shortCommit {
					commit = commit[:shortCommit]
				}
				s = fmt.Sprintf("%s+g%s", s, commit)
			}
			fmt.Printf("%s %s\n", constants.ProgName, s)
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("long", false, "Print version, commit and Go version as YAML")
	return c
}

// register the subcommand into rootCmd
var _ = NewVersionCmd(rootCmd)
