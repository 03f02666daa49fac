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
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	chError "github.com/rancher/consolehelper/pkg/error"
)

type enum struct {
	Allowed []string
	Value   string
}

// newEnum give a list of allowed flag parameters, where the second argument is the default
func newEnumFlag(allowed []string, d string) *enum {
	return &enum{
		Allowed: allowed,
		Value:   d,
	}
}

func (a enum) String() string {
	return a.Value
}

func (a *enum) Set(p string) error {
	isIncluded := func(opts []string, val string) bool {
		for _, opt := range opts {
			if val == opt {
				return true
			}
		}
		return false
	}
	p = strings.ToLower(p)
	if !isIncluded(a.Allowed, p) {
		return fmt.Errorf("'%s' is not included in: %s", p, strings.Join(a.Allowed, ","))
	}
	a.Value = p
	return nil
}

func (a *enum) Type() string {
	return "string"
}

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// splitArgs separates positional arguments from flags, negative integers are positional.
// Values of flags given as separate arguments are kept next to their flag.
func splitArgs(flags *pflag.FlagSet, args []string) (positional []string, flagArgs []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return append(positional, args[i+1:]...), flagArgs
		case a == "-" || !strings.HasPrefix(a, "-") || negativeInt.MatchString(a):
			positional = append(positional, a)
		default:
			flagArgs = append(flagArgs, a)
			if strings.Contains(a, "=") {
				continue
			}
			var f *pflag.Flag
			name := strings.TrimLeft(a, "-")
			if strings.HasPrefix(a, "--") {
				f = flags.Lookup(name)
			} else if len(name) == 1 {
				f = flags.ShorthandLookup(name)
			}
			if f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return positional, flagArgs
}

// parseRawArgs parses the flags of a command with flag parsing disabled and
// returns its positional arguments.
func parseRawArgs(cmd *cobra.Command, args []string) ([]string, error) {
	positional, flagArgs := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return nil, err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return nil, pflag.ErrHelp
	}
	return positional, nil
}

// parseCoordinates reads x and y from the first two arguments, further arguments are ignored
func parseCoordinates(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, chError.New("not enough arguments, usage: setCursor <x> <y>", chError.InvalidArgumentCount)
	}
	coords := make([]int, 2)
	for i, name := range []string{"x", "y"} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, 0, chError.New(fmt.Sprintf("invalid %s coordinate '%s', an integer is required", name, args[i]), chError.InvalidArgument)
		}
		coords[i] = v
	}
	return coords[0], coords[1], nil
}
