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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	chError "github.com/rancher/consolehelper/pkg/error"
)

var _ = Describe("Flags", Label("flags", "cmd"), func() {
	Describe("splitArgs", func() {
		var flags *pflag.FlagSet
		BeforeEach(func() {
			flags = pflag.NewFlagSet("testflags", pflag.ContinueOnError)
			flags.String("bounds", "", "testing flag")
			flags.BoolP("quiet", "q", false, "testing flag")
			flags.StringP("logfile", "l", "", "testing flag")
		})
		It("keeps negative integers as positional arguments", func() {
			positional, flagArgs := splitArgs(flags, []string{"-1", "-20"})
			Expect(positional).To(Equal([]string{"-1", "-20"}))
			Expect(flagArgs).To(BeEmpty())
		})
		It("keeps flag values next to their flag", func() {
			positional, flagArgs := splitArgs(flags, []string{"--bounds", "exclusive", "-3", "-q", "4", "-l", "/tmp/log", "--bounds=inclusive"})
			Expect(positional).To(Equal([]string{"-3", "4"}))
			Expect(flagArgs).To(Equal([]string{"--bounds", "exclusive", "-q", "-l", "/tmp/log", "--bounds=inclusive"}))
		})
		It("takes everything after -- as positional", func() {
			positional, flagArgs := splitArgs(flags, []string{"-q", "--", "--bounds", "1"})
			Expect(positional).To(Equal([]string{"--bounds", "1"}))
			Expect(flagArgs).To(Equal([]string{"-q"}))
		})
	})
	Describe("parseCoordinates", func() {
		It("parses the first two arguments", func() {
			x, y, err := parseCoordinates([]string{"-4", "12", "ignored"})
			Expect(err).ToNot(HaveOccurred())
			Expect(x).To(Equal(-4))
			Expect(y).To(Equal(12))
		})
		It("fails with less than two arguments", func() {
			_, _, err := parseCoordinates([]string{"1"})
			Expect(err).To(HaveOccurred())
			Expect(chError.ExitCodeOf(err)).To(Equal(chError.InvalidArgumentCount))
		})
		It("fails on non integer values", func() {
			_, _, err := parseCoordinates([]string{"1.5", "2"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid x coordinate '1.5'"))
			Expect(chError.ExitCodeOf(err)).To(Equal(chError.InvalidArgument))
		})
	})
	Describe("enum", func() {
		It("accepts allowed values case insensitively", func() {
			e := newEnumFlag([]string{"inclusive", "exclusive"}, "inclusive")
			Expect(e.Set("Exclusive")).To(Succeed())
			Expect(e.String()).To(Equal("exclusive"))
			Expect(e.Set("both")).ToNot(Succeed())
			Expect(e.String()).To(Equal("exclusive"))
		})
	})
})
