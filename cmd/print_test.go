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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/mocks"
	"github.com/rancher/consolehelper/pkg/types"
)

var _ = Describe("Print commands", Label("print", "cmd"), func() {
	var console *mocks.FakeConsole
	var opener *mocks.FakeOpener

	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewPrintRowsCmd(rootCmd)
		_ = NewPrintColumnsCmd(rootCmd)
		_ = NewPrintBottomRowCmd(rootCmd)
		console = mocks.NewFakeConsole(80, 25, 124)
		opener = mocks.NewFakeOpener(console)
		consoleOpener = opener
	})
	AfterEach(func() {
		consoleOpener = nil
		viper.Reset()
	})
	It("prints the number of rows without a newline", func() {
		_, output, err := executeCommandC(rootCmd, "printNumberOfRows")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal("25"))
	})
	It("prints the same number of rows on every call", func() {
		for i := 0; i < 3; i++ {
			_, output, err := executeCommandC(rootCmd, "printNumberOfRows")
			Expect(err).ToNot(HaveOccurred())
			Expect(output).To(Equal("25"))
		}
	})
	It("ignores extra arguments", func() {
		_, output, err := executeCommandC(rootCmd, "printNumberOfRows", "whatever")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal("25"))
	})
	It("prints the number of columns", func() {
		_, output, err := executeCommandC(rootCmd, "printNumberOfColumns")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal("80"))
	})
	It("prints the bottom row", func() {
		_, output, err := executeCommandC(rootCmd, "bottom-row")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal("124"))
	})
	It("acquires the standard output console by default", func() {
		_, _, err := executeCommandC(rootCmd, "columns")
		Expect(err).ToNot(HaveOccurred())
		Expect(opener.GetSettings()).To(Equal([]types.ConsoleSettings{{Source: types.StdoutSource}}))
	})
	It("acquires the console device", Label("flags"), func() {
		_, _, err := executeCommandC(rootCmd, "rows", "--console-source", "device", "--console-device", "/dev/tty2")
		Expect(err).ToNot(HaveOccurred())
		Expect(opener.GetSettings()).To(Equal([]types.ConsoleSettings{{Source: types.DeviceSource, Device: "/dev/tty2"}}))
	})
	It("fails if the console cannot be acquired", func() {
		opener.Error = errors.New("no console attached")
		_, output, err := executeCommandC(rootCmd, "printNumberOfRows")
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(chError.ConsoleAcquire))
		Expect(output).To(ContainSubstring("no console attached"))
		Expect(output).ToNot(ContainSubstring("Usage:"))
	})
	It("fails if the console cannot be queried", func() {
		console.QueryError = errors.New("invalid handle")
		_, output, err := executeCommandC(rootCmd, "printNumberOfColumns")
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(chError.ConsoleQueryFailed))
		Expect(output).To(ContainSubstring("invalid handle"))
	})
})
