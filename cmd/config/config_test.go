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

package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanity-io/litter"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs/v4"
	"github.com/twpayne/go-vfs/v4/vfst"

	. "github.com/rancher/consolehelper/cmd/config"
	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/mocks"
	"github.com/rancher/consolehelper/pkg/types"
)

var _ = Describe("Config", Label("config"), func() {
	var fs vfs.FS
	var cleanup func()
	var opener *mocks.FakeOpener
	var err error

	BeforeEach(func() {
		opener = mocks.NewFakeOpener(mocks.NewFakeConsole(80, 25, 24))
		fs, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/etc/consolehelper/config.yaml": "console:\n  source: Device\n  device: /dev/tty3\ncursor:\n  bounds: ' EXCLUSIVE '\n",
			"/etc/consolehelper/config.d/10-requery.yaml": "cursor:\n  requery: true\n",
			"/etc/consolehelper/config.d/20-bounds.yaml":  "cursor:\n  bounds: inclusive\n",
			"/etc/consolehelper/config.d/README":          "not a config file",
			"/etc/single/config.yaml":                     "console:\n  source: device\n",
			"/etc/broken/config.yaml":                     "console: [source\n",
			"/etc/invalid/config.yaml":                    "console:\n  source: pipe\n  device: /dev/tty3\ncursor:\n  bounds: sideways\n",
			"/etc/withenv/consolehelper.env":              "CONSOLEHELPER_CURSOR_BOUNDS=exclusive\n",
		})
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		viper.Reset()
		cleanup()
		for _, env := range []string{
			"CONSOLEHELPER_CONSOLE_SOURCE",
			"CONSOLEHELPER_CURSOR_BOUNDS",
			"CONSOLEHELPER_CURSOR_REQUERY",
		} {
			Expect(os.Unsetenv(env)).To(Succeed())
		}
	})

	rawDir := func(dir string) string {
		path, err := fs.RawPath(dir)
		Expect(err).ShouldNot(HaveOccurred())
		return path
	}

	Describe("Run config", Label("run"), func() {
		It("sets the defaults without a config dir", func() {
			cfg, err := ReadConfigRun("", nil, opener)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Console.Source).To(Equal(types.StdoutSource))
			Expect(cfg.Console.Device).To(BeEmpty())
			Expect(cfg.Cursor.Bounds).To(Equal(types.InclusiveBounds))
			Expect(cfg.Cursor.Requery).To(BeFalse())
			Expect(cfg.Opener).To(Equal(opener))
		})
		It("keeps the defaults if the config dir does not exist", func() {
			cfg, err := ReadConfigRun(rawDir("/none"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Console.Source).To(Equal(types.StdoutSource))
		})
		It("reads and normalizes config.yaml", func() {
			cfg, err := ReadConfigRun(rawDir("/etc/single"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred(), litter.Sdump(cfg))
			Expect(cfg.Console.Source).To(Equal(types.DeviceSource))
			Expect(cfg.Cursor.Bounds).To(Equal(types.InclusiveBounds))
		})
		It("overrides config.yaml with config.d files in lexical order", func() {
			cfg, err := ReadConfigRun(rawDir("/etc/consolehelper"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred(), litter.Sdump(cfg))
			Expect(cfg.Console.Source).To(Equal(types.DeviceSource))
			Expect(cfg.Console.Device).To(Equal("/dev/tty3"))
			Expect(cfg.Cursor.Requery).To(BeTrue())
			Expect(cfg.Cursor.Bounds).To(Equal(types.InclusiveBounds))
		})
		It("overrides config files with env values", Label("env"), func() {
			Expect(os.Setenv("CONSOLEHELPER_CURSOR_BOUNDS", "Exclusive")).To(Succeed())
			Expect(os.Setenv("CONSOLEHELPER_CURSOR_REQUERY", "false")).To(Succeed())
			cfg, err := ReadConfigRun(rawDir("/etc/consolehelper"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred(), litter.Sdump(cfg))
			Expect(cfg.Cursor.Bounds).To(Equal(types.ExclusiveBounds))
			Expect(cfg.Cursor.Requery).To(BeFalse())
		})
		It("loads the env file of the config dir", Label("env"), func() {
			cfg, err := ReadConfigRun(rawDir("/etc/withenv"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred(), litter.Sdump(cfg))
			Expect(cfg.Cursor.Bounds).To(Equal(types.ExclusiveBounds))
		})
		It("does not override the environment with the env file", Label("env"), func() {
			Expect(os.Setenv("CONSOLEHELPER_CURSOR_BOUNDS", "inclusive")).To(Succeed())
			cfg, err := ReadConfigRun(rawDir("/etc/withenv"), nil, opener)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Cursor.Bounds).To(Equal(types.InclusiveBounds))
		})
		It("overrides env values with flags", Label("flags"), func() {
			flags := pflag.NewFlagSet("testflags", 1)
			flags.String("console-source", "", "testing flag")
			flags.String("bounds", "", "testing flag")
			flags.Bool("requery", false, "testing flag")
			Expect(flags.Set("console-source", "stdout")).To(Succeed())
			Expect(flags.Set("requery", "true")).To(Succeed())
			Expect(os.Setenv("CONSOLEHELPER_CONSOLE_SOURCE", "device")).To(Succeed())
			Expect(os.Setenv("CONSOLEHELPER_CURSOR_BOUNDS", "exclusive")).To(Succeed())

			cfg, err := ReadConfigRun("", flags, opener)
			Expect(err).ShouldNot(HaveOccurred(), litter.Sdump(cfg))
			Expect(cfg.Console.Source).To(Equal(types.StdoutSource))
			Expect(cfg.Cursor.Requery).To(BeTrue())
			// unset flags do not shadow other sources
			Expect(cfg.Cursor.Bounds).To(Equal(types.ExclusiveBounds))
		})
		It("fails on a bad yaml file", func() {
			_, err := ReadConfigRun(rawDir("/etc/broken"), nil, opener)
			Expect(err).Should(HaveOccurred())
			Expect(chError.ExitCodeOf(err)).To(Equal(chError.ReadingConfig))
		})
		It("reports every invalid value", func() {
			cfg, err := ReadConfigRun(rawDir("/etc/invalid"), nil, opener)
			Expect(err).Should(HaveOccurred(), litter.Sdump(cfg))
			Expect(chError.ExitCodeOf(err)).To(Equal(chError.ReadingConfig))
			Expect(err.Error()).To(ContainSubstring("3 errors occurred"))
			Expect(err.Error()).To(ContainSubstring("invalid console source 'pipe'"))
			Expect(err.Error()).To(ContainSubstring("invalid bounds policy 'sideways'"))
		})
	})

	Describe("Logging", Label("log"), func() {
		It("sets the debug level", func() {
			viper.Set("debug", true)
			cfg, err := ReadConfigRun("", nil, opener)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(types.IsDebugLevel(cfg.Logger)).To(BeTrue())
		})
		It("writes to the log file", func() {
			logfile := rawDir("/var/log") + "/consolehelper.log"
			viper.Set("debug", true)
			viper.Set("quiet", true)
			viper.Set("logfile", logfile)
			cfg, err := ReadConfigRun("", nil, opener)
			Expect(err).ShouldNot(HaveOccurred())
			cfg.Logger.Infof("hello from the test")
			data, err := os.ReadFile(logfile)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("Effective config"))
			Expect(string(data)).To(ContainSubstring("hello from the test"))
		})
	})
})
