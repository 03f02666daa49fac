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

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rancher/consolehelper/pkg/config"
	"github.com/rancher/consolehelper/pkg/constants"
	chError "github.com/rancher/consolehelper/pkg/error"
	"github.com/rancher/consolehelper/pkg/types"
)

// flagKeys maps command line flags to the config keys they override
var flagKeys = map[string]string{
	"console-source": "console.source",
	"console-device": "console.device",
	"bounds":         "cursor.bounds",
	"requery":        "cursor.requery",
}

// normalizeEnumHook lowercases and trims values decoded into the enum config types
func normalizeEnumHook() mapstructure.DecodeHookFuncType {
	enums := map[reflect.Type]bool{
		reflect.TypeOf(types.ConsoleSource("")): true,
		reflect.TypeOf(types.BoundsPolicy("")):  true,
	}
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || !enums[t] {
			return data, nil
		}
		return strings.ToLower(strings.TrimSpace(data.(string))), nil
	}
}

func setupLogger(cfg *types.Config) {
	// Set debug level
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(types.DebugLevel())
	}

	// Set formatter so both file and stderr format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	var output io.Writer = os.Stderr
	if viper.GetBool("quiet") {
		output = io.Discard
	}

	// Logfile
	logfile := viper.GetString("logfile")
	if logfile != "" {
		sink := &lumberjack.Logger{
			Filename:   logfile,
			MaxSize:    constants.LogFileMaxSize,
			MaxBackups: constants.LogFileBackups,
			MaxAge:     constants.LogFileMaxAge,
		}
		if viper.GetBool("quiet") { // if quiet is set, only set the log to the file
			output = sink
		} else { // else set it to both stderr and the file
			output = io.MultiWriter(os.Stderr, sink)
		}
	}
	cfg.Logger.SetOutput(output)
}

// loadEnvFile exports the variables of the env file in configDir, if any.
// Variables already present in the environment are kept.
func loadEnvFile(cfg *types.Config, configDir string) (string, error) {
	envFile := filepath.Join(configDir, constants.EnvFileName)
	if _, err := cfg.Fs.Stat(envFile); err != nil {
		return "", nil
	}
	path, err := cfg.Fs.RawPath(envFile)
	if err != nil {
		return "", err
	}
	if err = godotenv.Load(path); err != nil {
		return "", fmt.Errorf("loading env file %s: %w", envFile, err)
	}
	return envFile, nil
}

// mergeConfigFiles merges config.yaml and then every config.d yaml file in
// lexical order, later files override earlier ones.
func mergeConfigFiles(cfg *types.Config, configDir string) error {
	files := []string{}
	cfgFile := filepath.Join(configDir, constants.ConfigFileName)
	if _, err := cfg.Fs.Stat(cfgFile); err == nil {
		files = append(files, cfgFile)
	}

	// Load extra config files on configdir/config.d/ so we can override config values
	cfgExtra := filepath.Join(configDir, constants.ConfigExtraDir)
	if entries, err := cfg.Fs.ReadDir(cfgExtra); err == nil {
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
				continue
			}
			files = append(files, filepath.Join(cfgExtra, e.Name()))
		}
	}

	for _, f := range files {
		path, err := cfg.Fs.RawPath(f)
		if err != nil {
			return err
		}
		cfg.Logger.Debugf("Merging config file %s", f)
		viper.SetConfigFile(path)
		viper.SetConfigType("yaml")
		if err = viper.MergeInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", f, err)
		}
	}
	return nil
}

// bindFlags binds the explicitly set flags so they take precedence over any other source
func bindFlags(flags *pflag.FlagSet) {
	if flags == nil {
		return
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f != nil && f.Changed {
			_ = viper.BindPFlag(key, f)
		}
	}
}

// ReadConfigRun builds the runtime configuration out of the config dir, the
// environment and the given flags. A nil opener selects the platform console.
func ReadConfigRun(configDir string, flags *pflag.FlagSet, opener types.ConsoleOpener) (*types.Config, error) {
	cfg := config.NewConfig(
		config.WithLogger(types.NewLogger()),
		config.WithOpener(opener),
	)

	var envFile string
	var err error
	if configDir != "" {
		envFile, err = loadEnvFile(cfg, configDir)
		if err != nil {
			return cfg, chError.NewFromError(err, chError.ReadingConfig)
		}
	}

	// Set the prefix for vars so we get only the ones starting with CONSOLEHELPER
	viper.SetEnvPrefix(constants.EnvPrefix)
	replacer := strings.NewReplacer(".", "_", "-", "_")
	viper.SetEnvKeyReplacer(replacer)
	// Nested keys are only matched by AutomaticEnv once they are known, bind them explicitly
	for key, env := range constants.GetConfigKeyEnvMap() {
		_ = viper.BindEnv(key, fmt.Sprintf("%s_%s", constants.EnvPrefix, env))
	}
	viper.AutomaticEnv() // read in environment variables that match

	setupLogger(cfg)
	if envFile != "" {
		cfg.Logger.Debugf("Loaded environment from %s", envFile)
	}

	if configDir != "" {
		if err = mergeConfigFiles(cfg, configDir); err != nil {
			return cfg, chError.NewFromError(err, chError.ReadingConfig)
		}
	}

	bindFlags(flags)

	// unmarshal all the vars into the config object
	err = viper.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		normalizeEnumHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return cfg, chError.NewFromError(fmt.Errorf("decoding config: %w", err), chError.ReadingConfig)
	}

	if err = cfg.Sanitize(); err != nil {
		return cfg, chError.NewFromError(err, chError.ReadingConfig)
	}
	cfg.Logger.Debugf("Effective config: console=%+v cursor=%+v", cfg.Console, cfg.Cursor)
	return cfg, nil
}
