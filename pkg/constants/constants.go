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

package constants

import (
	"runtime"

	"github.com/rancher/consolehelper/pkg/types"
)

const (
	ProgName        = "consolehelper"
	EnvPrefix       = "CONSOLEHELPER"
	ConfigFileName  = "config.yaml"
	ConfigExtraDir  = "config.d"
	EnvFileName     = "consolehelper.env"
	DefaultSource   = string(types.StdoutSource)
	DefaultBounds   = string(types.InclusiveBounds)
	WindowsGOOS     = "windows"
	UnixConsoleDev  = "/dev/tty"
	WindowsConsole  = "CONOUT$"
	LogFileMaxSize  = 5 // megabytes
	LogFileBackups  = 3
	LogFileMaxAge   = 28 // days
	CursorReportMax = 32 // bytes read while waiting for a cursor position report

	// ANSI sequences used on terminals without a console API
	CursorPositionFmt   = "\x1b[%d;%dH"
	CursorReportRequest = "\x1b[6n"
	CursorReportFmt     = "\x1b[%d;%dR"
)

// GetDefaultConsoleDevice returns the name of the console device opened by the device source
func GetDefaultConsoleDevice() string {
	if runtime.GOOS == WindowsGOOS {
		return WindowsConsole
	}
	return UnixConsoleDev
}

// GetConfigKeyEnvMap returns environment variable bindings for nested config keys
func GetConfigKeyEnvMap() map[string]string {
	return map[string]string{
		"console.source": "CONSOLE_SOURCE",
		"console.device": "CONSOLE_DEVICE",
		"cursor.bounds":  "CURSOR_BOUNDS",
		"cursor.requery": "CURSOR_REQUERY",
	}
}
