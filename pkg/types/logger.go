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

package types

import (
	"bytes"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the logging surface used across consolehelper, satisfied by *logrus.Logger
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
	SetLevel(level log.Level)
	GetLevel() log.Level
	SetOutput(writer io.Writer)
	SetFormatter(formatter log.Formatter)
}

func DebugLevel() log.Level {
	return log.DebugLevel
}

func IsDebugLevel(l Logger) bool {
	return l.GetLevel() >= DebugLevel()
}

func newLogger(w io.Writer) Logger {
	l := log.New()
	l.SetOutput(w)
	return l
}

// NewLogger returns a logger writing to stderr, stdout carries command results
func NewLogger() Logger {
	return newLogger(os.Stderr)
}

// NewNullLogger discards everything
func NewNullLogger() Logger {
	return newLogger(io.Discard)
}

// NewBufferLogger writes into b
func NewBufferLogger(b *bytes.Buffer) Logger {
	return newLogger(b)
}
