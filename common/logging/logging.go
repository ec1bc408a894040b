/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides named, leveled loggers for the command-line tool.
// Records go to stderr in a console format; the enabled level is taken from
// the NOOMNEM_LOGGING_SPEC environment variable (debug, info, warn, error)
// and defaults to info. The codec packages themselves never log: they are
// pure functions and report problems through their error returns.
package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogSpec names the environment variable holding the log level.
const EnvLogSpec = "NOOMNEM_LOGGING_SPEC"

var (
	initOnce sync.Once
	root     *zap.Logger
)

func rootLogger() *zap.Logger {
	initOnce.Do(func() {
		level := zapcore.InfoLevel
		if spec := strings.TrimSpace(os.Getenv(EnvLogSpec)); spec != "" {
			// A malformed spec falls back to info rather than failing the
			// whole command over a logging knob.
			if err := level.Set(strings.ToLower(spec)); err != nil {
				level = zapcore.InfoLevel
			}
		}

		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.NameKey = "name"
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		)
		root = zap.New(core)
	})
	return root
}

// MustGetLogger returns a named logger. Loggers created before and after the
// first call share one core, so the level spec is read exactly once per
// process.
func MustGetLogger(name string) *zap.SugaredLogger {
	return rootLogger().Named(name).Sugar()
}
