// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog provides the leveled diagnostics output of the command
// line tools. The standard log package offers no way to suppress or
// enable messages by importance, which the tools need for their quiet
// and verbose flags.
package xlog

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Verbosity levels. Warnings are suppressed at Quiet, informational
// messages require Verbose.
const (
	Quiet int32 = iota - 1
	Normal
	Verbose
)

var verbosity int32 = Normal

// SetVerbosity sets the verbosity level for the package logger.
func SetVerbosity(v int32) { atomic.StoreInt32(&verbosity, v) }

var logger = log.New(os.Stderr, "", 0)

// SetPrefix sets the prefix put in front of every message, usually the
// command name followed by a colon.
func SetPrefix(prefix string) { logger.SetPrefix(prefix) }

func output(level int32, s string) {
	if atomic.LoadInt32(&verbosity) >= level {
		logger.Output(3, s)
	}
}

// Warn logs a warning unless the verbosity is Quiet.
func Warn(v ...interface{}) { output(Normal, fmt.Sprint(v...)) }

// Warnf logs a formatted warning unless the verbosity is Quiet.
func Warnf(format string, v ...interface{}) {
	output(Normal, fmt.Sprintf(format, v...))
}

// Info logs a message if the verbosity is Verbose.
func Info(v ...interface{}) { output(Verbose, fmt.Sprint(v...)) }

// Infof logs a formatted message if the verbosity is Verbose.
func Infof(format string, v ...interface{}) {
	output(Verbose, fmt.Sprintf(format, v...))
}

// Fatalf logs the formatted message regardless of the verbosity and
// exits with status 1.
func Fatalf(format string, v ...interface{}) {
	logger.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatal logs the message regardless of the verbosity and exits with
// status 1.
func Fatal(v ...interface{}) {
	logger.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}
