// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"strings"

	luxlog "github.com/luxfi/log"
)

const separatorWidth = 42

// Logger is the operator-facing output of the running command.
var Logger *UserLog

// UserLog writes operator messages to a stream. Status lines (✓ and ✗) are
// mirrored into the diagnostic log; plain messages are not, since they may
// echo operator input.
type UserLog struct {
	log    luxlog.Logger
	writer io.Writer
}

// NewUserLog installs Logger, replacing any previous one.
func NewUserLog(log luxlog.Logger, userwriter io.Writer) {
	Logger = &UserLog{
		log:    log,
		writer: userwriter,
	}
}

func (ul *UserLog) Writer() io.Writer {
	return ul.writer
}

func (ul *UserLog) println(line string) {
	_, _ = fmt.Fprintln(ul.writer, line)
}

// PrintToUser prints msg to the operator only.
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.println(fmt.Sprintf(msg, args...))
}

func (ul *UserLog) PrintLineSeparator() {
	ul.println(strings.Repeat("─", separatorWidth))
}

func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	line := "✓ " + fmt.Sprintf(msg, args...)
	ul.println(line)
	ul.log.Info(line)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	line := "✗ " + fmt.Sprintf(msg, args...)
	ul.println(line)
	ul.log.Warn(line)
}
