// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// EnvNonInteractive disables prompting when truthy.
	EnvNonInteractive = "HELIOST_NON_INTERACTIVE"
	// EnvCI is set by most CI runners; truthy implies non-interactive.
	EnvCI = "CI"
)

// Mode tells whether a session may prompt.
type Mode int

const (
	Interactive Mode = iota
	NonInteractive
)

func (m Mode) String() string {
	if m == NonInteractive {
		return "non-interactive"
	}
	return "interactive"
}

// stdinIsTTY is a variable for testing purposes
var stdinIsTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// envEnabled accepts 1, true, t, yes, y, on (case-insensitive).
func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// DetectMode returns NonInteractive when the flag is set, when
// HELIOST_NON_INTERACTIVE or CI is truthy, or when stdin is not a terminal.
func DetectMode(nonInteractiveFlag bool) Mode {
	switch {
	case nonInteractiveFlag, envEnabled(EnvNonInteractive), envEnabled(EnvCI), !stdinIsTTY():
		return NonInteractive
	default:
		return Interactive
	}
}

// NewPrompterForMode returns the prompter matching mode.
func NewPrompterForMode(mode Mode) Prompter {
	if mode == NonInteractive {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}
