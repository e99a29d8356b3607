// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - HELIOST_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable (GitHub Actions, GitLab CI, etc.)
  - stdin is not a TTY (piped/redirected/scripted)

Interactive mode is enabled otherwise.

# Usage

	prompter := prompts.NewPrompterForMode(prompts.DetectMode(nonInteractive))
	name, err := prompter.CaptureStringAllowEmpty("Enter token name")
	if errors.Is(err, prompts.ErrNonInteractive) {
		// tell the operator to run from a terminal
	}

Secrets are read with CaptureSecret, which masks the input and clears it
once entered.
*/
package prompts
