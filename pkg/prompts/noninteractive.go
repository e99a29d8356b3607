// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

const defaultNonInteractiveHint = "deploy-token needs a terminal, unset " + EnvNonInteractive

// NonInteractivePrompter fails every prompt, naming the question that could
// not be asked.
type NonInteractivePrompter struct {
	hint string
}

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{hint: defaultNonInteractiveHint}
}

// NewNonInteractivePrompterWithMessage replaces the hint shown after the
// failed question.
func NewNonInteractivePrompterWithMessage(hint string) *NonInteractivePrompter {
	return &NonInteractivePrompter{hint: hint}
}

func (p *NonInteractivePrompter) refuse(question string) error {
	return fmt.Errorf("%w: %q (%s)", ErrNonInteractive, question, p.hint)
}

func (p *NonInteractivePrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return "", p.refuse(promptStr)
}

func (p *NonInteractivePrompter) CaptureSecret(promptStr string) (string, error) {
	return "", p.refuse(promptStr)
}

func (p *NonInteractivePrompter) CaptureImagePath(promptStr string) (string, error) {
	return "", p.refuse(promptStr)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.refuse(promptStr)
}

var _ Prompter = (*NonInteractivePrompter)(nil)
