// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

// Prompter reads the answers of a deployment session. Validation of the
// answers belongs to the caller; a Prompter only collects raw text.
type Prompter interface {
	// CaptureStringAllowEmpty reads one line, empty input included.
	CaptureStringAllowEmpty(promptStr string) (string, error)
	// CaptureSecret reads key material without echoing it.
	CaptureSecret(promptStr string) (string, error)
	// CaptureImagePath reads the path of an existing image file.
	CaptureImagePath(promptStr string) (string, error)
	CaptureYesNo(promptStr string) (bool, error)
}

type terminalPrompter struct{}

// NewPrompter returns a prompter reading from the terminal
func NewPrompter() Prompter {
	return &terminalPrompter{}
}

func (*terminalPrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return promptUIRunner(promptui.Prompt{Label: promptStr})
}

func (*terminalPrompter) CaptureSecret(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:       promptStr,
		Mask:        '*',
		HideEntered: true,
	}
	return promptUIRunner(prompt)
}

func (*terminalPrompter) CaptureImagePath(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateImagePath,
	}
	return promptUIRunner(prompt)
}

func (*terminalPrompter) CaptureYesNo(promptStr string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: []string{Yes, No},
	}
	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}
