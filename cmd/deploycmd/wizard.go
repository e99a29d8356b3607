// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/heliost/cli/pkg/launcher"
	"github.com/heliost/cli/pkg/tokengen"
	"github.com/heliost/cli/pkg/ux"
)

// runWizard feeds operator input to a sequencer until the session ends.
// Validation messages are shown and the same step is asked again; a failed
// deployment is returned as the command error.
func runWizard(
	ctx context.Context,
	deployFn launcher.DeployFunc,
	suggestion *tokengen.Suggestion,
	opts ...launcher.Option,
) (*launcher.Sequencer, error) {
	var seq *launcher.Sequencer
	output := func(msg string) {
		// prompts are rendered by the prompter, failures by the root command
		if step, ok := seq.Current(); ok && msg == step.Prompt {
			return
		}
		if seq.State() == launcher.Failed {
			return
		}
		ux.Logger.PrintToUser("%s", msg)
	}
	seq, err := launcher.NewSequencer(launcher.DefaultSteps(), deployFn, output, opts...)
	if err != nil {
		return nil, err
	}
	defaults := launcher.NewParams()

	for {
		step, ok := seq.Current()
		if !ok {
			break
		}
		raw, err := capture(step, suggestion, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", step.Field, err)
		}
		if err := seq.Submit(ctx, raw); err != nil {
			if errors.Is(err, launcher.ErrValidation) {
				continue
			}
			return nil, err
		}
	}
	return seq, nil
}

func capture(step launcher.Step, suggestion *tokengen.Suggestion, defaults *launcher.Params) (string, error) {
	label := strings.TrimSuffix(step.Prompt, ":")
	if step.Kind == launcher.KindSecret {
		return app.Prompt.CaptureSecret(label)
	}
	fallback := suggested(step.Field, suggestion)
	if fallback != "" {
		label = fmt.Sprintf("%s [%s]", label, fallback)
	}
	raw, err := app.Prompt.CaptureStringAllowEmpty(label)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) != "" {
		return raw, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	if step.Kind == launcher.KindNumeric {
		return defaultNumber(step.Field, defaults), nil
	}
	return raw, nil
}

// suggested returns the suggestion for field, or "" when there is none.
func suggested(field launcher.Field, s *tokengen.Suggestion) string {
	if s == nil {
		return ""
	}
	switch field {
	case launcher.FieldName:
		return s.Name
	case launcher.FieldSymbol:
		return s.Symbol
	case launcher.FieldDescription:
		return s.Description
	case launcher.FieldWebsite:
		return s.Website
	default:
		return ""
	}
}

// defaultNumber is the value an empty numeric answer stands for, matching the
// "(default N)" hint of the prompt.
func defaultNumber(field launcher.Field, defaults *launcher.Params) string {
	var v float64
	switch field {
	case launcher.FieldAmount:
		v = defaults.Amount
	case launcher.FieldSlippage:
		v = defaults.Slippage
	case launcher.FieldPriorityFee:
		v = defaults.PriorityFee
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
