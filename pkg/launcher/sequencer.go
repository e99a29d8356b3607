// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package launcher

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected by a step validator. It is recoverable:
	// the sequencer stays on the same step.
	ErrValidation = errors.New("invalid input")
	// ErrSessionClosed is returned when input arrives after the session ended.
	ErrSessionClosed = errors.New("session already finished")
	// ErrTokenCreation wraps any fatal error raised by the deployment stage.
	ErrTokenCreation = errors.New("Token creation failed") //nolint:stylecheck
)

// State is the sequencer's position in its lifecycle.
type State int

const (
	AwaitingStep State = iota
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingStep:
		return "awaiting-step"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// DeployFunc runs the deployment stage on the collected parameters and
// returns the transaction URL to show the operator.
type DeployFunc func(ctx context.Context, params *Params) (string, error)

// OutputFunc receives every message the sequencer emits.
type OutputFunc func(msg string)

// Sequencer walks an operator through a fixed list of steps, filling a Params
// one field at a time. It is not safe for concurrent use; a session owns it.
type Sequencer struct {
	steps  []Step
	params *Params
	cursor int
	state  State

	deploy DeployFunc
	output OutputFunc
	strict bool
	result string
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithStrictNumbers rejects numeric input that has no leading number instead
// of reading it as 0.
func WithStrictNumbers() Option {
	return func(s *Sequencer) {
		s.strict = true
	}
}

// WithParams starts the session from the given Params instead of NewParams.
func WithParams(p *Params) Option {
	return func(s *Sequencer) {
		s.params = p
	}
}

// NewSequencer builds a sequencer over steps. The step list is copied and
// never changes afterwards.
func NewSequencer(steps []Step, deploy DeployFunc, output OutputFunc, opts ...Option) (*Sequencer, error) {
	if len(steps) == 0 {
		return nil, errors.New("sequencer needs at least one step")
	}
	if deploy == nil {
		return nil, errors.New("sequencer needs a deploy function")
	}
	if output == nil {
		output = func(string) {}
	}
	s := &Sequencer{
		steps:  append([]Step(nil), steps...),
		deploy: deploy,
		output: output,
		state:  AwaitingStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.params == nil {
		s.params = NewParams()
	}
	return s, nil
}

// State returns the current lifecycle state.
func (s *Sequencer) State() State {
	return s.state
}

// Cursor returns the index of the step awaiting input. In a terminal state it
// stays on the last step.
func (s *Sequencer) Cursor() int {
	return s.cursor
}

// Current returns the step awaiting input, or false once the session ended.
func (s *Sequencer) Current() (Step, bool) {
	if s.state != AwaitingStep {
		return Step{}, false
	}
	return s.steps[s.cursor], true
}

// Prompt returns the prompt of the current step, or "" once the session ended.
func (s *Sequencer) Prompt() string {
	step, ok := s.Current()
	if !ok {
		return ""
	}
	return step.Prompt
}

// Params returns a copy of the collected values.
func (s *Sequencer) Params() *Params {
	return s.params.Clone()
}

// Result returns the deployment result once Completed.
func (s *Sequencer) Result() string {
	return s.result
}

// Submit feeds raw operator input to the current step.
//
// A rejected value returns an error wrapping ErrValidation and leaves
// everything as it was. An accepted value is stored and the cursor moves to
// the next step; on the last step the deployment runs before Submit returns.
// Exactly one message is emitted per call.
func (s *Sequencer) Submit(ctx context.Context, raw string) error {
	if s.state != AwaitingStep {
		s.output("Invalid step")
		return ErrSessionClosed
	}
	step := s.steps[s.cursor]

	if reason := s.apply(step, raw); reason != nil {
		s.output(fmt.Sprintf("Invalid input. %s. Please try again.", capitalize(reason.Error())))
		return fmt.Errorf("%w: %w", ErrValidation, reason)
	}

	if s.cursor < len(s.steps)-1 {
		s.cursor++
		s.output(s.steps[s.cursor].Prompt)
		return nil
	}
	return s.finish(ctx)
}

// apply validates raw for step and stores it. The returned error is the
// reason the value was rejected; nothing is stored in that case.
func (s *Sequencer) apply(step Step, raw string) error {
	switch step.Kind {
	case KindNumeric:
		v, ok := coerceNumber(raw)
		if !ok && s.strict {
			return fmt.Errorf("%s must be a number", step.Field)
		}
		if err := step.validateNumber(v); err != nil {
			return err
		}
		return s.params.setNumber(step.Field, v)
	default:
		if err := step.validateText(raw); err != nil {
			return err
		}
		return s.params.setText(step.Field, raw)
	}
}

func (s *Sequencer) finish(ctx context.Context) error {
	s.state = Completed
	defer s.params.Discard()

	url, err := s.deploy(ctx, s.params)
	if err != nil {
		s.state = Failed
		err = fmt.Errorf("%w: %w", ErrTokenCreation, err)
		s.output(err.Error())
		return err
	}
	s.result = url
	s.output(fmt.Sprintf("Token created successfully! Transaction: %s", url))
	return nil
}

func capitalize(msg string) string {
	if msg == "" {
		return "Invalid value"
	}
	if c := msg[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + msg[1:]
	}
	return msg
}
