// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	messages []string
	deploys  int
	got      *Params
	url      string
	err      error
}

func (r *recorder) output(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *recorder) deploy(_ context.Context, p *Params) (string, error) {
	r.deploys++
	r.got = p.Clone()
	return r.url, r.err
}

func newTestSequencer(t *testing.T, r *recorder, opts ...Option) *Sequencer {
	t.Helper()
	seq, err := NewSequencer(DefaultSteps(), r.deploy, r.output, opts...)
	require.NoError(t, err)
	return seq
}

func validInputs(t *testing.T) []string {
	t.Helper()
	operator, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return []string{
		"DemoCoin",
		"DEMO",
		"test",
		"",
		"",
		"",
		"1",
		"10",
		"0.0005",
		operator.PublicKey().String(),
		operator.String(),
	}
}

func TestSequencerCompletesExactlyOnce(t *testing.T) {
	require := require.New(t)
	r := &recorder{url: "https://solscan.io/tx/abc"}
	seq := newTestSequencer(t, r)
	inputs := validInputs(t)

	for i, in := range inputs {
		require.Equal(AwaitingStep, seq.State())
		require.Equal(i, seq.Cursor())
		require.NoError(seq.Submit(context.Background(), in))
	}

	require.Equal(Completed, seq.State())
	require.Equal(1, r.deploys)
	require.Len(r.messages, len(inputs))
	require.Equal("Token created successfully! Transaction: https://solscan.io/tx/abc", r.messages[len(r.messages)-1])
	require.Equal("https://solscan.io/tx/abc", seq.Result())

	require.Equal("DemoCoin", r.got.Name)
	require.Equal("DEMO", r.got.Symbol)
	require.Equal("test", r.got.Description)
	require.Equal(1.0, r.got.Amount)
	require.Equal(10.0, r.got.Slippage)
	require.Equal(0.0005, r.got.PriorityFee)
	require.Equal(inputs[9], r.got.PublicKey)
	require.Equal(inputs[10], string(r.got.PrivateKey))

	// the secret is wiped once the session ends
	require.Nil(seq.Params().PrivateKey)

	err := seq.Submit(context.Background(), "again")
	require.ErrorIs(err, ErrSessionClosed)
	require.Equal(1, r.deploys)
}

func TestSequencerEmitsNextPrompt(t *testing.T) {
	require := require.New(t)
	r := &recorder{}
	seq := newTestSequencer(t, r)

	require.Equal("Enter token name:", seq.Prompt())
	require.NoError(seq.Submit(context.Background(), "DemoCoin"))
	require.Equal([]string{"Enter token symbol:"}, r.messages)
	require.Equal(seq.Prompt(), r.messages[0])
}

func TestSequencerRejectsEmptyRequiredFields(t *testing.T) {
	required := map[int]Field{
		0:  FieldName,
		1:  FieldSymbol,
		2:  FieldDescription,
		9:  FieldPublicKey,
		10: FieldPrivateKey,
	}
	inputs := validInputs(t)

	for idx, field := range required {
		t.Run(field.String(), func(t *testing.T) {
			require := require.New(t)
			r := &recorder{}
			seq := newTestSequencer(t, r)
			for _, in := range inputs[:idx] {
				require.NoError(seq.Submit(context.Background(), in))
			}
			before := seq.Params()
			r.messages = nil

			for _, bad := range []string{"", "   "} {
				err := seq.Submit(context.Background(), bad)
				require.ErrorIs(err, ErrValidation)
				require.Equal(idx, seq.Cursor())
				require.Equal(AwaitingStep, seq.State())
				require.Equal(before, seq.Params())
			}
			require.Len(r.messages, 2)
			require.Contains(r.messages[0], "Please try again.")
			require.Zero(r.deploys)
		})
	}
}

func TestSequencerOptionalFieldsAcceptAnything(t *testing.T) {
	require := require.New(t)
	r := &recorder{}
	seq := newTestSequencer(t, r)
	for _, in := range []string{"DemoCoin", "DEMO", "test"} {
		require.NoError(seq.Submit(context.Background(), in))
	}
	for i, in := range []string{"", "@demo", "not a url"} {
		require.NoError(seq.Submit(context.Background(), in))
		require.Equal(4+i, seq.Cursor())
	}
	p := seq.Params()
	require.Equal("@demo", p.Telegram)
	require.Equal("not a url", p.Website)
}

func TestSequencerNumericCoercion(t *testing.T) {
	toAmount := func(t *testing.T, r *recorder, opts ...Option) *Sequencer {
		seq := newTestSequencer(t, r, opts...)
		for _, in := range []string{"DemoCoin", "DEMO", "test", "", "", ""} {
			require.NoError(t, seq.Submit(context.Background(), in))
		}
		return seq
	}

	t.Run("non-numeric amount coerces to zero and is rejected", func(t *testing.T) {
		require := require.New(t)
		seq := toAmount(t, &recorder{})
		err := seq.Submit(context.Background(), "abc")
		require.ErrorIs(err, ErrValidation)
		require.Contains(err.Error(), "amount must be greater than 0")
		require.Equal(6, seq.Cursor())
		require.Equal(1.0, seq.Params().Amount)
	})

	t.Run("non-numeric slippage is stored as zero", func(t *testing.T) {
		require := require.New(t)
		seq := toAmount(t, &recorder{})
		require.NoError(seq.Submit(context.Background(), "2.5"))
		require.NoError(seq.Submit(context.Background(), "abc"))
		require.Equal(8, seq.Cursor())
		require.Equal(0.0, seq.Params().Slippage)
	})

	t.Run("leading number is kept", func(t *testing.T) {
		require := require.New(t)
		seq := toAmount(t, &recorder{})
		require.NoError(seq.Submit(context.Background(), " 12.5sol"))
		require.Equal(12.5, seq.Params().Amount)
	})

	t.Run("amount above the cap is rejected", func(t *testing.T) {
		require := require.New(t)
		seq := toAmount(t, &recorder{})
		require.ErrorIs(seq.Submit(context.Background(), "100.01"), ErrValidation)
		require.NoError(seq.Submit(context.Background(), "100"))
	})

	t.Run("strict mode rejects non-numeric input", func(t *testing.T) {
		require := require.New(t)
		seq := toAmount(t, &recorder{}, WithStrictNumbers())
		require.NoError(seq.Submit(context.Background(), "1"))
		err := seq.Submit(context.Background(), "abc")
		require.ErrorIs(err, ErrValidation)
		require.Contains(err.Error(), "slippage must be a number")
		require.Equal(7, seq.Cursor())
		require.Equal(10.0, seq.Params().Slippage)
	})
}

func TestSequencerDeployFailure(t *testing.T) {
	require := require.New(t)
	cause := errors.New("relay returned 500 Internal Server Error")
	r := &recorder{err: cause}
	seq := newTestSequencer(t, r)

	var err error
	for _, in := range validInputs(t) {
		err = seq.Submit(context.Background(), in)
	}
	require.ErrorIs(err, ErrTokenCreation)
	require.ErrorIs(err, cause)
	require.Equal("Token creation failed: relay returned 500 Internal Server Error", err.Error())
	require.Equal(Failed, seq.State())
	require.Equal(1, r.deploys)
	require.Equal(err.Error(), r.messages[len(r.messages)-1])

	require.ErrorIs(seq.Submit(context.Background(), "x"), ErrSessionClosed)
}

func TestSequencerIsDeterministic(t *testing.T) {
	require := require.New(t)
	inputs := append(validInputs(t)[:6], "abc", "5", "x", "10", "0.001")

	run := func() ([]string, *Params) {
		r := &recorder{}
		seq := newTestSequencer(t, r)
		for _, in := range inputs {
			_ = seq.Submit(context.Background(), in)
		}
		return r.messages, seq.Params()
	}
	msgs1, p1 := run()
	msgs2, p2 := run()
	require.Equal(msgs1, msgs2)
	require.Equal(p1, p2)
}

func TestNewSequencerRequiresStepsAndDeploy(t *testing.T) {
	_, err := NewSequencer(nil, func(context.Context, *Params) (string, error) { return "", nil }, nil)
	require.Error(t, err)
	_, err = NewSequencer(DefaultSteps(), nil, nil)
	require.Error(t, err)
}
