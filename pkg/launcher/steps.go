// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package launcher

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/heliost/cli/pkg/constants"
	"github.com/mr-tron/base58"
)

// Kind tells the caller how to read a step's input.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindSecret
)

// Step binds one prompt to one Params field.
type Step struct {
	Prompt string
	Field  Field
	Kind   Kind

	// exactly one of these is set, matching Kind
	validateText   func(string) error
	validateNumber func(float64) error
}

// TextStep builds a text (or secret, when secret is true) step.
func TextStep(prompt string, field Field, secret bool, validate func(string) error) Step {
	kind := KindText
	if secret {
		kind = KindSecret
	}
	if validate == nil {
		validate = optional
	}
	return Step{Prompt: prompt, Field: field, Kind: kind, validateText: validate}
}

// NumericStep builds a step whose input is coerced to a float before validation.
func NumericStep(prompt string, field Field, validate func(float64) error) Step {
	return Step{Prompt: prompt, Field: field, Kind: KindNumeric, validateNumber: validate}
}

// DefaultSteps is the eleven-step sequence used by deploy-token.
func DefaultSteps() []Step {
	return []Step{
		TextStep("Enter token name:", FieldName, false, required("token name")),
		TextStep("Enter token symbol:", FieldSymbol, false, required("token symbol")),
		TextStep("Enter token description:", FieldDescription, false, required("token description")),
		TextStep("Enter Twitter handle (optional):", FieldTwitter, false, optional),
		TextStep("Enter Telegram group (optional):", FieldTelegram, false, optional),
		TextStep("Enter website URL (optional):", FieldWebsite, false, optional),
		NumericStep("Enter initial buy amount in SOL (default 1):", FieldAmount, validateAmount),
		NumericStep("Enter slippage percentage (default 10):", FieldSlippage, validateSlippage),
		NumericStep("Enter priority fee in SOL (default 0.0005):", FieldPriorityFee, validatePriorityFee),
		TextStep("Enter your developer wallet public key:", FieldPublicKey, false, ValidatePublicKey),
		TextStep("Enter your developer wallet private key:", FieldPrivateKey, true, ValidatePrivateKey),
	}
}

func optional(string) error {
	return nil
}

func required(label string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}

func validateAmount(v float64) error {
	if v <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if v > constants.MaxInitialBuy {
		return fmt.Errorf("amount must be less than or equal to %g", constants.MaxInitialBuy)
	}
	return nil
}

func validateSlippage(v float64) error {
	if v < 0 {
		return errors.New("slippage cannot be negative")
	}
	if v > constants.MaxSlippage {
		return fmt.Errorf("slippage cannot exceed %g%%", constants.MaxSlippage)
	}
	return nil
}

func validatePriorityFee(v float64) error {
	if v < 0 {
		return errors.New("priority fee cannot be negative")
	}
	return nil
}

// ValidatePublicKey accepts a base58 string of 32 to 44 characters that
// decodes to a 32 byte ed25519 public key.
func ValidatePublicKey(input string) error {
	if len(input) < constants.MinPublicKeyLen {
		return fmt.Errorf("public key must be at least %d characters", constants.MinPublicKeyLen)
	}
	if len(input) > constants.MaxPublicKeyLen {
		return fmt.Errorf("public key must be at most %d characters", constants.MaxPublicKeyLen)
	}
	raw, err := base58.Decode(input)
	if err != nil {
		return errors.New("public key is not valid base58")
	}
	if len(raw) != 32 {
		return fmt.Errorf("public key decodes to %d bytes, expected 32", len(raw))
	}
	return nil
}

// ValidatePrivateKey accepts a base58 string of 64 to 88 characters that
// decodes to a 64 byte ed25519 secret key. The input is never echoed back.
func ValidatePrivateKey(input string) error {
	if len(input) < constants.MinPrivateKeyLen {
		return fmt.Errorf("private key must be at least %d characters", constants.MinPrivateKeyLen)
	}
	if len(input) > constants.MaxPrivateKeyLen {
		return fmt.Errorf("private key must be at most %d characters", constants.MaxPrivateKeyLen)
	}
	raw, err := base58.Decode(input)
	if err != nil {
		return errors.New("private key is not valid base58")
	}
	n := len(raw)
	for i := range raw {
		raw[i] = 0
	}
	if n != 64 {
		return fmt.Errorf("private key decodes to %d bytes, expected 64", n)
	}
	return nil
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// coerceNumber reads the longest leading decimal literal of input. Anything
// without one, and anything that is not finite, becomes 0 and ok is false.
func coerceNumber(input string) (v float64, ok bool) {
	m := numericPrefix.FindString(strings.TrimSpace(input))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	if v == 0 {
		// drops negative zero
		return 0, true
	}
	return v, true
}
