// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package launcher

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/heliost/cli/pkg/constants"
)

// Field names a Params entry a step writes to.
type Field int

const (
	FieldName Field = iota
	FieldSymbol
	FieldDescription
	FieldTwitter
	FieldTelegram
	FieldWebsite
	FieldAmount
	FieldSlippage
	FieldPriorityFee
	FieldPublicKey
	FieldPrivateKey
)

var fieldNames = map[Field]string{
	FieldName:        "name",
	FieldSymbol:      "symbol",
	FieldDescription: "description",
	FieldTwitter:     "twitter",
	FieldTelegram:    "telegram",
	FieldWebsite:     "website",
	FieldAmount:      "amount",
	FieldSlippage:    "slippage",
	FieldPriorityFee: "priorityFee",
	FieldPublicKey:   "publicKey",
	FieldPrivateKey:  "privateKey",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Numeric reports whether input for the field is coerced to a float.
func (f Field) Numeric() bool {
	return f == FieldAmount || f == FieldSlippage || f == FieldPriorityFee
}

// Params holds the in-progress configuration of a single deployment session.
// It lives in memory only and is wiped by Discard when the session ends.
type Params struct {
	Name        string `validate:"required"`
	Symbol      string `validate:"required"`
	Description string `validate:"required"`
	Twitter     string
	Telegram    string
	Website     string
	ImagePath   string `validate:"required"`

	Amount      float64 `validate:"gt=0,lte=100"`
	Slippage    float64 `validate:"gte=0,lte=100"`
	PriorityFee float64 `validate:"gte=0"`

	PublicKey  string `validate:"required,min=32,max=44"`
	PrivateKey []byte `validate:"required,min=64,max=88"`
}

// NewParams returns a Params with the economic defaults filled in.
func NewParams() *Params {
	return &Params{
		Amount:      constants.DefaultInitialBuy,
		Slippage:    constants.DefaultSlippage,
		PriorityFee: constants.DefaultPriorityFee,
	}
}

var validate = validator.New()

// Validate checks every required field at once. The sequencer validates each
// field as it is entered; this is the last check before anything leaves the
// process.
func (p *Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on '%s'", ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// Discard zeroes the operator secret. Params must not be used afterwards.
func (p *Params) Discard() {
	for i := range p.PrivateKey {
		p.PrivateKey[i] = 0
	}
	p.PrivateKey = nil
}

// Clone returns a deep copy, including its own copy of the operator secret.
func (p *Params) Clone() *Params {
	c := *p
	if p.PrivateKey != nil {
		c.PrivateKey = append([]byte(nil), p.PrivateKey...)
	}
	return &c
}

func (p *Params) setText(f Field, v string) error {
	switch f {
	case FieldName:
		p.Name = v
	case FieldSymbol:
		p.Symbol = v
	case FieldDescription:
		p.Description = v
	case FieldTwitter:
		p.Twitter = v
	case FieldTelegram:
		p.Telegram = v
	case FieldWebsite:
		p.Website = v
	case FieldPublicKey:
		p.PublicKey = v
	case FieldPrivateKey:
		p.PrivateKey = []byte(v)
	default:
		return fmt.Errorf("%s is not a text field", f)
	}
	return nil
}

func (p *Params) setNumber(f Field, v float64) error {
	switch f {
	case FieldAmount:
		p.Amount = v
	case FieldSlippage:
		p.Slippage = v
	case FieldPriorityFee:
		p.PriorityFee = v
	default:
		return fmt.Errorf("%s is not a numeric field", f)
	}
	return nil
}
