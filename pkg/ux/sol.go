// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"github.com/shopspring/decimal"
)

// FormatSOL renders an amount of SOL without float noise, trailing zeros
// trimmed: 0.0005 → "0.0005 SOL".
func FormatSOL(amount float64) string {
	return decimal.NewFromFloat(amount).Round(9).String() + " SOL"
}

// FormatPercent renders a percentage: 10 → "10%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String() + "%"
}
