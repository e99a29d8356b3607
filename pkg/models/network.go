// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"errors"
	"strings"

	"github.com/heliost/cli/pkg/constants"
)

type Network int64

const (
	Undefined Network = iota
	Solana
)

func (s Network) String() string {
	switch s {
	case Solana:
		return "Solana"
	}
	return "Unknown Network"
}

// Flag returns the --network value selecting s.
func (s Network) Flag() string {
	switch s {
	case Solana:
		return constants.SolanaNetwork
	}
	return ""
}

// ErrUnsupportedNetwork is returned for any network other than Solana.
var ErrUnsupportedNetwork = errors.New("Only Solana network is supported") //nolint:stylecheck

// NetworkFromString parses a --network value. Matching ignores case and
// surrounding whitespace.
func NetworkFromString(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.SolanaNetwork:
		return Solana, nil
	}
	return Undefined, ErrUnsupportedNetwork
}
