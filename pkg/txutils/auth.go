// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txutils provides utilities for decoding and signing relay-built transactions.
package txutils

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrMalformedTx = errors.New("malformed transaction")
	ErrNotASigner  = errors.New("key is not a required signer of the transaction")
)

// RequiredSigners returns the account keys that must sign tx, in slot order.
// The first NumRequiredSignatures static account keys are the signers and
// signature i belongs to account key i.
func RequiredSigners(tx *solana.Transaction) ([]solana.PublicKey, error) {
	n := int(tx.Message.Header.NumRequiredSignatures)
	if n == 0 {
		return nil, fmt.Errorf("%w: no required signatures", ErrMalformedTx)
	}
	if n > len(tx.Message.AccountKeys) {
		return nil, fmt.Errorf("%w: %d required signatures but only %d account keys",
			ErrMalformedTx,
			n,
			len(tx.Message.AccountKeys),
		)
	}
	signers := make([]solana.PublicKey, n)
	copy(signers, tx.Message.AccountKeys[:n])
	return signers, nil
}

// RemainingSigners returns the required signers whose slot is still empty.
// If tx is fully signed, returns an empty slice.
func RemainingSigners(tx *solana.Transaction) ([]solana.PublicKey, error) {
	signers, err := RequiredSigners(tx)
	if err != nil {
		return nil, err
	}
	if len(tx.Signatures) != len(signers) {
		return nil, fmt.Errorf("%w: expected %d signature slots, got %d",
			ErrMalformedTx,
			len(signers),
			len(tx.Signatures),
		)
	}
	remaining := []solana.PublicKey{}
	for i, sig := range tx.Signatures {
		if sig == (solana.Signature{}) {
			remaining = append(remaining, signers[i])
		}
	}
	return remaining, nil
}

// slotOf returns the signature slot of pub in tx.
func slotOf(signers []solana.PublicKey, pub solana.PublicKey) (int, error) {
	for i, s := range signers {
		if s.Equals(pub) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotASigner, pub)
}
