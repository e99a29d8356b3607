// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Signer is a key able to sign a serialized message. *key.Secret and
// solana.PrivateKey both satisfy it.
type Signer interface {
	PublicKey() solana.PublicKey
	Sign(message []byte) (solana.Signature, error)
}

// DualSign signs a relay-built create transaction with the token-identity key
// first and the operator key second. Each signature is written into the slot
// of its signer among the message's required signers.
func DualSign(tx *solana.Transaction, tokenKey, operatorKey Signer) error {
	return SignInOrder(tx, tokenKey, operatorKey)
}

// SignInOrder applies one signature per signer, in the given order. tx is only
// modified when every signer succeeds.
func SignInOrder(tx *solana.Transaction, signers ...Signer) error {
	required, err := RequiredSigners(tx)
	if err != nil {
		return err
	}
	if len(tx.Signatures) != len(required) {
		return fmt.Errorf("%w: expected %d signature slots, got %d",
			ErrMalformedTx,
			len(required),
			len(tx.Signatures),
		)
	}
	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: cannot serialize message: %w", ErrMalformedTx, err)
	}

	signatures := make([]solana.Signature, len(tx.Signatures))
	copy(signatures, tx.Signatures)
	for _, signer := range signers {
		slot, err := slotOf(required, signer.PublicKey())
		if err != nil {
			return err
		}
		sig, err := signer.Sign(message)
		if err != nil {
			return fmt.Errorf("signing with %s failed: %w", signer.PublicKey(), err)
		}
		signatures[slot] = sig
	}
	tx.Signatures = signatures
	return nil
}
