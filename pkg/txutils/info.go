// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// DecodeTransaction deserializes the opaque payload returned by the relay.
// Legacy and v0 messages are both accepted. Signature slots are normalized to
// exactly one per required signer so the payload can be signed in place.
func DecodeTransaction(payload []byte) (*solana.Transaction, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedTx)
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, err)
	}
	signers, err := RequiredSigners(tx)
	if err != nil {
		return nil, err
	}
	switch {
	case len(tx.Signatures) == 0:
		tx.Signatures = make([]solana.Signature, len(signers))
	case len(tx.Signatures) != len(signers):
		return nil, fmt.Errorf("%w: %d signature slots for %d required signers",
			ErrMalformedTx,
			len(tx.Signatures),
			len(signers),
		)
	}
	return tx, nil
}

// EncodeTransaction serializes tx to its wire form.
func EncodeTransaction(tx *solana.Transaction) ([]byte, error) {
	return tx.MarshalBinary()
}

// IsCreateTx reports whether mint is a required signer of tx, which is how a
// create transaction embeds the new token's address.
func IsCreateTx(tx *solana.Transaction, mint solana.PublicKey) bool {
	signers, err := RequiredSigners(tx)
	if err != nil {
		return false
	}
	_, err = slotOf(signers, mint)
	return err == nil
}
