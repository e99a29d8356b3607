// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package broadcast submits signed transactions to a Solana RPC node.
package broadcast

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var ErrUnsigned = errors.New("transaction has unsigned slots")

// RPCBroadcaster sends transactions through sendTransaction. It does not
// retry and never re-signs.
type RPCBroadcaster struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
}

// NewRPCBroadcaster creates a broadcaster for endpoint with confirmed
// preflight commitment.
func NewRPCBroadcaster(endpoint string) *RPCBroadcaster {
	return &RPCBroadcaster{
		client:     rpc.New(endpoint),
		commitment: rpc.CommitmentConfirmed,
	}
}

// Send submits tx and returns its signature.
func (b *RPCBroadcaster) Send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if tx == nil || len(tx.Signatures) == 0 {
		return solana.Signature{}, ErrUnsigned
	}
	for _, sig := range tx.Signatures {
		if sig == (solana.Signature{}) {
			return solana.Signature{}, ErrUnsigned
		}
	}
	sig, err := b.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: b.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("sendTransaction failed: %w", err)
	}
	return sig, nil
}
