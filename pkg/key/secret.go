// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key holds the two signing identities of a deployment: the freshly
// generated token-identity key and the operator's wallet key.
package key

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrKeyMismatch       = errors.New("private key does not match public key")
	ErrReleased          = errors.New("key already released")
)

// Secret is an ed25519 signing key owned by exactly one signing operation.
// The bytes are pinned in memory where the platform allows it and zeroed by
// Release; callers defer Release right after acquiring a Secret.
type Secret struct {
	key    solana.PrivateKey
	pub    solana.PublicKey
	locked bool
}

// NewTokenIdentity generates the key pair whose public key becomes the mint
// address. Every deployment gets its own.
func NewTokenIdentity() (*Secret, error) {
	k, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token identity key: %w", err)
	}
	return newSecret(k), nil
}

// FromBase58 decodes a base58 encoded 64 byte ed25519 secret key.
func FromBase58(encoded []byte) (*Secret, error) {
	raw, err := base58.Decode(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: not base58", ErrInvalidPrivateKey)
	}
	if len(raw) != ed25519.PrivateKeySize {
		wipe(raw)
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, ed25519.PrivateKeySize, len(raw))
	}
	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	consistent := bytes.Equal(derived, raw)
	wipe(derived)
	if !consistent {
		wipe(raw)
		return nil, fmt.Errorf("%w: public half does not match seed", ErrInvalidPrivateKey)
	}
	return newSecret(solana.PrivateKey(raw)), nil
}

func newSecret(k solana.PrivateKey) *Secret {
	s := &Secret{
		key: k,
		pub: k.PublicKey(),
	}
	// pinning is best effort; RLIMIT_MEMLOCK can be tiny
	s.locked = mlock(s.key) == nil
	return s
}

// PublicKey returns the public half. It stays available after Release.
func (s *Secret) PublicKey() solana.PublicKey {
	return s.pub
}

// Sign signs message with the private half.
func (s *Secret) Sign(message []byte) (solana.Signature, error) {
	if s.key == nil {
		return solana.Signature{}, ErrReleased
	}
	return s.key.Sign(message)
}

// MatchPublicKey checks that the secret belongs to the base58 public key pub.
func (s *Secret) MatchPublicKey(pub string) error {
	want, err := solana.PublicKeyFromBase58(pub)
	if err != nil {
		return fmt.Errorf("invalid public key %q: %w", pub, err)
	}
	if !want.Equals(s.pub) {
		return fmt.Errorf("%w: %s", ErrKeyMismatch, pub)
	}
	return nil
}

// Locked reports whether the key bytes are pinned in memory.
func (s *Secret) Locked() bool {
	return s.locked
}

// Release zeroes the private half. Safe to call more than once.
func (s *Secret) Release() {
	if s.key == nil {
		return
	}
	wipe(s.key)
	if s.locked {
		_ = munlock(s.key)
		s.locked = false
	}
	s.key = nil
}

// String never includes key material.
func (s *Secret) String() string {
	return fmt.Sprintf("Secret(%s)", s.pub)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
