// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"crypto/ed25519"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIdentityIsFresh(t *testing.T) {
	require := require.New(t)
	a, err := NewTokenIdentity()
	require.NoError(err)
	defer a.Release()
	b, err := NewTokenIdentity()
	require.NoError(err)
	defer b.Release()

	require.NotEqual(a.PublicKey(), b.PublicKey())
}

func TestFromBase58(t *testing.T) {
	require := require.New(t)
	k, err := solana.NewRandomPrivateKey()
	require.NoError(err)

	s, err := FromBase58([]byte(k.String()))
	require.NoError(err)
	defer s.Release()
	require.Equal(k.PublicKey(), s.PublicKey())
	require.NoError(s.MatchPublicKey(k.PublicKey().String()))

	other, err := solana.NewRandomPrivateKey()
	require.NoError(err)
	require.ErrorIs(s.MatchPublicKey(other.PublicKey().String()), ErrKeyMismatch)
}

func TestFromBase58Rejects(t *testing.T) {
	k, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	_, err = FromBase58([]byte("not-base58-0OIl"))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = FromBase58([]byte(k.PublicKey().String()))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	// seed and public half from different keys
	other, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	mixed := append(append([]byte{}, k[:32]...), other[32:]...)
	_, err = FromBase58([]byte(base58.Encode(mixed)))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestSignAndRelease(t *testing.T) {
	require := require.New(t)
	s, err := NewTokenIdentity()
	require.NoError(err)

	msg := []byte("create token")
	sig, err := s.Sign(msg)
	require.NoError(err)
	pub := s.PublicKey()
	require.True(ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:]))

	if !MlockSupported() {
		require.False(s.Locked())
	}

	held := s.key
	s.Release()
	for _, b := range held {
		require.Zero(b)
	}
	require.False(s.Locked())
	_, err = s.Sign(msg)
	require.ErrorIs(err, ErrReleased)
	require.Equal(pub, s.PublicKey())

	// second release is a no-op
	s.Release()
}

func TestSecretStringHidesKey(t *testing.T) {
	s, err := NewTokenIdentity()
	require.NoError(t, err)
	defer s.Release()
	require.NotContains(t, s.String(), solana.PrivateKey(s.key).String())
	require.Contains(t, s.String(), s.PublicKey().String())
}
