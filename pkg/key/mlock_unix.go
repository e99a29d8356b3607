// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build unix

package key

import (
	"golang.org/x/sys/unix"
)

// mlock pins secret key bytes in RAM so they are never written to swap.
func mlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

func munlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}

// MlockSupported reports whether secrets are pinned on this platform.
func MlockSupported() bool {
	return true
}
