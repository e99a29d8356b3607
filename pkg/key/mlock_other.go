// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !unix

package key

func mlock(b []byte) error {
	return nil
}

func munlock(b []byte) error {
	return nil
}

// MlockSupported reports whether secrets are pinned on this platform.
func MlockSupported() bool {
	return false
}
