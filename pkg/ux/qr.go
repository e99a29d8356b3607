// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"

	"github.com/skip2/go-qrcode"
)

// PrintQRCode renders content as a terminal QR code.
func PrintQRCode(w io.Writer, content string) error {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}
	_, err = fmt.Fprint(w, qr.ToSmallString(false))
	return err
}
