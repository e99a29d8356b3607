// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// imageExtensions are the formats the metadata host accepts for a token image.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

func validateImagePath(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("image path cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(input))
	if !slices.Contains(imageExtensions, ext) {
		return fmt.Errorf("unsupported image type %q", ext)
	}
	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		return errors.New("file doesn't exist")
	}
	return nil
}
