// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/heliost/cli/pkg/application"
	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/prompts"
	"github.com/heliost/cli/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

// SetupTestInTempDir builds an app over an in-memory filesystem with fresh
// viper defaults. User output is captured in the returned buffer.
func SetupTestInTempDir(t *testing.T, prompt prompts.Prompter) (*application.Heliost, afero.Fs, *bytes.Buffer) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()

	out := &bytes.Buffer{}
	ux.NewUserLog(luxlog.NewNoOpLogger(), out)

	fs := afero.NewMemMapFs()
	app := application.New()
	app.Setup(t.TempDir(), luxlog.NewNoOpLogger(), config.New(), prompt, fs)
	return app, fs, out
}
