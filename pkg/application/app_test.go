// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"path/filepath"
	"testing"

	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/constants"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *Heliost {
	tempDir := t.TempDir()
	app := New()
	app.Setup(tempDir, luxlog.NewNoOpLogger(), config.New(), nil, afero.NewMemMapFs())
	return app
}

func TestPaths(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t)

	require.Equal(filepath.Join(app.GetBaseDir(), "logs"), app.GetLogDir())
	require.Equal(filepath.Join(app.GetBaseDir(), "cli.json"), app.GetConfigPath())
}

func TestArtworkDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	app := newTestApp(t)

	require.Equal(t, constants.DefaultArtworkDir, app.GetArtworkDir())
	viper.Set(constants.ConfigArtworkDir, "/srv/art")
	require.Equal(t, "/srv/art", app.GetArtworkDir())
}

func TestSetupDefaultsFs(t *testing.T) {
	app := New()
	app.Setup(t.TempDir(), luxlog.NewNoOpLogger(), nil, nil, nil)
	_, ok := app.Fs.(*afero.OsFs)
	require.True(t, ok)
	require.NotEmpty(t, app.GetEndpoints().Timeout)
}
