// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/prompts"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
)

type Heliost struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	// Fs backs every file the CLI reads or writes outside its base dir:
	// source artwork, the composed image and the token image upload.
	Fs afero.Fs
}

func New() *Heliost {
	return &Heliost{}
}

func (app *Heliost) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	if fs == nil {
		fs = afero.NewOsFs()
	}
	app.Fs = fs
}

func (app *Heliost) GetBaseDir() string {
	return app.baseDir
}

func (app *Heliost) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Heliost) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// GetArtworkDir returns the directory holding source images for the
// compositor.
func (app *Heliost) GetArtworkDir() string {
	if app.Conf != nil {
		if dir := app.Conf.GetConfigStringValue(constants.ConfigArtworkDir); dir != "" {
			return dir
		}
	}
	return constants.DefaultArtworkDir
}

// GetEndpoints returns the resolved service endpoints.
func (app *Heliost) GetEndpoints() config.Endpoints {
	conf := app.Conf
	if conf == nil {
		conf = config.New()
	}
	return conf.GetEndpoints()
}
