// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"github.com/heliost/cli/pkg/artwork"
	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/ux"
	"go.uber.org/zap"
)

// composeArtwork renders the token image from the pictures in dir until the
// operator accepts it, and returns its path.
func composeArtwork(dir string, opts ...artwork.Option) (string, error) {
	output := constants.DefaultArtworkOutput
	opts = append([]artwork.Option{artwork.WithProgress(ux.Logger.Writer())}, opts...)
	compositor := artwork.NewCompositor(app.Fs, opts...)
	for {
		ux.Logger.PrintToUser("Composing token image from %s", dir)
		if err := compositor.Render(dir, output); err != nil {
			return "", err
		}
		app.Log.Info("token image composed", zap.String("dir", dir), zap.String("output", output))
		ux.Logger.GreenCheckmarkToUser("Token image saved to %s", output)

		again, err := app.Prompt.CaptureYesNo("Would you like to regenerate the image?")
		if err != nil {
			return "", err
		}
		if !again {
			return output, nil
		}
	}
}
