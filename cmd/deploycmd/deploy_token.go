// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heliost/cli/cmd/flags"
	"github.com/heliost/cli/pkg/application"
	"github.com/heliost/cli/pkg/artwork"
	"github.com/heliost/cli/pkg/broadcast"
	"github.com/heliost/cli/pkg/config"
	"github.com/heliost/cli/pkg/deploy"
	"github.com/heliost/cli/pkg/launcher"
	"github.com/heliost/cli/pkg/pumpfun"
	"github.com/heliost/cli/pkg/status"
	"github.com/heliost/cli/pkg/tokengen"
	"github.com/heliost/cli/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// metadata publish, transaction construction, broadcast
const deployNetworkCalls = 3

var app *application.Heliost

type deployFlags struct {
	network       string
	imagePath     string
	suggest       bool
	strictNumbers bool
}

// heliost deploy-token
func NewCmd(injectedApp *application.Heliost) *cobra.Command {
	app = injectedApp
	var f deployFlags
	cmd := &cobra.Command{
		Use:   "deploy-token",
		Short: "Create and launch a token on Solana",
		Long: `The deploy-token command walks you through the token parameters, publishes
the token metadata, builds the create transaction, signs it with a freshly
generated mint key and your wallet key, and broadcasts it.

Unless --image is given, the token image is composed from the pictures found
in the artwork directory (default ./images).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deployToken(cmd.Context(), f)
		},
	}
	flags.AddNetworkFlagToCmd(cmd, &f.network)
	flags.AddEndpointFlagsToCmd(cmd)
	cmd.Flags().StringVar(&f.imagePath, "image", "", "use this image instead of composing one")
	cmd.Flags().BoolVar(&f.suggest, "suggest", false, "fetch suggested token parameters before the prompts")
	cmd.Flags().BoolVar(&f.strictNumbers, "strict-numbers", false, "reject non-numeric amounts instead of reading them as 0")
	return cmd
}

func deployToken(ctx context.Context, f deployFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoints := app.GetEndpoints()

	var suggestion *tokengen.Suggestion
	if f.suggest {
		var err error
		suggestion, err = fetchSuggestion(ctx, endpoints)
		if err != nil {
			// suggestions are a convenience, the wizard works without them
			ux.Logger.RedXToUser("%s", err)
			app.Log.Warn("suggestion fetch failed", zap.Error(err))
		}
	}

	imagePath, err := resolveImage(f.imagePath)
	if err != nil {
		return err
	}

	params := launcher.NewParams()
	params.ImagePath = imagePath

	var result *deploy.Result
	deployer := newDeployer(endpoints)
	run := deployer.Func(func(r *deploy.Result) { result = r })
	deployFn := func(ctx context.Context, p *launcher.Params) (string, error) {
		if err := printSummary(p); err != nil {
			return "", err
		}
		ctx, cancel := context.WithTimeout(ctx, deployNetworkCalls*endpoints.Timeout)
		defer cancel()
		task := status.NewAnimator(ux.Logger.Writer()).Start(ctx, "Deploying your token to Solana")
		url, err := run(ctx, p)
		if err != nil {
			task.Stop()
			return "", err
		}
		task.Succeed()
		return url, nil
	}

	opts := []launcher.Option{launcher.WithParams(params)}
	if f.strictNumbers {
		opts = append(opts, launcher.WithStrictNumbers())
	}
	seq, err := runWizard(ctx, deployFn, suggestion, opts...)
	if err != nil {
		return err
	}

	printConfirmation(seq.Params(), result)
	return nil
}

func newDeployer(endpoints config.Endpoints) *deploy.Deployer {
	return deploy.New(
		pumpfun.NewMetadataClient(endpoints.Metadata, endpoints.Timeout),
		pumpfun.NewTradeClient(endpoints.Relay, endpoints.Timeout),
		broadcast.NewRPCBroadcaster(endpoints.RPC),
		deploy.WithFs(app.Fs),
		deploy.WithLogger(app.Log),
		deploy.WithExplorerURL(endpoints.Explorer),
		deploy.WithPool(endpoints.Pool),
	)
}

func fetchSuggestion(ctx context.Context, endpoints config.Endpoints) (*tokengen.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, endpoints.Timeout)
	defer cancel()
	task := status.NewAnimator(ux.Logger.Writer()).Start(ctx, "Generating token parameters")
	suggestion, err := tokengen.NewClient(endpoints.Generator, endpoints.Timeout).Suggest(ctx)
	if err != nil {
		task.Stop()
		return nil, err
	}
	task.Succeed()
	err = ux.PrintRows(ux.Logger.Writer(), "Suggestion", []ux.Row{
		{Label: "Name", Value: suggestion.Name},
		{Label: "Symbol", Value: suggestion.Symbol},
		{Label: "Description", Value: suggestion.Description},
		{Label: "Website", Value: suggestion.Website},
	})
	if err != nil {
		return nil, err
	}
	ux.Logger.PrintToUser("Press enter on a prompt to keep the suggested value.")
	return suggestion, nil
}

// resolveImage returns the image to upload: the --image file when given,
// otherwise a freshly composed artwork. Without usable source images the
// operator is asked for a file instead.
func resolveImage(imagePath string) (string, error) {
	if imagePath != "" {
		return checkImage(imagePath)
	}
	dir := app.GetArtworkDir()
	path, err := composeArtwork(dir)
	if !errors.Is(err, artwork.ErrNoImages) {
		return path, err
	}
	ux.Logger.RedXToUser("%s", err)
	path, err = app.Prompt.CaptureImagePath("Enter the path of the token image")
	if err != nil {
		return "", err
	}
	return checkImage(strings.TrimSpace(path))
}

func checkImage(path string) (string, error) {
	info, err := app.Fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("image %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("image %s is a directory", path)
	}
	return path, nil
}

func printSummary(p *launcher.Params) error {
	ux.Logger.PrintLineSeparator()
	return ux.PrintRows(ux.Logger.Writer(), "Parameter", []ux.Row{
		{Label: "Name", Value: p.Name},
		{Label: "Symbol", Value: p.Symbol},
		{Label: "Description", Value: p.Description},
		{Label: "Twitter", Value: p.Twitter},
		{Label: "Telegram", Value: p.Telegram},
		{Label: "Website", Value: p.Website},
		{Label: "Image", Value: p.ImagePath},
		{Label: "Initial buy", Value: ux.FormatSOL(p.Amount)},
		{Label: "Slippage", Value: ux.FormatPercent(p.Slippage)},
		{Label: "Priority fee", Value: ux.FormatSOL(p.PriorityFee)},
		{Label: "Wallet", Value: p.PublicKey},
	})
}

func printConfirmation(p *launcher.Params, result *deploy.Result) {
	if result == nil {
		return
	}
	ux.Logger.PrintToUser("Initial buy: %s", ux.FormatSOL(p.Amount))
	ux.Logger.PrintToUser("Mint address: %s", result.Mint)
	if !status.NewAnimator(ux.Logger.Writer()).IsTTY() {
		return
	}
	if err := ux.PrintQRCode(ux.Logger.Writer(), result.URL); err != nil {
		app.Log.Debug("qr code rendering failed", zap.Error(err))
	}
}
