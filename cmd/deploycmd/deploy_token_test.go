// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/heliost/cli/internal/testutils"
	"github.com/heliost/cli/pkg/artwork"
	"github.com/heliost/cli/pkg/deploy"
	"github.com/heliost/cli/pkg/launcher"
	"github.com/heliost/cli/pkg/models"
	"github.com/heliost/cli/pkg/prompts/mocks"
	"github.com/heliost/cli/pkg/tokengen"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	prompter *mocks.Prompter
	fs       afero.Fs
	out      *bytes.Buffer
	services *testutils.Services
	operator solana.PrivateKey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prompter := &mocks.Prompter{}
	injected, fs, out := testutils.SetupTestInTempDir(t, prompter)
	app = injected

	services := testutils.NewServices(t)
	services.Configure()

	operator, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	writePNG(t, fs, "logo.png", color.NRGBA{R: 200, A: 255})
	return &fixture{prompter: prompter, fs: fs, out: out, services: services, operator: operator}
}

func writePNG(t *testing.T, fs afero.Fs, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

// answer queues the wizard answers in prompt order. Numeric answers left
// empty fall back to the defaults.
func (f *fixture) answer(name, symbol, description string) {
	text := []struct{ label, value string }{
		{"Enter token name", name},
		{"Enter token symbol", symbol},
		{"Enter token description", description},
		{"Enter Twitter handle (optional)", ""},
		{"Enter Telegram group (optional)", "@demo"},
		{"Enter website URL (optional)", ""},
		{"Enter initial buy amount in SOL (default 1)", ""},
		{"Enter slippage percentage (default 10)", ""},
		{"Enter priority fee in SOL (default 0.0005)", ""},
		{"Enter your developer wallet public key", f.operator.PublicKey().String()},
	}
	for _, a := range text {
		f.prompter.On("CaptureStringAllowEmpty", a.label).Return(a.value, nil).Once()
	}
	f.prompter.On("CaptureSecret", "Enter your developer wallet private key").Return(f.operator.String(), nil).Once()
}

func (f *fixture) run(args ...string) error {
	cmd := NewCmd(app)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd.ExecuteContext(context.Background())
}

func TestDeployTokenSuccess(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.answer("DemoCoin", "DEMO", "test")

	require.NoError(f.run("--network", "solana", "--image", "logo.png"))
	f.prompter.AssertExpectations(t)

	forms := f.services.Forms()
	require.Len(forms, 1)
	require.Equal("DemoCoin", forms[0]["name"])
	require.Equal("DEMO", forms[0]["symbol"])
	require.Equal("@demo", forms[0]["telegram"])
	require.Equal("logo.png", forms[0]["file"])

	creates := f.services.CreateRequests()
	require.Len(creates, 1)
	require.Equal(f.operator.PublicKey().String(), creates[0]["publicKey"])
	require.Equal("create", creates[0]["action"])
	require.Equal(1.0, creates[0]["amount"])
	require.Equal(10.0, creates[0]["slippage"])
	require.Equal(0.0005, creates[0]["priorityFee"])
	require.Equal(1, f.services.Sends())

	out := f.out.String()
	url := "https://explorer.test/tx/" + f.services.Signature.String()
	require.Contains(out, "Token created successfully! Transaction: "+url)
	require.Contains(out, "Initial buy: 1 SOL")
	require.Contains(out, "Mint address: "+creates[0]["mint"].(string))
	require.NotContains(out, f.operator.String())
}

func TestDeployTokenRejectsOtherNetworks(t *testing.T) {
	f := newFixture(t)
	err := f.run("--network", "ethereum", "--image", "logo.png")
	require.ErrorIs(t, err, models.ErrUnsupportedNetwork)
	require.Equal(t, "Only Solana network is supported", err.Error())
	f.prompter.AssertNotCalled(t, "CaptureStringAllowEmpty", mock.Anything)
	require.Empty(t, f.services.Forms())
}

func TestDeployTokenRelayFailure(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.services.FailRelay(http.StatusInternalServerError)
	f.answer("DemoCoin", "DEMO", "test")

	err := f.run("--network", "solana", "--image", "logo.png")
	require.ErrorIs(err, launcher.ErrTokenCreation)
	require.ErrorIs(err, deploy.ErrTransactionConstruction)
	require.Equal("Token creation failed: Transaction creation failed: Internal Server Error", err.Error())
	require.Zero(f.services.Sends())
	require.NotContains(f.out.String(), "Token created successfully")
}

func TestDeployTokenRepromptsInvalidInput(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.prompter.On("CaptureStringAllowEmpty", "Enter token name").Return("   ", nil).Once()
	f.answer("DemoCoin", "DEMO", "test")

	require.NoError(f.run("--network", "solana", "--image", "logo.png"))
	require.Contains(f.out.String(), "Invalid input. Token name cannot be empty. Please try again.")
	f.prompter.AssertNumberOfCalls(t, "CaptureStringAllowEmpty", 11)
	require.Equal(1, f.services.Sends())
}

func TestDeployTokenUsesSuggestions(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.prompter.On("CaptureStringAllowEmpty", "Enter token name [SunCoin]").Return("", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", "Enter token symbol [SUN]").Return("MINE", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", "Enter token description [a bright token]").Return("", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", "Enter Twitter handle (optional)").Return("", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", "Enter Telegram group (optional)").Return("", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", "Enter website URL (optional) [https://sun.test]").Return("", nil).Once()
	f.prompter.On("CaptureStringAllowEmpty", mock.Anything).Return("", nil).Times(3)
	f.prompter.On("CaptureStringAllowEmpty", "Enter your developer wallet public key").Return(f.operator.PublicKey().String(), nil).Once()
	f.prompter.On("CaptureSecret", mock.Anything).Return(f.operator.String(), nil).Once()

	require.NoError(f.run("--network", "solana", "--image", "logo.png", "--suggest"))

	forms := f.services.Forms()
	require.Len(forms, 1)
	require.Equal("SunCoin", forms[0]["name"])
	require.Equal("MINE", forms[0]["symbol"])
	require.Equal("a bright token", forms[0]["description"])
	require.Equal("https://sun.test", forms[0]["website"])
	require.Contains(f.out.String(), "SunCoin")
}

func TestDeployTokenMissingImage(t *testing.T) {
	f := newFixture(t)
	err := f.run("--network", "solana", "--image", "missing.png")
	require.ErrorContains(t, err, "image missing.png")
	f.prompter.AssertNotCalled(t, "CaptureStringAllowEmpty", mock.Anything)
}

func TestComposeArtworkRegenerates(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	writePNG(t, f.fs, "images/a.png", color.NRGBA{R: 255, A: 255})
	writePNG(t, f.fs, "images/b.png", color.NRGBA{B: 255, A: 255})
	f.prompter.On("CaptureYesNo", "Would you like to regenerate the image?").Return(true, nil).Once()
	f.prompter.On("CaptureYesNo", "Would you like to regenerate the image?").Return(false, nil).Once()

	path, err := composeArtwork("images")
	require.NoError(err)
	require.Equal("output.png", path)
	exists, err := afero.Exists(f.fs, path)
	require.NoError(err)
	require.True(exists)
	f.prompter.AssertNumberOfCalls(t, "CaptureYesNo", 2)
	require.Contains(f.out.String(), "Token image saved to output.png")
}

func TestComposeArtworkWithoutImages(t *testing.T) {
	newFixture(t)
	_, err := composeArtwork("images")
	require.ErrorIs(t, err, artwork.ErrNoImages)
}

func TestResolveImageFallsBackToPrompt(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.prompter.On("CaptureImagePath", "Enter the path of the token image").Return(" logo.png ", nil).Once()

	path, err := resolveImage("")
	require.NoError(err)
	require.Equal("logo.png", path)
	require.Contains(f.out.String(), "no valid images found")
	f.prompter.AssertNotCalled(t, "CaptureYesNo", mock.Anything)
}

func TestCaptureFallbacks(t *testing.T) {
	defaults := launcher.NewParams()
	require.Equal(t, "1", defaultNumber(launcher.FieldAmount, defaults))
	require.Equal(t, "10", defaultNumber(launcher.FieldSlippage, defaults))
	require.Equal(t, "0.0005", defaultNumber(launcher.FieldPriorityFee, defaults))

	s := &tokengen.Suggestion{Name: "SunCoin", Website: "https://sun.test"}
	require.Equal(t, "SunCoin", suggested(launcher.FieldName, s))
	require.Equal(t, "https://sun.test", suggested(launcher.FieldWebsite, s))
	require.Empty(t, suggested(launcher.FieldTwitter, s))
	require.Empty(t, suggested(launcher.FieldName, nil))
}
