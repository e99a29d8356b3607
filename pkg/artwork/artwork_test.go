// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func writePNG(t *testing.T, fs afero.Fs, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func artworkFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "images/1.png", solid(20, 10, color.NRGBA{R: 255, A: 255}))
	writePNG(t, fs, "images/2.PNG", solid(10, 30, color.NRGBA{G: 255, A: 255}))
	writePNG(t, fs, "images/3.png", solid(16, 16, color.NRGBA{B: 255, A: 255}))
	require.NoError(t, afero.WriteFile(fs, "images/notes.txt", []byte("not an image"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "images/broken.jpg", []byte("not a jpeg"), 0o644))
	return fs
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func TestSources(t *testing.T) {
	c := NewCompositor(artworkFs(t))
	paths, err := c.Sources("images")
	require.NoError(t, err)
	require.Equal(t, []string{"images/1.png", "images/2.PNG", "images/3.png", "images/broken.jpg"}, paths)

	_, err = c.Sources("missing")
	require.ErrorIs(t, err, ErrNoImages)
}

func TestComposeSizeAndDeterminism(t *testing.T) {
	require := require.New(t)
	fs := artworkFs(t)

	a, err := NewCompositor(fs, WithSize(24), seeded(7)).Compose("images")
	require.NoError(err)
	require.Equal(image.Rect(0, 0, 24, 24), a.Bounds())

	b, err := NewCompositor(fs, WithSize(24), seeded(7)).Compose("images")
	require.NoError(err)
	require.Equal(a.Pix, b.Pix)

	// the focused layer is drawn at 80% opacity or more
	for i := 3; i < len(a.Pix); i += 4 {
		require.GreaterOrEqual(a.Pix[i], uint8(200))
	}
}

func TestComposeNoImages(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "images/broken.png", []byte("nope"), 0o644))

	_, err := NewCompositor(fs).Compose("images")
	require.ErrorIs(t, err, ErrNoImages)
}

func TestRenderWritesPNG(t *testing.T) {
	fs := artworkFs(t)
	require.NoError(t, NewCompositor(fs, WithSize(12), seeded(1)).Render("images", "output.png"))

	f, err := fs.Open("output.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
}

func TestCoverCropsCenter(t *testing.T) {
	// left third red, middle third green, right third blue
	src := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	for x := 0; x < 30; x++ {
		c := color.NRGBA{B: 255, A: 255}
		if x < 10 {
			c = color.NRGBA{R: 255, A: 255}
		} else if x < 20 {
			c = color.NRGBA{G: 255, A: 255}
		}
		for y := 0; y < 10; y++ {
			src.SetNRGBA(x, y, c)
		}
	}
	dst := cover(src, 8)
	require.Equal(t, image.Rect(0, 0, 8, 8), dst.Bounds())
	for _, p := range []image.Point{{0, 0}, {4, 4}, {7, 7}} {
		require.Equal(t, color.NRGBA{G: 255, A: 255}, dst.NRGBAAt(p.X, p.Y))
	}
}

func TestEffects(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	img := solid(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	negate(img, rng)
	require.Equal(t, color.NRGBA{R: 245, G: 235, B: 225, A: 128}, img.NRGBAAt(0, 0))

	img = solid(2, 2, color.NRGBA{R: 255, A: 255})
	grayscale(img, rng)
	got := img.NRGBAAt(1, 1)
	require.Equal(t, got.R, got.G)
	require.Equal(t, got.G, got.B)
	require.Equal(t, uint8(76), got.R)

	img = solid(3, 3, color.NRGBA{R: 50, G: 50, B: 50, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	normalize(img, rng)
	require.Equal(t, uint8(0), img.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(255), img.NRGBAAt(1, 1).R)

	for _, fx := range effects {
		img := solid(5, 5, color.NRGBA{R: 120, G: 60, B: 200, A: 255})
		fx(img, rng)
		require.Equal(t, uint8(255), img.NRGBAAt(2, 2).A, "effects keep alpha")
	}
}
