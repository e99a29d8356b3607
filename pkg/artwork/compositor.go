// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artwork composes a token image from a directory of source images.
package artwork

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/status"
	"github.com/spf13/afero"
	xdraw "golang.org/x/image/draw"
)

var ErrNoImages = errors.New("no valid images found")

var sourceExts = []string{".png", ".jpg", ".jpeg"}

// Compositor layers randomly treated source images into one square picture.
// It is not safe for concurrent use; the random source is shared.
type Compositor struct {
	fs       afero.Fs
	rng      *rand.Rand
	size     int
	progress io.Writer
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithRand sets the random source. Tests pass a seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(c *Compositor) {
		c.rng = rng
	}
}

// WithSize sets the edge length of the output in pixels.
func WithSize(size int) Option {
	return func(c *Compositor) {
		c.size = size
	}
}

// WithProgress draws a progress bar on w while layers are processed.
func WithProgress(w io.Writer) Option {
	return func(c *Compositor) {
		c.progress = w
	}
}

// NewCompositor creates a compositor reading and writing through fs.
func NewCompositor(fs afero.Fs, opts ...Option) *Compositor {
	now := uint64(time.Now().UnixNano())
	c := &Compositor{
		fs:   fs,
		rng:  rand.New(rand.NewPCG(now, now>>1)),
		size: constants.ArtworkSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sources lists the png and jpeg files in dir, sorted by name.
func (c *Compositor) Sources(dir string) ([]string, error) {
	entries, err := afero.ReadDir(c.fs, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrNoImages, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artwork dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(sourceExts, strings.ToLower(filepath.Ext(e.Name()))) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// Compose builds one image from the sources in dir. Files that fail to
// decode are skipped; ErrNoImages is returned when none is left.
func (c *Compositor) Compose(dir string) (*image.NRGBA, error) {
	paths, err := c.Sources(dir)
	if err != nil {
		return nil, err
	}
	c.rng.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})

	var layers []*image.NRGBA
	for _, p := range paths {
		img, err := c.load(p)
		if err != nil {
			continue
		}
		layers = append(layers, img)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}

	var bar interface{ Add(int) error }
	if c.progress != nil {
		if pb := status.CreateProgressBar(c.progress, "Compositing layers", len(layers)); pb != nil {
			bar = pb
		}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, c.size, c.size))
	focused := c.rng.IntN(len(layers))
	for i, layer := range layers {
		for n := 2 + c.rng.IntN(2); n > 0; n-- {
			effects[c.rng.IntN(len(effects))](layer, c.rng)
		}
		opacity := 0.01 + c.rng.Float64()*0.2
		if i == focused {
			opacity = 0.8 + c.rng.Float64()*0.2
		}
		mask := image.NewUniform(color.Alpha{A: clamp(opacity * 255)})
		draw.DrawMask(canvas, canvas.Bounds(), layer, image.Point{}, mask, image.Point{}, draw.Over)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return canvas, nil
}

// Render composes dir and writes the result to output as PNG.
func (c *Compositor) Render(dir, output string) error {
	img, err := c.Compose(dir)
	if err != nil {
		return err
	}
	f, err := c.fs.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", output, err)
	}
	return f.Close()
}

func (c *Compositor) load(path string) (*image.NRGBA, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cover(src, c.size), nil
}

// cover scales src to fill a size×size square and crops the overflow
// evenly from both sides.
func cover(src image.Image, size int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	crop := b
	if w > h {
		side := h
		x0 := b.Min.X + (w-side)/2
		crop = image.Rect(x0, b.Min.Y, x0+side, b.Max.Y)
	} else if h > w {
		side := w
		y0 := b.Min.Y + (h-side)/2
		crop = image.Rect(b.Min.X, y0, b.Max.X, y0+side)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}
