// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artwork

import (
	"image"
	"math"
	"math/rand/v2"
)

// effect rewrites img in place.
type effect func(img *image.NRGBA, rng *rand.Rand)

// effects is the pool a layer draws its random treatments from.
var effects = []effect{
	modulate,
	tint,
	blur,
	gammaCorrect,
	negate,
	grayscale,
	normalize,
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// eachPixel applies fn to the colour channels of every pixel. Alpha is kept.
func eachPixel(img *image.NRGBA, fn func(r, g, b uint8) (uint8, uint8, uint8)) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = fn(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
}

// modulate scales brightness by 0.75-1.25 and saturation by 0.6-1.4.
func modulate(img *image.NRGBA, rng *rand.Rand) {
	brightness := 0.75 + rng.Float64()*0.5
	saturation := 0.6 + rng.Float64()*0.8
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		l := luma(r, g, b)
		adjust := func(c uint8) uint8 {
			return clamp((l + (float64(c)-l)*saturation) * brightness)
		}
		return adjust(r), adjust(g), adjust(b)
	})
}

// tint mixes every pixel halfway towards a random colour, scaled by the
// pixel's luminance.
func tint(img *image.NRGBA, rng *rand.Rand) {
	tr, tg, tb := float64(rng.IntN(256)), float64(rng.IntN(256)), float64(rng.IntN(256))
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		l := luma(r, g, b) / 255
		return clamp((float64(r) + tr*l) / 2), clamp((float64(g) + tg*l) / 2), clamp((float64(b) + tb*l) / 2)
	})
}

// blur applies a box blur of radius 1 or 2.
func blur(img *image.NRGBA, rng *rand.Rand) {
	radius := 1 + rng.IntN(2)
	b := img.Bounds()
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var sum [4]int
			n := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					p := image.Pt(x+dx, y+dy)
					if !p.In(b) {
						continue
					}
					off := img.PixOffset(p.X, p.Y)
					for c := 0; c < 4; c++ {
						sum[c] += int(src[off+c])
					}
					n++
				}
			}
			off := img.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				img.Pix[off+c] = uint8(sum[c] / n)
			}
		}
	}
}

// gammaCorrect brightens midtones with a gamma between 1 and 3.
func gammaCorrect(img *image.NRGBA, rng *rand.Rand) {
	inv := 1 / (1 + rng.Float64()*2)
	var lut [256]uint8
	for i := range lut {
		lut[i] = clamp(255 * math.Pow(float64(i)/255, inv))
	}
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		return lut[r], lut[g], lut[b]
	})
}

func negate(img *image.NRGBA, _ *rand.Rand) {
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		return 255 - r, 255 - g, 255 - b
	})
}

func grayscale(img *image.NRGBA, _ *rand.Rand) {
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		l := clamp(luma(r, g, b))
		return l, l, l
	})
}

// normalize stretches the channel range to the full 0-255 span.
func normalize(img *image.NRGBA, _ *rand.Rand) {
	lo, hi := uint8(255), uint8(0)
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		lo = min(lo, r, g, b)
		hi = max(hi, r, g, b)
		return r, g, b
	})
	if hi <= lo {
		return
	}
	scale := 255 / float64(hi-lo)
	eachPixel(img, func(r, g, b uint8) (uint8, uint8, uint8) {
		stretch := func(c uint8) uint8 { return clamp(float64(c-lo) * scale) }
		return stretch(r), stretch(g), stretch(b)
	})
}
