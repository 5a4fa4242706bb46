package scene

import "image/color"

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Blend mixes two colors by averaging each channel, rounding halves up.
// The result is always opaque.
func Blend(c1, c2 color.RGBA) color.RGBA {
	return color.RGBA{
		R: mean(c1.R, c2.R),
		G: mean(c1.G, c2.G),
		B: mean(c1.B, c2.B),
		A: 255,
	}
}

func mean(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

// gradient maps index i of n onto a 0..255 channel value.
func gradient(i, n int) uint8 {
	if n <= 0 {
		return 0
	}
	return uint8(float32(i) / float32(n) * 255)
}

// withAlpha returns c as a non-premultiplied color with the given opacity.
func withAlpha(c color.RGBA, alpha float32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha) * 255)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
