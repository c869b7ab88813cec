package goldenmesh

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8 bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Color palette.
var (
	BrightGold = RGB{255, 215, 0}   // #FFD700
	Gold       = RGB{212, 165, 116} // #D4A574
	Bronze     = RGB{205, 127, 50}  // #CD7F32
	Background = RGB{14, 14, 17}    // #0E0E11
)

// NRGBA returns the color as a non-alpha-premultiplied color with the alpha in the [0, 1] range.
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(Clamp(alpha, 0, 1) * 255))}
}

// Colorful returns the color in the normalized [0, 1] space of go-colorful.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the #rrggbb form of the color.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// MapRatio maps a distance ratio to the gradient going from bright gold (0)
// over gold (0.5) to bronze (1).
// Channels are interpolated on the 0-255 scale and rounded half away from zero,
// so exact .5 ties (like the red channel at 0.25) always round up.
func MapRatio(ratio float64) RGB {
	ratio = Clamp(ratio, 0, 1)
	if ratio < 0.5 {
		return lerpRGB(BrightGold, Gold, ratio*2)
	}
	return lerpRGB(Gold, Bronze, (ratio-0.5)*2)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t)}
}

func lerp(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(Clamp(math.Round(v), 0, 255))
}
