package goldenmesh

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Canvas is a raster Sink backed by a gg drawing context.
type Canvas struct {
	*gg.Context
	width, height float64
	dpr           float64
}

// NewCanvas creates a canvas for a width x height logical area.
// The backing image is dpr times larger, the drawing commands being scaled accordingly.
func NewCanvas(width, height int, dpr float64) *Canvas {
	if dpr <= 0 {
		dpr = 1
	}
	pw := int(math.Ceil(float64(width) * dpr))
	ph := int(math.Ceil(float64(height) * dpr))

	ctx := gg.NewContext(pw, ph)
	ctx.Scale(dpr, dpr)
	ctx.SetLineCapRound()

	return &Canvas{
		Context: ctx,
		width:   float64(width),
		height:  float64(height),
		dpr:     dpr,
	}
}

// Clear paints the area with the background color.
func (c *Canvas) Clear(width, height float64) {
	c.Push()
	c.SetColor(Background.NRGBA(1))
	c.DrawRectangle(0, 0, width, height)
	c.Fill()
	c.Pop()
}

// StrokeLine draws a line segment.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, col RGB, alpha, lineWidth float64) {
	c.Push()
	c.DrawLine(x1, y1, x2, y2)
	c.SetStrokeStyle(gg.NewSolidPattern(col.NRGBA(alpha)))
	c.SetLineWidth(lineWidth)
	c.Stroke()
	c.Pop()
}

// FillCircle draws a filled disc.
func (c *Canvas) FillCircle(x, y, radius float64, col RGB, alpha float64) {
	c.Push()
	c.DrawCircle(x, y, radius)
	c.SetFillStyle(gg.NewSolidPattern(col.NRGBA(alpha)))
	c.Fill()
	c.Pop()
}

// Mist fades the outer part of the drawing into the background, followed by a subtle vignette.
// It's meant to be called after the engine has rendered the frame.
func (c *Canvas) Mist() {
	// Patterns are evaluated in image space, not in the scaled user space.
	cx, cy := c.width/2*c.dpr, c.height/2*c.dpr
	short := math.Min(c.width, c.height) * c.dpr
	long := math.Max(c.width, c.height) * c.dpr

	mist := gg.NewRadialGradient(cx, cy, short*0.35, cx, cy, short*0.55)
	mist.AddColorStop(0, Background.NRGBA(0))
	mist.AddColorStop(0.5, Background.NRGBA(0.4))
	mist.AddColorStop(0.8, Background.NRGBA(0.75))
	mist.AddColorStop(1, Background.NRGBA(0.95))

	vignette := gg.NewRadialGradient(cx, cy, 0, cx, cy, long*0.7)
	vignette.AddColorStop(0, Background.NRGBA(0))
	vignette.AddColorStop(0.6, Background.NRGBA(0.1))
	vignette.AddColorStop(1, Background.NRGBA(0.4))

	for _, g := range []gg.Gradient{mist, vignette} {
		c.Push()
		c.DrawRectangle(0, 0, c.width, c.height)
		c.SetFillStyle(g)
		c.Fill()
		c.Pop()
	}
}

// Caption writes a short label in the bottom left corner.
func (c *Canvas) Caption(text string) {
	c.Push()
	c.SetFontFace(basicfont.Face7x13)
	c.SetColor(color.NRGBA{R: Gold.R, G: Gold.G, B: Gold.B, A: 0xb0})
	c.DrawStringAnchored(text, 8, c.height-8, 0, 0)
	c.Pop()
}

// Frame returns the canvas content, optionally post-processed.
// A positive grain amount applies a film grain, while gray converts the frame to grayscale.
func (c *Canvas) Frame(grain int, gray bool) image.Image {
	img := ImgToNRGBA(c.Image())
	if gray {
		img = Grayscale(img)
	}
	if grain > 0 {
		img = Grain(grain, img)
	}
	return img
}

// EncodePNG writes the image into w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "unable to encode the PNG image")
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func SavePNG(path string, img image.Image) (err error) {
	fq, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create the output file %s", path)
	}
	defer func() {
		if cerr := fq.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "unable to close the output file %s", path)
		}
	}()

	return EncodePNG(fq, img)
}
