package goldenmesh

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// EncodeGIF writes the frames as an endlessly looping animated GIF.
// Every frame is resampled to width x height and dithered onto the Plan9 palette.
// The delay between frames is expressed in hundredths of a second.
func EncodeGIF(w io.Writer, frames []image.Image, delay, width, height int) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	rect := image.Rect(0, 0, width, height)

	for _, frame := range frames {
		src := frame
		if !frame.Bounds().Size().Eq(rect.Size()) {
			scaled := image.NewNRGBA(rect)
			draw.ApproxBiLinear.Scale(scaled, rect, frame, frame.Bounds(), draw.Src, nil)
			src = scaled
		}
		dst := image.NewPaletted(rect, palette.Plan9)
		draw.FloydSteinberg.Draw(dst, rect, src, src.Bounds().Min)

		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return errors.Wrap(err, "unable to encode the GIF animation")
	}
	return nil
}
