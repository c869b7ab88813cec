package goldenmesh

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgPrecision is the number of user units per pixel. The SVG primitives only accept
// integer coordinates, so the drawing is scaled up and mapped back through the view box.
const svgPrecision = 10

// SVG is a vector Sink writing the frame as an SVG document.
// The document is opened by Start and must be closed by End.
type SVG struct {
	Title       string
	Description string

	canvas        *svg.SVG
	width, height int
}

// NewSVG creates an SVG sink writing into w.
func NewSVG(w io.Writer, width, height int) *SVG {
	return &SVG{
		canvas: svg.New(w),
		width:  width,
		height: height,
	}
}

// Start writes the document header.
func (s *SVG) Start() {
	s.canvas.Startview(s.width, s.height, 0, 0, s.width*svgPrecision, s.height*svgPrecision)
	if s.Title != "" {
		s.canvas.Title(s.Title)
	}
	if s.Description != "" {
		s.canvas.Desc(s.Description)
	}
}

// End closes the document.
func (s *SVG) End() {
	s.canvas.End()
}

// Clear paints the background.
func (s *SVG) Clear(width, height float64) {
	s.canvas.Rect(0, 0, units(width), units(height), "fill:"+Background.Hex())
}

// StrokeLine writes a line element.
func (s *SVG) StrokeLine(x1, y1, x2, y2 float64, c RGB, alpha, lineWidth float64) {
	style := fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f;stroke-linecap:round",
		c.Hex(), alpha, lineWidth*svgPrecision)
	s.canvas.Line(units(x1), units(y1), units(x2), units(y2), style)
}

// FillCircle writes a circle element.
func (s *SVG) FillCircle(x, y, radius float64, c RGB, alpha float64) {
	style := fmt.Sprintf("fill:%s;fill-opacity:%.3f", c.Hex(), alpha)
	s.canvas.Circle(units(x), units(y), units(radius), style)
}

func units(v float64) int {
	return int(math.Round(v * svgPrecision))
}
