/*
Package goldenmesh computes and animates a decorative tessellation: seeds are laid
on a golden angle spiral, connected by their Delaunay triangulation and slowly
displaced by a seeded simplex noise, while the distance from the center drives
a bright gold to bronze color gradient.

The engine does not draw anything by itself. Each frame is emitted as an ordered
list of draw commands to a Sink: the area is cleared, then the edges are stroked and
the seeds are filled. The package provides a raster sink built on top of gg,
an SVG sink and an in-memory Recorder.

Example to render a few frames of the animation as a PNG image:

	package main

	import (
		"log"

		"github.com/esimov/goldenmesh"
	)

	func main() {
		engine := goldenmesh.New(800, 600, 80)
		canvas := goldenmesh.NewCanvas(800, 600, 1)

		for i := 0; i < 60; i++ {
			engine.Tick(1000.0 / 60)
		}
		engine.Render(canvas)
		canvas.Mist()

		if err := goldenmesh.SavePNG("output.png", canvas.Frame(0, false)); err != nil {
			log.Fatalf("Error saving the frame: %v", err)
		}
	}

Example to export the current frame as SVG:

	svg := goldenmesh.NewSVG(file, 800, 600)
	svg.Title = "Golden tessellation"
	svg.Start()
	engine.Render(svg)
	svg.End()

Replaying the same sequence of Tick calls on engines created with the same arguments
always yields the same frames.
*/
package goldenmesh
