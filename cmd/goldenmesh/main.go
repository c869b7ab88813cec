package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/esimov/goldenmesh"
	"github.com/esimov/goldenmesh/utils"
	"github.com/pkg/errors"
)

const helperBanner = `
┌─┐┌─┐┬  ┌┬┐┌─┐┌┐┌┌┬┐┌─┐┌─┐┬ ┬
│ ┬│ ││   ││├┤ │││││││├┤ └─┐├─┤
└─┘└─┘┴─┘─┴┘└─┘┘└┘┴ ┴└─┘└─┘┴ ┴

Golden spiral Delaunay tessellation renderer.
`

var (
	// Flags
	destination = flag.String("out", "output.png", "Destination file (.png, .svg or .gif)")
	width       = flag.Int("width", 800, "Drawing area width")
	height      = flag.Int("height", 600, "Drawing area height")
	seedCount   = flag.Int("seeds", 80, "Number of seeds")
	frames      = flag.Int("frames", 60, "Number of animation frames")
	fps         = flag.Int("fps", 60, "Frames per second")
	noiseType   = flag.String("noise", "simplex", "Noise source: simplex, opensimplex or perlin")
	noiseSeed   = flag.Int64("noise-seed", int64(goldenmesh.DefaultNoiseSeed), "Noise seed")
	dpr         = flag.Float64("dpr", 1, "Device pixel ratio of the raster output")
	grain       = flag.Int("grain", 0, "Film grain amount")
	grayscale   = flag.Bool("gray", false, "Convert the raster output to grayscale")
	mist        = flag.Bool("mist", false, "Fade the outer area into the background")
	caption     = flag.Bool("caption", false, "Write the frame number and time on the raster output")
	still       = flag.Bool("still", false, "Reduced motion: keep the seeds on the spiral")
)

// options collects the raster output settings.
type options struct {
	dpr     float64
	grain   int
	gray    bool
	mist    bool
	caption bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helperBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal("Usage: goldenmesh -width 800 -height 600 -out output.png")
	}
	if *fps <= 0 || *frames <= 0 {
		log.Fatal("The number of frames and the frame rate should be positive")
	}

	noise, err := newSampler(*noiseType, *noiseSeed)
	if err != nil {
		log.Fatalf("Unable to create the noise source: %v", err)
	}
	engine := goldenmesh.NewWithNoise(float64(*width), float64(*height), *seedCount, noise)
	engine.SetReducedMotion(*still)

	opts := options{
		dpr:     *dpr,
		grain:   *grain,
		gray:    *grayscale,
		mist:    *mist,
		caption: *caption,
	}

	s := utils.NewSpinner()
	s.Start("Generating the tessellation...")
	start := time.Now()
	rec, err := process(engine, *destination, opts)
	s.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError rendering %s: %s\n",
			path.Base(*destination), utils.Decorate(os.Stderr, err.Error(), utils.ErrorColor))
		os.Exit(1)
	}

	fmt.Printf("\nGenerated in: %s\n", utils.Decorate(os.Stdout, utils.FormatTime(time.Since(start)), utils.SuccessColor))
	fmt.Printf("Total number of %s edges connecting %s seeds\n",
		utils.Decorate(os.Stdout, fmt.Sprint(rec.Count(goldenmesh.OpStrokeLine)), utils.SuccessColor),
		utils.Decorate(os.Stdout, fmt.Sprint(rec.Count(goldenmesh.OpFillCircle)), utils.SuccessColor),
	)
	fmt.Printf("Saved as: %s %s\n\n", path.Base(*destination), utils.Decorate(os.Stdout, "✓", utils.SuccessColor))
}

// newSampler returns the noise source identified by name.
func newSampler(name string, seed int64) (goldenmesh.Sampler, error) {
	switch name {
	case "simplex":
		return goldenmesh.NewSimplexNoise(uint32(seed)), nil
	case "opensimplex":
		return goldenmesh.NewOpenSimplex(seed), nil
	case "perlin":
		return goldenmesh.NewPerlin(seed), nil
	}
	return nil, errors.Errorf("unsupported noise type %q", name)
}

// process runs the animation and writes the result in the format given by the output extension.
// The returned recorder holds the draw commands of the last frame.
func process(engine *goldenmesh.Engine, output string, opts options) (_ *goldenmesh.Recorder, err error) {
	ext := strings.ToLower(filepath.Ext(output))
	switch ext {
	case ".png", ".svg", ".gif":
	default:
		return nil, errors.Errorf("unsupported output format %q", ext)
	}

	dt := 1000.0 / float64(*fps)
	w, h := engine.Bounds()
	rec := &goldenmesh.Recorder{}

	var anim []image.Image
	for i := 0; i < *frames; i++ {
		engine.Tick(dt)
		if ext == ".gif" {
			anim = append(anim, rasterize(engine, i, opts))
		}
	}
	engine.Render(rec)

	fq, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the output file")
	}
	defer func() {
		if cerr := fq.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "unable to close the output file")
		}
	}()

	switch ext {
	case ".png":
		err = goldenmesh.EncodePNG(fq, rasterize(engine, *frames-1, opts))
	case ".svg":
		svg := goldenmesh.NewSVG(fq, int(w), int(h))
		svg.Title = "Golden tessellation"
		svg.Description = fmt.Sprintf("%d seeds, time %.5f", len(engine.Seeds()), engine.Time())
		svg.Start()
		engine.Render(svg)
		svg.End()
	case ".gif":
		err = goldenmesh.EncodeGIF(fq, anim, frameDelay(*fps), int(w), int(h))
	}
	return rec, err
}

// frameDelay converts the frame rate into a GIF frame delay, expressed in hundredths of a second.
// Most viewers treat delays below 2 as 10, so the delay never goes under 2.
func frameDelay(fps int) int {
	return goldenmesh.Max(int(math.Round(100/float64(fps))), 2)
}

// rasterize renders the current frame of the engine into an image.
func rasterize(engine *goldenmesh.Engine, frame int, opts options) image.Image {
	w, h := engine.Bounds()
	canvas := goldenmesh.NewCanvas(int(w), int(h), opts.dpr)
	engine.Render(canvas)

	if opts.mist {
		canvas.Mist()
	}
	if opts.caption {
		canvas.Caption(fmt.Sprintf("frame %d  t=%.5f", frame+1, engine.Time()))
	}
	return canvas.Frame(opts.grain, opts.gray)
}
