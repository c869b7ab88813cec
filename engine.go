package goldenmesh

import "math"

// Animation parameters. The motion is deliberately slow.
const (
	// TimeScale converts the tick delta (milliseconds) into noise time.
	TimeScale = 0.00005
	// NoiseScale is the spatial frequency of the noise.
	NoiseScale = 0.003
	// Amplitude is the maximum displacement of a seed, in pixels.
	Amplitude = 8.0
	// AxisOffset shifts the noise time of the y axis to decorrelate it from the x axis.
	AxisOffset = 100.0
	// RadiusFactor is the spiral radius relative to the smaller side of the drawing area.
	RadiusFactor = 0.45
)

// Engine owns the seeds, the noise field and the current triangulation.
// An Engine is not safe for concurrent use.
type Engine struct {
	seeds []Seed
	edges []Edge
	noise Sampler

	width, height float64
	cx, cy        float64
	radius        float64
	time          float64

	reducedMotion bool
	points        []Point
	delaunay      Delaunay
}

// New creates an engine with seedCount seeds laid on a golden spiral
// centered in the width x height area. The noise field is seeded with DefaultNoiseSeed.
func New(width, height float64, seedCount int) *Engine {
	return NewWithNoise(width, height, seedCount, NewSimplexNoise(DefaultNoiseSeed))
}

// NewWithNoise creates an engine which displaces the seeds using the provided noise source.
func NewWithNoise(width, height float64, seedCount int, noise Sampler) *Engine {
	e := &Engine{noise: noise}
	e.Resize(width, height, seedCount)
	return e
}

// Resize recomputes the geometry for the new area and regenerates the seeds from scratch.
// The accumulated time is kept.
func (e *Engine) Resize(width, height float64, seedCount int) {
	e.width = width
	e.height = height
	e.cx = width / 2
	e.cy = height / 2
	e.radius = math.Min(width, height) * RadiusFactor

	e.seeds = GenerateSeeds(seedCount, e.cx, e.cy, e.radius)
	e.triangulate()
}

// SetReducedMotion freezes the animation: while on, Tick keeps every seed on its base position
// and the time does not advance.
func (e *Engine) SetReducedMotion(on bool) {
	e.reducedMotion = on
}

// Tick advances the animation by dt milliseconds, displaces the seeds
// and recomputes the triangulation.
func (e *Engine) Tick(dt float64) {
	if e.reducedMotion {
		for i := range e.seeds {
			s := &e.seeds[i]
			s.X, s.Y = s.BaseX, s.BaseY
		}
		e.triangulate()
		return
	}
	e.time += dt * TimeScale

	for i := range e.seeds {
		s := &e.seeds[i]
		nx := e.noise.Noise2D(s.BaseX*NoiseScale, e.time) * Amplitude
		ny := e.noise.Noise2D(s.BaseY*NoiseScale, e.time+AxisOffset) * Amplitude
		s.X = s.BaseX + nx
		s.Y = s.BaseY + ny
	}
	e.triangulate()
}

func (e *Engine) triangulate() {
	e.points = e.points[:0]
	for _, s := range e.seeds {
		e.points = append(e.points, s.Point())
	}
	e.edges = e.delaunay.Init(e.width, e.height).Insert(e.points).GetEdges()
}

// Render emits the draw commands of the current frame: the area is cleared,
// then the edges and finally the seeds are drawn. Colors, opacity and sizes fade
// with the distance from the center.
func (e *Engine) Render(sink Sink) {
	sink.Clear(e.width, e.height)

	for _, edge := range e.edges {
		mx, my := edge.Midpoint()
		ratio := e.ratio(mx, my)

		sink.StrokeLine(edge.X1, edge.Y1, edge.X2, edge.Y2,
			MapRatio(ratio),
			0.15+(1-ratio)*0.25,
			0.5+(1-ratio)*0.8,
		)
	}

	for _, s := range e.seeds {
		ratio := e.ratio(s.X, s.Y)

		sink.FillCircle(s.X, s.Y,
			1.5+(1-ratio)*1.5,
			MapRatio(ratio),
			0.4+(1-ratio)*0.4,
		)
	}
}

// ratio returns the distance of (x, y) from the center relative to the radius, capped at 1.
func (e *Engine) ratio(x, y float64) float64 {
	if e.radius <= 0 {
		return 1
	}
	dist := math.Hypot(x-e.cx, y-e.cy)
	return math.Min(dist/e.radius, 1)
}

// Time returns the accumulated animation time.
func (e *Engine) Time() float64 {
	return e.time
}

// Seeds returns a copy of the current seeds.
func (e *Engine) Seeds() []Seed {
	seeds := make([]Seed, len(e.seeds))
	copy(seeds, e.seeds)
	return seeds
}

// Edges returns a copy of the current triangulation edges.
func (e *Engine) Edges() []Edge {
	edges := make([]Edge, len(e.edges))
	copy(edges, e.edges)
	return edges
}

// Center returns the center of the spiral.
func (e *Engine) Center() (float64, float64) {
	return e.cx, e.cy
}

// Radius returns the spiral radius.
func (e *Engine) Radius() float64 {
	return e.radius
}

// Bounds returns the size of the drawing area.
func (e *Engine) Bounds() (float64, float64) {
	return e.width, e.height
}
