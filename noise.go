package goldenmesh

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// DefaultNoiseSeed is the seed used by the engine when no other noise source is provided.
const DefaultNoiseSeed uint32 = 42

// Skewing and unskewing factors for two dimensions.
const (
	f2 = 0.5 * (1.732050808 - 1.0)
	g2 = (3.0 - 1.732050808) / 6.0
)

var grad3 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Sampler is a deterministic two dimensional noise function
// returning values approximately in the [-1, 1] range.
type Sampler interface {
	Noise2D(x, y float64) float64
}

// SimplexNoise is a seeded 2D simplex noise generator.
type SimplexNoise struct {
	perm [512]uint8
}

// NewSimplexNoise builds the permutation table from seed.
// The identity table is shuffled by a Fisher-Yates pass driven by a linear congruential
// generator, then doubled to avoid index wrapping on lookups.
func NewSimplexNoise(seed uint32) *SimplexNoise {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	rng := seed
	for i := 255; i > 0; i-- {
		rng = rng*1103515245 + 12345
		j := int(rng>>16) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	sn := &SimplexNoise{}
	for i := range sn.perm {
		sn.perm[i] = p[i&255]
	}
	return sn
}

// Noise2D returns the simplex noise value at (x, y).
func (sn *SimplexNoise) Noise2D(x, y float64) float64 {
	// Skew the input space to determine which simplex cell we're in.
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Offsets of the middle corner: lower or upper triangle of the cell.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	gi0 := sn.perm[ii+int(sn.perm[jj])] % 12
	gi1 := sn.perm[ii+i1+int(sn.perm[jj+j1])] % 12
	gi2 := sn.perm[ii+1+int(sn.perm[jj+1])] % 12

	return 70 * (corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2))
}

// corner returns the contribution of a simplex corner, which fades to zero
// once the squared distance reaches 0.5.
func corner(gi uint8, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

// OpenSimplex adapts the OpenSimplex noise implementation to the Sampler interface.
type OpenSimplex struct {
	noise opensimplex.Noise
}

// NewOpenSimplex creates a new OpenSimplex sampler.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.New(seed)}
}

// Noise2D returns the OpenSimplex noise value at (x, y).
func (o *OpenSimplex) Noise2D(x, y float64) float64 {
	return o.noise.Eval2(x, y)
}

// Perlin adapts the classic Perlin noise to the Sampler interface.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a new Perlin sampler with two octaves.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(2, 2, 2, seed)}
}

// Noise2D returns the Perlin noise value at (x, y), clamped to [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	return Clamp(p.noise.Noise2D(x, y), -1, 1)
}
