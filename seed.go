package goldenmesh

import "math"

// GoldenAngle is the angle in radians between two consecutive seeds of the spiral: π(3-√5).
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Seed is a point of the tessellation. X and Y hold the current, animated position,
// while BaseX and BaseY hold the anchor around which the noise displaces the seed.
type Seed struct {
	X, Y         float64
	BaseX, BaseY float64
}

// Point returns the current position of the seed.
func (s Seed) Point() Point {
	return Point{s.X, s.Y}
}

// GenerateSeeds places count seeds on a Fermat spiral around the (cx, cy) center
// using Vogel's model: the n-th seed lies at distance c·√n from the center,
// rotated by n times the golden angle. The outermost seed stays within radius.
func GenerateSeeds(count int, cx, cy, radius float64) []Seed {
	if count <= 0 {
		return []Seed{}
	}
	seeds := make([]Seed, count)
	scale := radius / math.Sqrt(float64(count))

	for i := range seeds {
		n := float64(i)
		r := scale * math.Sqrt(n)
		theta := n * GoldenAngle

		x := cx + r*math.Cos(theta)
		y := cy + r*math.Sin(theta)
		seeds[i] = Seed{X: x, Y: y, BaseX: x, BaseY: y}
	}
	return seeds
}
