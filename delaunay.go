package goldenmesh

import (
	"math"
	"sort"
)

// epsilon is the threshold under which a triangle is considered degenerate.
const epsilon = 1e-10

// Point defines a struct having as components the point X and Y coordinate position.
type Point struct {
	X, Y float64
}

// Edge is a finalized triangulation edge, materialized as the coordinates of its two end points.
type Edge struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Midpoint returns the middle of the edge.
func (e Edge) Midpoint() (float64, float64) {
	return (e.X1 + e.X2) * 0.5, (e.Y1 + e.Y2) * 0.5
}

// Triangle holds three distinct indices into the point set it was built against.
type Triangle struct {
	A, B, C int
}

// edge is an index pair used during triangulation.
type edge struct {
	a, b int
}

// key returns the canonical form of the edge, having the smaller index first.
func (e edge) key() edge {
	if e.a > e.b {
		return edge{e.b, e.a}
	}
	return e
}

func (t Triangle) edges() [3]edge {
	return [3]edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// has reports whether the triangle references a vertex with index greater or equal to n.
func (t Triangle) has(n int) bool {
	return t.A >= n || t.B >= n || t.C >= n
}

// circumcircleContains checks if the point p lies strictly inside the circumcircle of the triangle.
// A degenerate triangle never contains a point.
func (t Triangle) circumcircleContains(pts []Point, p Point) bool {
	a, b, c := pts[t.A], pts[t.B], pts[t.C]

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < epsilon {
		return false
	}
	ux, uy, rsq := circumcircle(a, b, c, d)

	dx, dy := p.X-ux, p.Y-uy
	return dx*dx+dy*dy < rsq
}

// circumcircle returns the circumcenter and the squared circumradius of the triangle abc.
// d must be twice the signed area of the triangle.
func circumcircle(a, b, c Point, d float64) (float64, float64, float64) {
	sa := a.X*a.X + a.Y*a.Y
	sb := b.X*b.X + b.Y*b.Y
	sc := c.X*c.X + c.Y*c.Y

	ux := (sa*(b.Y-c.Y) + sb*(c.Y-a.Y) + sc*(a.Y-b.Y)) / d
	uy := (sa*(c.X-b.X) + sb*(a.X-c.X) + sc*(b.X-a.X)) / d

	dx, dy := a.X-ux, a.Y-uy
	return ux, uy, dx*dx + dy*dy
}

// Delaunay defines the main components for the triangulation.
type Delaunay struct {
	width     float64
	height    float64
	points    []Point
	triangles []Triangle
}

// Init initialize the delaunay structure.
func (d *Delaunay) Init(width, height float64) *Delaunay {
	d.width = width
	d.height = height
	d.points = nil
	d.triangles = nil

	return d
}

// Insert triangulates the provided points using the Bowyer-Watson algorithm.
// The points are inserted in the order they are given. A set with fewer than three points
// produces no triangles. The points are copied, so the caller may reuse the slice.
func (d *Delaunay) Insert(points []Point) *Delaunay {
	n := len(points)
	d.points = make([]Point, n)
	copy(d.points, points)
	d.triangles = nil

	if n < 3 {
		return d
	}

	// The super triangle vertices are appended to a working copy of the points,
	// so they never escape this call.
	margin := math.Max(d.width, d.height) * 2
	pts := make([]Point, n, n+3)
	copy(pts, points)
	pts = append(pts,
		Point{d.width / 2, -margin},
		Point{-margin, d.height + margin},
		Point{d.width + margin, d.height + margin},
	)
	triangles := []Triangle{{n, n + 1, n + 2}}

	for i := 0; i < n; i++ {
		p := pts[i]

		var bad, temps []Triangle
		for _, t := range triangles {
			if t.circumcircleContains(pts, p) {
				bad = append(bad, t)
			} else {
				temps = append(temps, t)
			}
		}

		// Count how many bad triangles share each edge: the cavity boundary is made
		// of the edges which belong to a single bad triangle.
		shared := make(map[edge]int, len(bad)*3)
		for _, t := range bad {
			for _, e := range t.edges() {
				shared[e.key()]++
			}
		}
		for _, t := range bad {
			for _, e := range t.edges() {
				if shared[e.key()] == 1 {
					temps = append(temps, Triangle{e.a, e.b, i})
				}
			}
		}
		triangles = temps
	}

	// Remove the triangles connected to the super triangle vertices.
	d.triangles = triangles[:0]
	for _, t := range triangles {
		if !t.has(n) {
			d.triangles = append(d.triangles, t)
		}
	}
	return d
}

// GetTriangles returns the triangles of the last insertion.
func (d *Delaunay) GetTriangles() []Triangle {
	return d.triangles
}

// GetEdges returns the unique edges of the triangulation, ordered by their end point indices.
func (d *Delaunay) GetEdges() []Edge {
	set := make(map[edge]struct{}, len(d.triangles)*3)
	keys := make([]edge, 0, len(d.triangles)*3)

	for _, t := range d.triangles {
		for _, e := range t.edges() {
			k := e.key()
			if _, ok := set[k]; !ok {
				set[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	edges := make([]Edge, len(keys))
	for i, k := range keys {
		p0, p1 := d.points[k.a], d.points[k.b]
		edges[i] = Edge{X1: p0.X, Y1: p0.Y, X2: p1.X, Y2: p1.Y}
	}
	return edges
}

// Triangulate computes the Delaunay triangulation of the points lying inside
// the [0,width]x[0,height] region and returns its deduplicated edges.
func Triangulate(points []Point, width, height float64) []Edge {
	d := &Delaunay{}
	return d.Init(width, height).Insert(points).GetEdges()
}
