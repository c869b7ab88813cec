package goldenmesh

import (
	"math"
	"testing"
)

func spiralPoints(count int, w, h float64) []Point {
	seeds := GenerateSeeds(count, w/2, h/2, math.Min(w, h)*RadiusFactor)
	points := make([]Point, len(seeds))
	for i, s := range seeds {
		points[i] = s.Point()
	}
	return points
}

// jitteredPoints returns a deterministic, irregular point cloud.
func jitteredPoints(count int, w, h float64) []Point {
	noise := NewSimplexNoise(7)
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		fi := float64(i)
		x := math.Mod(fi*37.77, w-20) + 10 + noise.Noise2D(fi*0.31, 0.5)*5
		y := math.Mod(fi*53.13, h-20) + 10 + noise.Noise2D(0.5, fi*0.29)*5
		points = append(points, Point{x, y})
	}
	return points
}

func TestTriangulate_FewPoints(t *testing.T) {
	tests := [][]Point{
		nil,
		{},
		{{10, 10}},
		{{10, 10}, {20, 20}},
	}
	for _, points := range tests {
		if edges := Triangulate(points, 100, 100); len(edges) != 0 {
			t.Errorf("expected no edges for %d points, got %d", len(points), len(edges))
		}
		d := &Delaunay{}
		if triangles := d.Init(100, 100).Insert(points).GetTriangles(); len(triangles) != 0 {
			t.Errorf("expected no triangles for %d points, got %d", len(points), len(triangles))
		}
	}
}

func TestTriangulate_SingleTriangle(t *testing.T) {
	points := []Point{{10, 10}, {80, 20}, {40, 70}}

	d := &Delaunay{}
	triangles := d.Init(100, 100).Insert(points).GetTriangles()
	if len(triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(triangles))
	}
	if edges := d.GetEdges(); len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
}

func TestTriangulate_ConvexQuad(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {0, 10}, {11, 11}}

	d := &Delaunay{}
	triangles := d.Init(20, 20).Insert(points).GetTriangles()
	if len(triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(triangles))
	}
	edges := d.GetEdges()
	if len(edges) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(edges))
	}

	// The (10,0)-(0,10) diagonal satisfies the empty circumcircle property, the other one doesn't.
	var diagonal bool
	for _, e := range edges {
		if (e.X1 == 10 && e.Y1 == 0 && e.X2 == 0 && e.Y2 == 10) ||
			(e.X1 == 0 && e.Y1 == 10 && e.X2 == 10 && e.Y2 == 0) {
			diagonal = true
		}
		if (e.X1 == 0 && e.Y1 == 0 && e.X2 == 11) || (e.X2 == 0 && e.Y2 == 0 && e.X1 == 11) {
			t.Errorf("unexpected diagonal %+v", e)
		}
	}
	if !diagonal {
		t.Errorf("missing the Delaunay diagonal in %+v", edges)
	}
}

func TestTriangulate_DelaunayProperty(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"spiral", spiralPoints(80, 800, 600)},
		{"jittered", jitteredPoints(120, 640, 480)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Delaunay{}
			triangles := d.Init(800, 600).Insert(tt.points).GetTriangles()
			if len(triangles) == 0 {
				t.Fatal("expected a non empty triangulation")
			}

			for _, tri := range triangles {
				if tri.A == tri.B || tri.B == tri.C || tri.A == tri.C {
					t.Fatalf("triangle %+v has repeated vertices", tri)
				}
				if tri.has(len(tt.points)) {
					t.Fatalf("triangle %+v references a super triangle vertex", tri)
				}

				a, b, c := tt.points[tri.A], tt.points[tri.B], tt.points[tri.C]
				area := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
				if math.Abs(area) < epsilon {
					continue
				}
				ux, uy, rsq := circumcircle(a, b, c, area)
				for i, p := range tt.points {
					if i == tri.A || i == tri.B || i == tri.C {
						continue
					}
					dx, dy := p.X-ux, p.Y-uy
					if dx*dx+dy*dy < rsq*(1-1e-9) {
						t.Fatalf("point %d %+v lies inside the circumcircle of %+v", i, p, tri)
					}
				}
			}
		})
	}
}

func TestTriangulate_UniqueEdges(t *testing.T) {
	points := spiralPoints(100, 500, 500)
	edges := Triangulate(points, 500, 500)
	if len(edges) == 0 {
		t.Fatal("expected edges")
	}

	index := make(map[Point]int, len(points))
	for i, p := range points {
		index[p] = i
	}

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		i, ok1 := index[Point{e.X1, e.Y1}]
		j, ok2 := index[Point{e.X2, e.Y2}]
		if !ok1 || !ok2 {
			t.Fatalf("edge %+v does not connect input points", e)
		}
		if i == j {
			t.Fatalf("edge %+v is a loop", e)
		}
		if i > j {
			i, j = j, i
		}
		if seen[[2]int{i, j}] {
			t.Fatalf("duplicate edge %d-%d", i, j)
		}
		seen[[2]int{i, j}] = true
	}

	// Euler's formula bounds the number of edges of a planar triangulation.
	if max := 3*len(points) - 3; len(edges) > max {
		t.Errorf("too many edges: %d > %d", len(edges), max)
	}
}

func TestTriangulate_Deterministic(t *testing.T) {
	points := jitteredPoints(60, 400, 400)
	e1 := Triangulate(points, 400, 400)
	e2 := Triangulate(points, 400, 400)

	if len(e1) != len(e2) {
		t.Fatalf("edge count differs: %d != %d", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Fatalf("edge %d differs: %+v != %+v", i, e1[i], e2[i])
		}
	}
}

func TestCircumcircleContains_Degenerate(t *testing.T) {
	pts := []Point{{0, 0}, {5, 5}, {10, 10}, {5, 5.0000000001}}
	tri := Triangle{0, 1, 2}
	if tri.circumcircleContains(pts, pts[3]) {
		t.Error("a degenerate triangle should never contain a point")
	}
}

func TestCircumcircleContains(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {0, 10}}
	tri := Triangle{0, 1, 2}

	if !tri.circumcircleContains(pts, Point{5, 5}) {
		t.Error("the circumcenter should be inside the circumcircle")
	}
	if tri.circumcircleContains(pts, Point{20, 20}) {
		t.Error("(20,20) should be outside the circumcircle")
	}
	if tri.circumcircleContains(pts, Point{10, 10}) {
		t.Error("a cocircular point is not strictly inside")
	}
}

func TestDelaunay_CopiesPoints(t *testing.T) {
	points := []Point{{10, 10}, {80, 20}, {40, 70}}

	d := &Delaunay{}
	d.Init(100, 100).Insert(points)
	want := d.GetEdges()

	points[0] = Point{-500, -500}
	got := d.GetEdges()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge %d changed after the input was modified: %+v != %+v", i, got[i], want[i])
		}
	}
}
