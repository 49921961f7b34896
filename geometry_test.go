package main

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// MustTriangle is NewTriangle for literals known to be valid
func MustTriangle(a, b, c Point) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// --- Point tests ---

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

// --- Triangle tests ---

func TestTriangleContains(t *testing.T) {
	ccw := MustTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	cw := MustTriangle(Point{0, 0}, Point{0, 4}, Point{4, 0})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{1, 1}, true},
		{"near hypotenuse inside", Point{1.99, 1.99}, true},
		{"outside beyond hypotenuse", Point{2.01, 2.01}, false},
		{"outside negative", Point{-1, 1}, false},
		{"vertex", Point{0, 0}, false},
		{"other vertex", Point{4, 0}, false},
		{"edge midpoint", Point{2, 0}, false},
		{"hypotenuse midpoint", Point{2, 2}, false},
		{"far away", Point{10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ccw.Contains(tt.p); got != tt.want {
				t.Errorf("ccw Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if got := cw.Contains(tt.p); got != tt.want {
				t.Errorf("cw Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleHalfPlaneSigns(t *testing.T) {
	tri := MustTriangle(Point{1, 1}, Point{5, 2}, Point{2, 6})
	for k := 0; k < 3; k++ {
		opposite := tri.Vertices[(k+2)%3]
		if tri.eval(k, opposite) <= 0 {
			t.Errorf("half-plane %d: opposite vertex evaluates to %f, want positive", k, tri.eval(k, opposite))
		}
		if !approxEqual(tri.eval(k, tri.Vertices[k]), 0, tolerance) {
			t.Errorf("half-plane %d: edge start should lie on the line", k)
		}
	}
}

func TestTriangleContainsCentroidProperty(t *testing.T) {
	triangles := []Triangle{
		MustTriangle(Point{0, 0}, Point{10, 0}, Point{5, 8}),
		MustTriangle(Point{3, 3}, Point{1, 7}, Point{9, 2}),
		MustTriangle(Point{-2, -1}, Point{0.5, 0.2}, Point{-1, 3}),
	}
	for i, tri := range triangles {
		v := tri.Vertices
		centroid := Point{(v[0].X + v[1].X + v[2].X) / 3, (v[0].Y + v[1].Y + v[2].Y) / 3}
		if !tri.Contains(centroid) {
			t.Errorf("triangle %d: centroid %v should be inside", i, centroid)
		}
		// Reflecting the centroid through a vertex puts it outside
		outside := Point{2*v[0].X - centroid.X, 2*v[0].Y - centroid.Y}
		if tri.Contains(outside) {
			t.Errorf("triangle %d: reflected point %v should be outside", i, outside)
		}
		for _, vertex := range v {
			if tri.Contains(vertex) {
				t.Errorf("triangle %d: vertex %v should be outside the open region", i, vertex)
			}
		}
	}
}

func TestTriangleContainsClosed(t *testing.T) {
	tri := MustTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	if !tri.ContainsClosed(Point{2, 0}) {
		t.Error("edge point should be inside the closed triangle")
	}
	if !tri.ContainsClosed(Point{0, 0}) {
		t.Error("vertex should be inside the closed triangle")
	}
	if tri.ContainsClosed(Point{3, 3}) {
		t.Error("(3,3) is outside")
	}
}

func TestNewTriangleDegenerate(t *testing.T) {
	_, err := NewTriangle(Point{0, 0}, Point{1, 1}, Point{2, 2})
	if !errors.Is(err, ErrDegenerateObstacle) {
		t.Fatalf("expected ErrDegenerateObstacle, got %v", err)
	}
	_, err = NewTriangle(Point{1, 1}, Point{1, 1}, Point{3, 0})
	if !errors.Is(err, ErrDegenerateObstacle) {
		t.Fatalf("expected ErrDegenerateObstacle for repeated vertex, got %v", err)
	}
}

func TestNewTriangleScaleInvariant(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		wantErr bool
	}{
		{"micro legs", Point{0, 0}, Point{1e-6, 0}, Point{0, 1e-6}, false},
		{"nano plane", Point{1e-8, 2e-8}, Point{9e-8, 1e-8}, Point{5e-8, 9e-8}, false},
		{"huge", Point{0, 0}, Point{1e9, 0}, Point{0, 1e9}, false},
		{"huge collinear", Point{0, 0}, Point{1e9, 1e9}, Point{2e9, 2e9}, true},
		{"sliver", Point{0, 0}, Point{1, 0}, Point{0.5, 1e-14}, true},
		{"single point", Point{1e-7, 1e-7}, Point{1e-7, 1e-7}, Point{1e-7, 1e-7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := NewTriangle(tt.a, tt.b, tt.c)
			if tt.wantErr {
				if !errors.Is(err, ErrDegenerateObstacle) {
					t.Fatalf("expected ErrDegenerateObstacle, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTriangle: %v", err)
			}
			centroid := Point{(tt.a.X + tt.b.X + tt.c.X) / 3, (tt.a.Y + tt.b.Y + tt.c.Y) / 3}
			if !tri.Contains(centroid) {
				t.Errorf("centroid %v should be inside", centroid)
			}
		})
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := MustTriangle(Point{1, 5}, Point{-2, 0}, Point{4, 2})
	b := tri.Bounds()
	if b.MinX != -2 || b.MinY != 0 || b.MaxX != 4 || b.MaxY != 5 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

// --- Segment intersection tests ---

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, q0, q1 Point
		want           bool
	}{
		{"crossing", Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}, true},
		{"disjoint", Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, false},
		{"touching endpoint", Point{0, 0}, Point{1, 1}, Point{1, 1}, Point{2, 0}, true},
		{"t junction", Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{1, 5}, true},
		{"would cross beyond end", Point{0, 0}, Point{1, 1}, Point{3, 0}, Point{0, 3}, false},
		{"parallel", Point{0, 0}, Point{2, 0}, Point{0, 1}, Point{2, 1}, false},
		{"collinear overlap", Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{3, 0}, false},
		{"zero length", Point{1, 1}, Point{1, 1}, Point{0, 0}, Point{2, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p0, tt.p1, tt.q0, tt.q1); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersectSymmetric(t *testing.T) {
	points := []Point{
		{0, 0}, {3, 1}, {1, 4}, {2, 2}, {5, 5}, {0, 3}, {4, 0}, {2.5, 0.5}, {-1, 2},
	}
	for a := 0; a < len(points); a++ {
		for b := a + 1; b < len(points); b++ {
			for c := 0; c < len(points); c++ {
				for d := c + 1; d < len(points); d++ {
					ab := SegmentsIntersect(points[a], points[b], points[c], points[d])
					cd := SegmentsIntersect(points[c], points[d], points[a], points[b])
					if ab != cd {
						t.Fatalf("asymmetric result for %v-%v and %v-%v: %v vs %v",
							points[a], points[b], points[c], points[d], ab, cd)
					}
				}
			}
		}
	}
}

func TestCrossingCount(t *testing.T) {
	tri := MustTriangle(Point{4, 1}, Point{6, 1}, Point{5, 5})

	if n := tri.CrossingCount(Point{1, 3}, Point{9, 3}); n != 2 {
		t.Errorf("segment through the triangle should cross 2 edges, got %d", n)
	}
	if n := tri.CrossingCount(Point{1, 0}, Point{9, 0}); n != 0 {
		t.Errorf("segment below the triangle should cross nothing, got %d", n)
	}
	if n := tri.CrossingCount(Point{1, 3}, Point{5, 3}); n != 1 {
		t.Errorf("segment ending inside should cross 1 edge, got %d", n)
	}
}
