package main

import (
	"fmt"
	"math"
)

// degenerateRatio bounds the doubled area of a triangle relative to its longest squared
// side. Triangles at or below it are too thin to have a usable interior.
const degenerateRatio = 1e-12

// Point is a configuration in the plane
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func squaredDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// BBox represents an axis-aligned bounding box
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether other lies inside b (inclusive).
func (b BBox) Contains(other BBox) bool {
	return other.MinX >= b.MinX && other.MaxX <= b.MaxX &&
		other.MinY >= b.MinY && other.MaxY <= b.MaxY
}

// segmentBBox returns the bounding box of the segment ab
func segmentBBox(a, b Point) BBox {
	return BBox{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// Triangle is a triangular obstacle. Besides its vertices it keeps the half-plane
// form A·p - C, one row per edge, signed so that the opposite vertex is positive.
type Triangle struct {
	Vertices [3]Point
	A        [3][2]float64
	C        [3]float64
}

// NewTriangle builds the half-plane form of the triangle abc.
func NewTriangle(a, b, c Point) (Triangle, error) {
	t := Triangle{Vertices: [3]Point{a, b, c}}

	area2 := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	longest := math.Max(squaredDistance(a, b), math.Max(squaredDistance(b, c), squaredDistance(c, a)))
	if math.IsNaN(area2) || math.Abs(area2) <= degenerateRatio*longest {
		return t, fmt.Errorf("%w: %v %v %v", ErrDegenerateObstacle, a, b, c)
	}

	for k := 0; k < 3; k++ {
		v0 := t.Vertices[k]
		v1 := t.Vertices[(k+1)%3]
		opp := t.Vertices[(k+2)%3]

		ex, ey := v1.X-v0.X, v1.Y-v0.Y
		ox, oy := opp.X-v0.X, opp.Y-v0.Y
		if -ey*ox+ex*oy > 0 {
			t.A[k] = [2]float64{-ey, ex}
		} else {
			t.A[k] = [2]float64{ey, -ex}
		}
		t.C[k] = t.A[k][0]*v0.X + t.A[k][1]*v0.Y
	}

	return t, nil
}

// eval returns the signed value of half-plane k at p
func (t Triangle) eval(k int, p Point) float64 {
	return t.A[k][0]*p.X + t.A[k][1]*p.Y - t.C[k]
}

// Contains reports whether p lies strictly inside the triangle.
// Points on the boundary are outside.
func (t Triangle) Contains(p Point) bool {
	for k := 0; k < 3; k++ {
		if t.eval(k, p) <= 0 {
			return false
		}
	}
	return true
}

// ContainsClosed is Contains with the boundary included
func (t Triangle) ContainsClosed(p Point) bool {
	for k := 0; k < 3; k++ {
		if t.eval(k, p) < 0 {
			return false
		}
	}
	return true
}

// Edges returns the three sides v0v1, v1v2, v2v0
func (t Triangle) Edges() [3]LineSegment {
	return [3]LineSegment{
		{P1: t.Vertices[0], P2: t.Vertices[1]},
		{P1: t.Vertices[1], P2: t.Vertices[2]},
		{P1: t.Vertices[2], P2: t.Vertices[0]},
	}
}

// Bounds computes the axis-aligned bounding box of the triangle
func (t Triangle) Bounds() BBox {
	v := t.Vertices
	return BBox{
		MinX: math.Min(v[0].X, math.Min(v[1].X, v[2].X)),
		MinY: math.Min(v[0].Y, math.Min(v[1].Y, v[2].Y)),
		MaxX: math.Max(v[0].X, math.Max(v[1].X, v[2].X)),
		MaxY: math.Max(v[0].Y, math.Max(v[1].Y, v[2].Y)),
	}
}

// CrossingCount returns how many of the triangle's edges the segment ab touches.
func (t Triangle) CrossingCount(a, b Point) int {
	count := 0
	for _, edge := range t.Edges() {
		if SegmentsIntersect(a, b, edge.P1, edge.P2) {
			count++
		}
	}
	return count
}

// SegmentsIntersect checks if segment p0p1 meets segment q0q1. It solves
// p0 + s(p1-p0) = q0 + t(q1-q0) and accepts s, t in [0, 1]. Parallel and
// collinear segments have a zero determinant and never intersect.
func SegmentsIntersect(p0, p1, q0, q1 Point) bool {
	dpx, dpy := p1.X-p0.X, p1.Y-p0.Y
	dqx, dqy := q1.X-q0.X, q1.Y-q0.Y

	det := dpx*dqy - dpy*dqx
	if det == 0 {
		return false
	}

	wx, wy := q0.X-p0.X, q0.Y-p0.Y
	s := (wx*dqy - wy*dqx) / det
	t := (wx*dpy - wy*dpx) / det

	return s >= 0 && s <= 1 && t >= 0 && t <= 1
}
