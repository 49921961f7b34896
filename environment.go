package main

import (
	"fmt"
	"math/rand"
)

// Environment is the bounded plane [0, Width] x [0, Height] with its obstacles.
// It is immutable once built.
type Environment struct {
	Width     float64
	Height    float64
	Obstacles []Triangle

	index *SpatialIndex
}

// NewEnvironment creates an environment and indexes its obstacles
func NewEnvironment(width, height float64, obstacles []Triangle) (*Environment, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: plane must have positive size, got %gx%g", ErrInvalidConfig, width, height)
	}

	owned := make([]Triangle, len(obstacles))
	copy(owned, obstacles)

	return &Environment{
		Width:     width,
		Height:    height,
		Obstacles: owned,
		index:     NewSpatialIndex(owned),
	}, nil
}

// maxTriangleRedraws bounds the degenerate draws tolerated for one random obstacle
const maxTriangleRedraws = 1000

// RandomTriangles draws count triangles with uniformly random vertices in the plane.
// Degenerate draws are redrawn, up to maxTriangleRedraws times per obstacle.
func RandomTriangles(width, height float64, count int, rng *rand.Rand) ([]Triangle, error) {
	obstacles := make([]Triangle, 0, count)
	redraws := 0
	for len(obstacles) < count {
		t, err := NewTriangle(
			Point{X: rng.Float64() * width, Y: rng.Float64() * height},
			Point{X: rng.Float64() * width, Y: rng.Float64() * height},
			Point{X: rng.Float64() * width, Y: rng.Float64() * height},
		)
		if err != nil {
			redraws++
			if redraws >= maxTriangleRedraws {
				return nil, fmt.Errorf("random obstacle %d: %d draws in a %gx%g plane: %w",
					len(obstacles), redraws, width, height, ErrDegenerateObstacle)
			}
			continue
		}
		obstacles = append(obstacles, t)
		redraws = 0
	}
	return obstacles, nil
}

// RandomEnvironment creates a plane with count random triangular obstacles
func RandomEnvironment(width, height float64, count int, rng *rand.Rand) (*Environment, error) {
	obstacles, err := RandomTriangles(width, height, count, rng)
	if err != nil {
		return nil, err
	}
	return NewEnvironment(width, height, obstacles)
}

// IsOccupied reports whether p lies strictly inside any obstacle
func (e *Environment) IsOccupied(p Point) bool {
	for _, i := range e.index.QueryRegion(BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}) {
		if e.Obstacles[i].Contains(p) {
			return true
		}
	}
	return false
}

// HasLineOfSight reports whether the segment ab crosses no obstacle edge
func (e *Environment) HasLineOfSight(a, b Point) bool {
	for _, i := range e.index.QueryRegion(segmentBBox(a, b)) {
		if e.Obstacles[i].CrossingCount(a, b) > 0 {
			return false
		}
	}
	return true
}

// InBounds reports whether p lies in the closed plane rectangle
func (e *Environment) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= e.Width && p.Y >= 0 && p.Y <= e.Height
}

// randomPoint draws a uniform point in the plane
func (e *Environment) randomPoint(rng *rand.Rand) Point {
	return Point{X: rng.Float64() * e.Width, Y: rng.Float64() * e.Height}
}

// SampleFree draws uniform points until one is unoccupied, giving up after maxAttempts
func (e *Environment) SampleFree(rng *rand.Rand, maxAttempts int) (Point, error) {
	for i := 0; i < maxAttempts; i++ {
		p := e.randomPoint(rng)
		if !e.IsOccupied(p) {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("%w after %d attempts", ErrNoFreeSample, maxAttempts)
}

// SampleQuery draws a free start and, independently, a free goal.
func (e *Environment) SampleQuery(rng *rand.Rand, maxAttempts int) (start, goal Point, err error) {
	start, err = e.SampleFree(rng, maxAttempts)
	if err != nil {
		return Point{}, Point{}, fmt.Errorf("sampling start: %w", err)
	}
	goal, err = e.SampleFree(rng, maxAttempts)
	if err != nil {
		return Point{}, Point{}, fmt.Errorf("sampling goal: %w", err)
	}
	return start, goal, nil
}
