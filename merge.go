package main

import (
	"log"
)

// PruneContainedObstacles drops triangles that lie entirely inside another triangle.
// The occupied region is unchanged; line-of-sight tests get fewer edges to check.
// Of a set of identical triangles the first one is kept.
func PruneContainedObstacles(obstacles []Triangle) []Triangle {
	if len(obstacles) <= 1 {
		return obstacles
	}

	kept := make([]Triangle, 0, len(obstacles))
	for i, tri := range obstacles {
		if !coveredByOther(obstacles, i) {
			kept = append(kept, tri)
		}
	}

	log.Printf("   Obstacles after removing contained: %d (removed %d)\n",
		len(kept), len(obstacles)-len(kept))

	return kept
}

// coveredByOther reports whether obstacles[i] lies inside some other obstacle.
// A mutual cover means the two are identical, and only the later index counts as covered.
func coveredByOther(obstacles []Triangle, i int) bool {
	for j, other := range obstacles {
		if j == i || !triangleWithin(obstacles[i], other) {
			continue
		}
		if j < i || !triangleWithin(other, obstacles[i]) {
			return true
		}
	}
	return false
}

// triangleWithin reports whether inner lies in outer, boundary included.
// Triangles are convex, so the vertices decide.
func triangleWithin(inner, outer Triangle) bool {
	if !outer.Bounds().Contains(inner.Bounds()) {
		return false
	}
	for _, v := range inner.Vertices {
		if !outer.ContainsClosed(v) {
			return false
		}
	}
	return true
}
