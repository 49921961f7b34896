package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Shortcut drops intermediate waypoints that a farther visible waypoint makes redundant.
// From the cursor it looks for the last index visible from the current one, keeps the
// current waypoint and jumps there. The result is a subsequence of path with the same
// first and last points.
func Shortcut(env *Environment, path []Point, obs Observer) []Point {
	obs = observerOrNop(obs)
	n := len(path)
	if n <= 2 {
		return append([]Point(nil), path...)
	}

	kept := make([]Point, 0, n)
	cursor := 0
	for {
		jumped := false
		for i := cursor; i < n; i++ {
			for j := n - 1; j > i; j-- {
				if env.HasLineOfSight(path[i], path[j]) {
					obs.ShortcutApplied(path[i], path[j])
					cursor = j
					jumped = true
					break
				}
			}
			kept = append(kept, path[i])
			if jumped {
				break
			}
		}
		if !jumped {
			break
		}
	}

	return kept
}

// toLineString converts a waypoint list to an orb line string
func toLineString(path []Point) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// PathLength returns the planar length of the polyline
func PathLength(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}
	return planar.Length(toLineString(path))
}
