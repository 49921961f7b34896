package main

import "errors"

// Planner errors. All of them are recoverable by the caller; check with errors.Is.
var (
	// ErrNoFreeSample is returned when the rejection sampler runs out of attempts.
	ErrNoFreeSample = errors.New("no free sample found")

	// ErrRoadmapIncomplete is returned when the draw cap is reached before start and
	// goal attach to a common connected component.
	ErrRoadmapIncomplete = errors.New("roadmap incomplete")

	// ErrNoPathFound is returned when the search frontier empties before the goal is popped.
	ErrNoPathFound = errors.New("no path found")

	// ErrDegenerateObstacle is returned for zero-area triangles.
	ErrDegenerateObstacle = errors.New("degenerate obstacle")

	// ErrEndpointOccupied is returned when start or goal lies inside an obstacle.
	ErrEndpointOccupied = errors.New("endpoint inside obstacle")

	ErrInvalidConfig = errors.New("invalid config")
)
