package main

import (
	"fmt"
	"log"
	"math/rand"
)

// BuildEnvironment assembles the obstacles named by the config: inline triangles,
// then the GeoJSON file, then random triangles.
func BuildEnvironment(cfg *Config, rng *rand.Rand) (*Environment, error) {
	obstacles, err := cfg.Obstacles.InlineTriangles()
	if err != nil {
		return nil, err
	}

	if cfg.Obstacles.GeoJSON != "" {
		loaded, err := LoadObstaclesFromFile(cfg.Obstacles.GeoJSON)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, loaded...)
	}

	if cfg.Obstacles.Random > 0 {
		random, err := RandomTriangles(cfg.Width, cfg.Height, cfg.Obstacles.Random, rng)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, random...)
	}

	if cfg.Obstacles.PruneContained {
		obstacles = PruneContainedObstacles(obstacles)
	}

	return NewEnvironment(cfg.Width, cfg.Height, obstacles)
}

// resolveQuery returns the configured start and goal, sampling whichever is missing
func resolveQuery(cfg *Config, env *Environment, rng *rand.Rand) (Point, Point, error) {
	if cfg.Start != nil && cfg.Goal != nil {
		return *cfg.Start, *cfg.Goal, nil
	}

	start, goal, err := env.SampleQuery(rng, cfg.QueryAttempts)
	if err != nil {
		return Point{}, Point{}, err
	}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	return start, goal, nil
}

// runPlan is the plan command: one environment, one query, optional artifacts
func runPlan(cfg *Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	env, err := BuildEnvironment(cfg, rng)
	if err != nil {
		return fmt.Errorf("building environment: %w", err)
	}
	log.Printf("   Plane %gx%g with %d obstacles (seed %d)\n", env.Width, env.Height, len(env.Obstacles), cfg.Seed)

	start, goal, err := resolveQuery(cfg, env, rng)
	if err != nil {
		return fmt.Errorf("choosing query: %w", err)
	}

	observers := MultiObserver{}
	if cfg.Output.Trace {
		observers = append(observers, LogObserver{})
	}
	var svgObs *SVGObserver
	if cfg.Output.SVG != "" {
		svgObs = NewSVGObserver(env)
		observers = append(observers, svgObs)
	}

	result, planErr := Plan(env, start, goal, cfg.Planner, rng, observers)

	// Artifacts are written on failure too; they show how far the roadmap got.
	if svgObs != nil {
		if err := svgObs.SaveSVG(cfg.Output.SVG); err != nil {
			log.Printf("⚠️  Failed to save SVG: %v\n", err)
		}
	}
	if planErr != nil {
		if result != nil {
			log.Printf("❌ No path: %v (%d draws, %d samples)\n", planErr, result.Draws, result.Samples)
		}
		return planErr
	}

	if cfg.Output.GeoJSON != "" {
		if err := SaveResultGeoJSON(env, result, cfg.Output.GeoJSON); err != nil {
			log.Printf("⚠️  Failed to save GeoJSON: %v\n", err)
		}
	}

	fmt.Println(formatPath(result))
	return nil
}

// formatPath renders the waypoints one per line
func formatPath(result *Result) string {
	out := fmt.Sprintf("path: %d waypoints, %d roadmap hops, length %.4f\n", len(result.Path), result.Hops, result.Length)
	for i, p := range result.Path {
		out += fmt.Sprintf("  %d: %.6f %.6f\n", i, p.X, p.Y)
	}
	return out
}
