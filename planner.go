package main

import (
	"fmt"
	"log"
	"math/rand"
)

// Result is a planned path together with statistics about the run
type Result struct {
	Path    []Point `json:"path"`    // Shortcut waypoints, start to goal
	RawPath []Point `json:"rawPath"` // Waypoints as found on the roadmap
	Hops    int     `json:"hops"`
	Length  float64 `json:"length"`
	Draws   int     `json:"draws"`
	Samples int     `json:"samples"`
	Edges   int     `json:"edges"`

	Roadmap *Roadmap `json:"-"`
}

// Plan computes a collision-free path from start to goal: it grows a roadmap until both
// ends share a component, searches it, then shortcuts the result. On failure the
// returned Result still carries the run statistics.
func Plan(env *Environment, start, goal Point, cfg PlannerConfig, rng *rand.Rand, obs Observer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	obs = observerOrNop(obs)

	for _, obstacle := range env.Obstacles {
		obs.ObstacleAdded(obstacle)
	}

	if !env.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v outside the %gx%g plane", ErrInvalidConfig, start, env.Width, env.Height)
	}
	if !env.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v outside the %gx%g plane", ErrInvalidConfig, goal, env.Width, env.Height)
	}
	if env.IsOccupied(start) {
		return nil, fmt.Errorf("%w: start %v", ErrEndpointOccupied, start)
	}
	if env.IsOccupied(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrEndpointOccupied, goal)
	}

	builder := NewBuilder(env, cfg, rng, obs)
	sub, err := builder.Build(start, goal)
	result := &Result{Draws: builder.Draws(), Roadmap: builder.Roadmap()}
	if rm := builder.Roadmap(); rm != nil {
		result.Samples = rm.SampleCount()
		result.Edges = rm.EdgeCount()
	}
	if err != nil {
		return result, err
	}

	log.Printf("🔍 Running A* over %d nodes (%s heuristic)...\n", len(sub.Nodes), cfg.Heuristic)
	search, err := AStar(sub, NewHeuristic(cfg.Heuristic, cfg.ConnectionRadius), obs)
	if err != nil {
		return result, err
	}
	result.RawPath = sub.Points(search.Path)
	result.Hops = search.Cost
	log.Printf("   ✅ Path found with %d hops after %d expansions\n", search.Cost, search.Expanded)

	result.Path = Shortcut(env, result.RawPath, obs)
	result.Length = PathLength(result.Path)
	log.Printf("✂️  Shortcut %d waypoints down to %d, length %.3f\n",
		len(result.RawPath), len(result.Path), result.Length)

	return result, nil
}
