package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AttachPolicy decides which pseudo-nodes a new sample may attach to
type AttachPolicy string

const (
	// AttachBoth tries the start and the goal independently
	AttachBoth AttachPolicy = "both"
	// AttachExclusive tries the goal only when the start attempt failed
	AttachExclusive AttachPolicy = "exclusive"
)

// HeuristicKind selects the A* remaining-cost estimate
type HeuristicKind string

const (
	// HeuristicEuclidean is the straight-line distance to the goal. With unit hop
	// costs it can overestimate when edges are shorter than 1.
	HeuristicEuclidean HeuristicKind = "euclidean"
	// HeuristicHops divides the straight-line distance by the connection radius,
	// a lower bound on the remaining hop count.
	HeuristicHops HeuristicKind = "hops"
)

// PlannerConfig holds the knobs of the roadmap, search and shortcut stages
type PlannerConfig struct {
	ConnectionRadius float64       `yaml:"connectionRadius" json:"connectionRadius"`
	MaxSamples       int           `yaml:"maxSamples" json:"maxSamples"`
	AttachPolicy     AttachPolicy  `yaml:"attachPolicy" json:"attachPolicy"`
	Heuristic        HeuristicKind `yaml:"heuristic" json:"heuristic"`
	DirectConnect    bool          `yaml:"directConnect" json:"directConnect"`
	ProgressEvery    int           `yaml:"progressEvery" json:"progressEvery"`
}

// Validate checks the planner settings
func (c PlannerConfig) Validate() error {
	if c.ConnectionRadius <= 0 {
		return fmt.Errorf("%w: connectionRadius must be positive, got %g", ErrInvalidConfig, c.ConnectionRadius)
	}
	if c.MaxSamples < 0 {
		return fmt.Errorf("%w: maxSamples must not be negative, got %d", ErrInvalidConfig, c.MaxSamples)
	}
	switch c.AttachPolicy {
	case AttachBoth, AttachExclusive:
	default:
		return fmt.Errorf("%w: unknown attachPolicy %q", ErrInvalidConfig, c.AttachPolicy)
	}
	switch c.Heuristic {
	case HeuristicEuclidean, HeuristicHops:
	default:
		return fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, c.Heuristic)
	}
	return nil
}

// ObstacleConfig describes where obstacles come from. All sources are combined.
type ObstacleConfig struct {
	Random         int           `yaml:"random"`
	Triangles      [][][]float64 `yaml:"triangles"`
	GeoJSON        string        `yaml:"geojson"`
	PruneContained bool          `yaml:"pruneContained"`
}

// InlineTriangles converts the triangles listed in the config file
func (o ObstacleConfig) InlineTriangles() ([]Triangle, error) {
	triangles := make([]Triangle, 0, len(o.Triangles))
	for i, raw := range o.Triangles {
		if len(raw) != 3 {
			return nil, fmt.Errorf("%w: triangle %d has %d vertices", ErrInvalidConfig, i, len(raw))
		}
		var v [3]Point
		for k, xy := range raw {
			if len(xy) != 2 {
				return nil, fmt.Errorf("%w: triangle %d vertex %d needs x and y", ErrInvalidConfig, i, k)
			}
			v[k] = Point{X: xy[0], Y: xy[1]}
		}
		t, err := NewTriangle(v[0], v[1], v[2])
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		triangles = append(triangles, t)
	}
	return triangles, nil
}

// OutputConfig lists optional artifacts written by the plan command
type OutputConfig struct {
	SVG     string `yaml:"svg"`
	GeoJSON string `yaml:"geojson"`
	Trace   bool   `yaml:"trace"`
}

// Config is the file format of the plan command
type Config struct {
	Width         float64        `yaml:"width"`
	Height        float64        `yaml:"height"`
	Seed          int64          `yaml:"seed"`
	QueryAttempts int            `yaml:"queryAttempts"`
	Start         *Point         `yaml:"start"`
	Goal          *Point         `yaml:"goal"`
	Obstacles     ObstacleConfig `yaml:"obstacles"`
	Planner       PlannerConfig  `yaml:"planner"`
	Output        OutputConfig   `yaml:"output"`
}

// DefaultPlannerConfig returns the planner defaults: radius 1 and a 100000 draw cap
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		ConnectionRadius: 1,
		MaxSamples:       100000,
		AttachPolicy:     AttachBoth,
		Heuristic:        HeuristicEuclidean,
		DirectConnect:    true,
		ProgressEvery:    1000,
	}
}

// ReferencePlannerConfig is DefaultPlannerConfig with the exclusive attach policy and
// no direct connection. Runs with it draw the same sample sequence as the original
// planner for a given seed.
func ReferencePlannerConfig() PlannerConfig {
	cfg := DefaultPlannerConfig()
	cfg.AttachPolicy = AttachExclusive
	cfg.DirectConnect = false
	return cfg
}

// DefaultConfig returns a 10x6 plane with five random triangles and seed 4, planned
// with ReferencePlannerConfig
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        6,
		Seed:          4,
		QueryAttempts: 100,
		Obstacles:     ObstacleConfig{Random: 5},
		Planner:       ReferencePlannerConfig(),
	}
}

// Validate checks the whole configuration
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.QueryAttempts <= 0 && (c.Start == nil || c.Goal == nil) {
		return fmt.Errorf("%w: queryAttempts must be positive when start or goal is omitted", ErrInvalidConfig)
	}
	if c.Obstacles.Random < 0 {
		return fmt.Errorf("%w: obstacles.random must not be negative", ErrInvalidConfig)
	}
	return c.Planner.Validate()
}

// LoadConfig reads a YAML config file. Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
