package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
)

// maxRequestBytes bounds the body of a plan request
const maxRequestBytes = 1 << 20

// PlanRequest is the body of POST /plan. It accepts the config file fields in JSON
// (matched case-insensitively), except obstacle files and outputs.
type PlanRequest struct {
	Config
	IncludeRoadmap bool `json:"includeRoadmap"`
}

type PlanResponse struct {
	Path      []Point    `json:"path"`
	RawPath   []Point    `json:"rawPath,omitempty"`
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	Start     Point      `json:"start"`
	Goal      Point      `json:"goal"`
	Hops      int        `json:"hops"`
	Length    float64    `json:"length"`
	Draws     int        `json:"draws"`
	Samples   int        `json:"samples"`
	Edges     int        `json:"edges"`
	Obstacles [][3]Point `json:"obstacles,omitempty"`
	Roadmap   [][]Point  `json:"roadmap,omitempty"`
}

var planStats struct {
	sync.Mutex
	served int
	failed int
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}

// POST /plan - Build a roadmap for the request and return the shortcut path
func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Plan request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := PlanRequest{Config: DefaultConfig()}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Obstacles.GeoJSON != "" {
		http.Error(w, "Obstacle files cannot be read through the API", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("❌ %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rng := rand.New(rand.NewSource(req.Seed))
	env, err := BuildEnvironment(&req.Config, rng)
	if err != nil {
		log.Printf("❌ %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := PlanResponse{Path: []Point{}}
	if len(env.Obstacles) > 0 {
		response.Obstacles = make([][3]Point, len(env.Obstacles))
		for i, obstacle := range env.Obstacles {
			response.Obstacles[i] = obstacle.Vertices
		}
	}

	start, goal, err := resolveQuery(&req.Config, env, rng)
	if err != nil {
		log.Printf("❌ %v\n", err)
		response.Message = err.Error()
		recordPlan(false)
		writeJSON(w, http.StatusOK, response)
		return
	}
	response.Start, response.Goal = start, goal
	log.Printf("   Start: %v\n", start)
	log.Printf("   Goal:  %v\n", goal)

	result, err := Plan(env, start, goal, req.Planner, rng, nil)
	if result != nil {
		response.Draws = result.Draws
		response.Samples = result.Samples
		response.Edges = result.Edges
		if req.IncludeRoadmap && result.Roadmap != nil {
			response.Roadmap = result.Roadmap.EdgeLines()
		}
	}

	if err != nil {
		status := http.StatusOK
		if errors.Is(err, ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		log.Printf("❌ %v\n", err)
		response.Message = err.Error()
		recordPlan(false)
		writeJSON(w, status, response)
		return
	}

	response.Success = true
	response.Path = result.Path
	response.RawPath = result.RawPath
	response.Hops = result.Hops
	response.Length = result.Length
	log.Printf("✅ Path found with %d waypoints, length %.3f\n", len(result.Path), result.Length)

	recordPlan(true)
	writeJSON(w, http.StatusOK, response)
}

func recordPlan(ok bool) {
	planStats.Lock()
	defer planStats.Unlock()
	planStats.served++
	if !ok {
		planStats.failed++
	}
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	planStats.Lock()
	served, failed := planStats.served, planStats.failed
	planStats.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ready",
		"plansServed": served,
		"plansFailed": failed,
	})
}

// newServeMux registers the planner endpoints
func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan", corsMiddleware(planHandler))
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	return mux
}

func runServer(port int) error {
	addr := fmt.Sprintf(":%d", port)

	log.Println("========================================")
	log.Println("🚀 PRM Planner Server")
	log.Println("========================================")
	log.Printf("Server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan    - Plan a path through a triangle field")
	log.Println("  GET  /health  - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	return http.ListenAndServe(addr, newServeMux())
}
