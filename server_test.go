package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postPlan(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newServeMux().ServeHTTP(rec, req)
	return rec
}

func decodePlanResponse(t *testing.T, rec *httptest.ResponseRecorder) PlanResponse {
	t.Helper()
	var resp PlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestPlanHandlerSuccess(t *testing.T) {
	rec := postPlan(t, `{
		"width": 10, "height": 6, "seed": 4,
		"start": {"x": 1, "y": 3}, "goal": {"x": 9, "y": 3},
		"obstacles": {"random": 0, "triangles": [[[4, 1], [6, 1], [5, 5]]]},
		"planner": {"connectionRadius": 2, "maxSamples": 20000},
		"includeRoadmap": true
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("missing CORS header, got %q", got)
	}

	resp := decodePlanResponse(t, rec)
	if !resp.Success {
		t.Fatalf("expected success, got message %q", resp.Message)
	}
	if len(resp.Path) < 3 {
		t.Errorf("the wedge blocks the direct line, got %v", resp.Path)
	}
	if resp.Start != (Point{1, 3}) || resp.Goal != (Point{9, 3}) {
		t.Errorf("unexpected query %v -> %v", resp.Start, resp.Goal)
	}
	if len(resp.Roadmap) != resp.Edges {
		t.Errorf("roadmap lines %d, edges %d", len(resp.Roadmap), resp.Edges)
	}
	if len(resp.Obstacles) != 1 || resp.Obstacles[0] != [3]Point{{4, 1}, {6, 1}, {5, 5}} {
		t.Errorf("expected the inline wedge echoed back, got %v", resp.Obstacles)
	}
}

func TestPlanHandlerRandomObstacles(t *testing.T) {
	rec := postPlan(t, `{"seed": 4, "planner": {"connectionRadius": 2, "maxSamples": 5000}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodePlanResponse(t, rec)
	if len(resp.Obstacles) != 5 {
		t.Errorf("expected the 5 default random obstacles, got %d", len(resp.Obstacles))
	}
	if resp.Roadmap != nil {
		t.Error("roadmap should be omitted unless requested")
	}
}

func TestPlanHandlerFailureReported(t *testing.T) {
	rec := postPlan(t, `{
		"start": {"x": 1, "y": 3}, "goal": {"x": 9, "y": 3},
		"obstacles": {"random": 0, "triangles": [[[4, 1], [6, 1], [5, 5]]]},
		"planner": {"connectionRadius": 2, "maxSamples": 0}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodePlanResponse(t, rec)
	if resp.Success || resp.Message == "" {
		t.Errorf("expected a failure with a message, got %+v", resp)
	}
	if len(resp.Path) != 0 {
		t.Errorf("failed plan should have an empty path, got %v", resp.Path)
	}
}

func TestPlanHandlerRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"width": `},
		{"obstacle file", `{"obstacles": {"geojson": "/etc/passwd"}}`},
		{"bad radius", `{"planner": {"connectionRadius": -1}}`},
		{"bad policy", `{"planner": {"attachPolicy": "never"}}`},
		{"bad triangle", `{"obstacles": {"triangles": [[[0, 0], [1, 1]]]}}`},
		{"underflowing plane", `{"width": 1e-300, "height": 1e-300, "obstacles": {"random": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postPlan(t, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plan", nil)
	rec := httptest.NewRecorder()
	newServeMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestPlanHandlerPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/plan", nil)
	rec := httptest.NewRecorder()
	newServeMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("unexpected allowed methods %q", got)
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newServeMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding health: %v", err)
	}
	if body["status"] != "ready" {
		t.Errorf("unexpected status %v", body["status"])
	}
	if _, ok := body["plansServed"]; !ok {
		t.Error("missing plansServed")
	}
}
