package main

import "testing"

func TestShortcutOpenPlane(t *testing.T) {
	env := emptyEnvironment(t)
	path := []Point{{1, 1}, {2, 3}, {4, 2}, {6, 5}, {9, 5}}

	got := Shortcut(env, path, nil)
	if len(got) != 2 || got[0] != path[0] || got[1] != path[len(path)-1] {
		t.Errorf("expected only the endpoints, got %v", got)
	}
}

func TestShortcutAroundWedge(t *testing.T) {
	env := wedgeEnvironment(t)
	path := []Point{{1, 3}, {2, 0.5}, {3, 0.5}, {5, 0.5}, {7, 0.5}, {8, 0.5}, {9, 3}}

	got := Shortcut(env, path, nil)
	if len(got) < 3 {
		t.Fatalf("the wedge blocks the direct line, got %v", got)
	}
	if len(got) >= len(path) {
		t.Errorf("expected some waypoints to be dropped, got %v", got)
	}
	if got[0] != path[0] || got[len(got)-1] != path[len(path)-1] {
		t.Errorf("endpoints must be preserved: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if !env.HasLineOfSight(got[i-1], got[i]) {
			t.Errorf("segment %v-%v crosses the wedge", got[i-1], got[i])
		}
	}

	// Output keeps the input order
	j := 0
	for _, p := range got {
		for j < len(path) && path[j] != p {
			j++
		}
		if j == len(path) {
			t.Fatalf("%v is not a subsequence of %v", got, path)
		}
		j++
	}
}

func TestShortcutShortPaths(t *testing.T) {
	env := wedgeEnvironment(t)

	if got := Shortcut(env, nil, nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}

	// Two waypoints come back unchanged even without line of sight
	path := []Point{{1, 3}, {9, 3}}
	got := Shortcut(env, path, nil)
	if len(got) != 2 || got[0] != path[0] || got[1] != path[1] {
		t.Errorf("expected %v, got %v", path, got)
	}
	got[0] = Point{0, 0}
	if path[0] != (Point{1, 3}) {
		t.Error("result must not alias the input")
	}
}

func TestShortcutReportsJumps(t *testing.T) {
	env := emptyEnvironment(t)
	obs := &countingObserver{}

	Shortcut(env, []Point{{1, 1}, {2, 2}, {3, 1}, {4, 4}}, obs)
	if obs.shortcuts != 1 {
		t.Errorf("expected a single jump, got %d", obs.shortcuts)
	}
}

func TestPathLength(t *testing.T) {
	if l := PathLength([]Point{{0, 0}, {3, 4}}); !approxEqual(l, 5, tolerance) {
		t.Errorf("expected 5, got %f", l)
	}
	if l := PathLength([]Point{{0, 0}, {3, 0}, {3, 4}}); !approxEqual(l, 7, tolerance) {
		t.Errorf("expected 7, got %f", l)
	}
	if l := PathLength([]Point{{1, 1}}); l != 0 {
		t.Errorf("single point has no length, got %f", l)
	}
}
