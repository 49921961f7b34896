package main

import "log"

// Observer receives the geometry of a planning run as it is produced.
// Implementations must not affect planning; the core works the same with NopObserver.
type Observer interface {
	ObstacleAdded(t Triangle)
	SampleAccepted(p Point)
	EdgeAdded(a, b Point)
	PathSegment(a, b Point)
	ShortcutApplied(a, b Point)
}

// NopObserver ignores every event
type NopObserver struct{}

func (NopObserver) ObstacleAdded(Triangle) {}
func (NopObserver) SampleAccepted(Point) {}
func (NopObserver) EdgeAdded(_, _ Point) {}
func (NopObserver) PathSegment(_, _ Point) {}
func (NopObserver) ShortcutApplied(_, _ Point) {}

// LogObserver logs obstacles, path hops and shortcuts. Samples and edges are left out;
// there are too many of them.
type LogObserver struct {
	NopObserver
}

func (LogObserver) ObstacleAdded(t Triangle) {
	log.Printf("   ▲ Obstacle %v %v %v\n", t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

func (LogObserver) PathSegment(a, b Point) {
	log.Printf("   ↳ Roadmap hop %v -> %v\n", a, b)
}

func (LogObserver) ShortcutApplied(a, b Point) {
	log.Printf("   ✂️  Shortcut %v -> %v\n", a, b)
}

// observerOrNop normalizes a nil observer
func observerOrNop(obs Observer) Observer {
	if obs == nil {
		return NopObserver{}
	}
	return obs
}

// MultiObserver fans events out to several observers in order
type MultiObserver []Observer

func (m MultiObserver) ObstacleAdded(t Triangle) {
	for _, o := range m {
		o.ObstacleAdded(t)
	}
}

func (m MultiObserver) SampleAccepted(p Point) {
	for _, o := range m {
		o.SampleAccepted(p)
	}
}

func (m MultiObserver) EdgeAdded(a, b Point) {
	for _, o := range m {
		o.EdgeAdded(a, b)
	}
}

func (m MultiObserver) PathSegment(a, b Point) {
	for _, o := range m {
		o.PathSegment(a, b)
	}
}

func (m MultiObserver) ShortcutApplied(a, b Point) {
	for _, o := range m {
		o.ShortcutApplied(a, b)
	}
}
