package main

// Unassigned is the group label of the start and goal pseudo-nodes
const Unassigned = -1

// Fixed arena slots of the pseudo-nodes; samples follow from 2 on
const (
	StartID = 0
	GoalID  = 1
)

// RoadmapNode is a roadmap vertex. Neighbors holds arena IDs and is kept symmetric.
type RoadmapNode struct {
	ID        int   `json:"id"`
	Point     Point `json:"point"`
	Group     int   `json:"group"`
	Neighbors []int `json:"neighbors"`
}

// IsPseudo reports whether the node is the start or goal of the query
func (n *RoadmapNode) IsPseudo() bool {
	return n.ID == StartID || n.ID == GoalID
}

func (n *RoadmapNode) hasNeighbor(id int) bool {
	for _, nb := range n.Neighbors {
		if nb == id {
			return true
		}
	}
	return false
}

// Subgraph is the part of a roadmap handed to the search: the active group's members
// in insertion order, with the start prepended and the goal appended.
type Subgraph struct {
	Roadmap *Roadmap
	Group   int
	Nodes   []int
}

// Node returns the roadmap node with the given arena ID
func (s *Subgraph) Node(id int) *RoadmapNode {
	return s.Roadmap.Nodes[id]
}

// Points maps arena IDs to coordinates
func (s *Subgraph) Points(ids []int) []Point {
	points := make([]Point, len(ids))
	for i, id := range ids {
		points[i] = s.Roadmap.Nodes[id].Point
	}
	return points
}
