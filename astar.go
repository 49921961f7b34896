package main

import (
	"container/heap"
	"fmt"
	"log"
)

// Heuristic estimates the remaining cost from p to the goal
type Heuristic func(p, goal Point) float64

// NewHeuristic returns the estimate selected by kind. radius scales HeuristicHops.
func NewHeuristic(kind HeuristicKind, radius float64) Heuristic {
	if kind == HeuristicHops && radius > 0 {
		return func(p, goal Point) float64 {
			return p.Distance(goal) / radius
		}
	}
	return func(p, goal Point) float64 {
		return p.Distance(goal)
	}
}

// Node represents a node in the A* search over the roadmap
type Node struct {
	NodeID int     // Arena ID of the roadmap node
	G      int     // Hops from start to this node
	H      float64 // Heuristic cost from this node to end
	F      float64 // Total cost (G + H)
	Parent *Node
	Index  int // Index in the heap
	seq    int // Insertion order, breaks F ties first-in first-out
}

// PriorityQueue implements heap.Interface for A* algorithm
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].seq < pq[j].seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*Node)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

// SearchResult is the outcome of a successful search
type SearchResult struct {
	Path     []int // Arena IDs from start to goal
	Cost     int   // Hop count, g at the moment the goal was popped
	Expanded int   // Nodes popped from the frontier
}

// AStar finds a start-to-goal path over the subgraph with unit edge costs.
// Neighbors outside the subgraph are ignored.
func AStar(sub *Subgraph, h Heuristic, obs Observer) (SearchResult, error) {
	obs = observerOrNop(obs)
	if sub == nil || len(sub.Nodes) < 2 {
		return SearchResult{}, fmt.Errorf("%w: empty subgraph", ErrNoPathFound)
	}

	startID := sub.Nodes[0]
	goalID := sub.Nodes[len(sub.Nodes)-1]
	goalPoint := sub.Node(goalID).Point

	inSubgraph := make(map[int]bool, len(sub.Nodes))
	for _, id := range sub.Nodes {
		inSubgraph[id] = true
	}

	seq := 0
	openSet := &PriorityQueue{}
	heap.Init(openSet)

	startH := h(sub.Node(startID).Point, goalPoint)
	startNode := &Node{NodeID: startID, G: 0, H: startH, F: startH, seq: seq}
	heap.Push(openSet, startNode)

	closedSet := make(map[int]bool)
	openSetMap := map[int]*Node{startID: startNode}

	nodesExplored := 0

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*Node)
		delete(openSetMap, current.NodeID)
		nodesExplored++

		if current.NodeID == goalID {
			path := reconstructPath(sub, current, obs)
			return SearchResult{Path: path, Cost: current.G, Expanded: nodesExplored}, nil
		}

		closedSet[current.NodeID] = true

		for _, neighborID := range sub.Node(current.NodeID).Neighbors {
			if !inSubgraph[neighborID] || closedSet[neighborID] {
				continue
			}

			tentativeG := current.G + 1
			neighborH := h(sub.Node(neighborID).Point, goalPoint)
			tentativeF := float64(tentativeG) + neighborH

			seq++
			neighbor, exists := openSetMap[neighborID]
			if !exists {
				neighbor = &Node{
					NodeID: neighborID,
					G:      tentativeG,
					H:      neighborH,
					F:      tentativeF,
					Parent: current,
					seq:    seq,
				}
				heap.Push(openSet, neighbor)
				openSetMap[neighborID] = neighbor
			} else if tentativeF < neighbor.F {
				// Found a better path to this neighbor
				neighbor.G = tentativeG
				neighbor.H = neighborH
				neighbor.F = tentativeF
				neighbor.Parent = current
				neighbor.seq = seq
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	log.Printf("   ❌ Frontier exhausted after %d expansions\n", nodesExplored)
	return SearchResult{Expanded: nodesExplored}, fmt.Errorf("%w: goal unreachable within group %d", ErrNoPathFound, sub.Group)
}

// reconstructPath walks parent pointers back from the goal and reverses them
func reconstructPath(sub *Subgraph, goal *Node, obs Observer) []int {
	path := []int{}
	for node := goal; node != nil; node = node.Parent {
		path = append(path, node.NodeID)
		if node.Parent != nil {
			obs.PathSegment(sub.Node(node.NodeID).Point, sub.Node(node.Parent.NodeID).Point)
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
