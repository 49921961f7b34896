package main

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"
)

// Roadmap is the incrementally built PRM graph. Nodes is an arena indexed by ID;
// groups maps a component label to the IDs carrying it.
type Roadmap struct {
	Nodes []*RoadmapNode

	groups map[int][]int
	index  *NodeIndex
	edges  int
	obs    Observer
}

// NewRoadmap creates a roadmap holding only the start and goal pseudo-nodes
func NewRoadmap(start, goal Point, obs Observer) *Roadmap {
	return &Roadmap{
		Nodes: []*RoadmapNode{
			{ID: StartID, Point: start, Group: Unassigned, Neighbors: make([]int, 0)},
			{ID: GoalID, Point: goal, Group: Unassigned, Neighbors: make([]int, 0)},
		},
		groups: make(map[int][]int),
		index:  NewNodeIndex(),
		obs:    observerOrNop(obs),
	}
}

// Start returns the start pseudo-node
func (r *Roadmap) Start() *RoadmapNode { return r.Nodes[StartID] }

// Goal returns the goal pseudo-node
func (r *Roadmap) Goal() *RoadmapNode { return r.Nodes[GoalID] }

// SampleCount returns the number of accepted samples
func (r *Roadmap) SampleCount() int { return r.index.Len() }

// EdgeCount returns the number of undirected edges
func (r *Roadmap) EdgeCount() int { return r.edges }

// GroupCount returns the number of connected components among samples
func (r *Roadmap) GroupCount() int { return len(r.groups) }

// addSample appends a free sample in a singleton group labeled by its own ID
func (r *Roadmap) addSample(p Point) int {
	id := len(r.Nodes)
	r.Nodes = append(r.Nodes, &RoadmapNode{ID: id, Point: p, Group: id, Neighbors: make([]int, 0)})
	r.groups[id] = []int{id}
	r.index.Insert(id, p)
	r.obs.SampleAccepted(p)
	return id
}

// addEdge inserts the undirected edge ab. Returns false if it already existed.
func (r *Roadmap) addEdge(a, b int) bool {
	if a == b || r.Nodes[a].hasNeighbor(b) {
		return false
	}
	r.Nodes[a].Neighbors = append(r.Nodes[a].Neighbors, b)
	r.Nodes[b].Neighbors = append(r.Nodes[b].Neighbors, a)
	r.edges++
	r.obs.EdgeAdded(r.Nodes[a].Point, r.Nodes[b].Point)
	return true
}

// connect links two samples and merges their groups
func (r *Roadmap) connect(newID, otherID int) {
	r.addEdge(newID, otherID)
	r.merge(newID, otherID)
}

// attach links a sample to a pseudo-node. Groups are left alone.
func (r *Roadmap) attach(sampleID, pseudoID int) {
	r.addEdge(sampleID, pseudoID)
}

// merge relabels every member of newID's group with otherID's label and drops the
// emptied entry. Already sharing a label is a no-op.
func (r *Roadmap) merge(newID, otherID int) {
	if r.Nodes[newID].IsPseudo() || r.Nodes[otherID].IsPseudo() {
		return
	}
	from := r.Nodes[newID].Group
	to := r.Nodes[otherID].Group
	if from == to {
		return
	}

	for _, id := range r.groups[from] {
		r.Nodes[id].Group = to
	}
	r.groups[to] = append(r.groups[to], r.groups[from]...)
	delete(r.groups, from)
}

// GroupMembers returns the IDs labeled with group, ascending
func (r *Roadmap) GroupMembers(group int) []int {
	members := append([]int(nil), r.groups[group]...)
	sort.Ints(members)
	return members
}

// sharedGroup looks for a start neighbor and a goal neighbor in one component
func (r *Roadmap) sharedGroup() (int, bool) {
	goalGroups := make(map[int]bool, len(r.Goal().Neighbors))
	for _, v := range r.Goal().Neighbors {
		if g := r.Nodes[v].Group; g != Unassigned {
			goalGroups[g] = true
		}
	}

	for _, u := range r.Start().Neighbors {
		if g := r.Nodes[u].Group; g != Unassigned && goalGroups[g] {
			return g, true
		}
	}
	return Unassigned, false
}

// subgraph assembles the search input for the given group
func (r *Roadmap) subgraph(group int) *Subgraph {
	nodes := []int{StartID}
	if group != Unassigned {
		nodes = append(nodes, r.GroupMembers(group)...)
	}
	nodes = append(nodes, GoalID)

	return &Subgraph{Roadmap: r, Group: group, Nodes: nodes}
}

// EdgeLines returns each undirected edge once, as a two-point line
func (r *Roadmap) EdgeLines() [][]Point {
	lines := make([][]Point, 0, r.edges)
	for _, node := range r.Nodes {
		for _, nb := range node.Neighbors {
			if nb > node.ID {
				lines = append(lines, []Point{node.Point, r.Nodes[nb].Point})
			}
		}
	}
	return lines
}

// Builder grows a roadmap for one query until start and goal share a component
type Builder struct {
	env     *Environment
	cfg     PlannerConfig
	rng     *rand.Rand
	obs     Observer
	roadmap *Roadmap
	draws   int
}

// NewBuilder creates a roadmap builder
func NewBuilder(env *Environment, cfg PlannerConfig, rng *rand.Rand, obs Observer) *Builder {
	return &Builder{env: env, cfg: cfg, rng: rng, obs: observerOrNop(obs)}
}

// Roadmap returns the roadmap of the last Build call, complete or not
func (b *Builder) Roadmap() *Roadmap { return b.roadmap }

// Draws returns how many points the last Build call drew, rejected ones included
func (b *Builder) Draws() int { return b.draws }

// connectable reports whether a and b are within the connection radius and mutually visible
func (b *Builder) connectable(p, q Point) bool {
	return p.Distance(q) <= b.cfg.ConnectionRadius && b.env.HasLineOfSight(p, q)
}

// Build samples the free space until start and goal attach to a common component,
// or the draw cap is reached.
func (b *Builder) Build(start, goal Point) (*Subgraph, error) {
	startTime := time.Now()
	rm := NewRoadmap(start, goal, b.obs)
	b.roadmap = rm
	b.draws = 0

	log.Printf("🗺️  Building roadmap from %v to %v (radius %.3f, cap %d draws)\n",
		start, goal, b.cfg.ConnectionRadius, b.cfg.MaxSamples)

	if b.cfg.DirectConnect && b.connectable(start, goal) {
		rm.addEdge(StartID, GoalID)
		log.Println("   ✅ Start and goal see each other directly")
		return rm.subgraph(Unassigned), nil
	}

	for b.draws < b.cfg.MaxSamples {
		if b.cfg.ProgressEvery > 0 && b.draws > 0 && b.draws%b.cfg.ProgressEvery == 0 {
			log.Printf("   Random sample of %d drawn (%d accepted, %d groups)...\n",
				b.draws, rm.SampleCount(), rm.GroupCount())
		}
		b.draws++

		p := b.env.randomPoint(b.rng)
		if b.env.IsOccupied(p) {
			continue
		}

		id := rm.addSample(p)
		for _, other := range rm.index.Within(p, b.cfg.ConnectionRadius) {
			if other == id {
				continue
			}
			if b.env.HasLineOfSight(p, rm.Nodes[other].Point) {
				rm.connect(id, other)
			}
		}

		b.attachEndpoints(id)

		if group, ok := rm.sharedGroup(); ok {
			log.Printf("   ✅ Roadmap complete: %d draws, %d samples, %d edges, group %d (%d nodes)\n",
				b.draws, rm.SampleCount(), rm.EdgeCount(), group, len(rm.groups[group]))
			log.Printf("   ⏱️  Build time: %.3f seconds\n", time.Since(startTime).Seconds())
			return rm.subgraph(group), nil
		}
	}

	log.Printf("   ❌ Draw cap of %d reached with %d samples in %d groups\n",
		b.cfg.MaxSamples, rm.SampleCount(), rm.GroupCount())
	return nil, fmt.Errorf("%w: start and goal not joined after %d draws", ErrRoadmapIncomplete, b.draws)
}

// attachEndpoints tries to link a new sample to the start and goal pseudo-nodes.
// Under AttachExclusive the goal is only tried when the start attempt failed.
func (b *Builder) attachEndpoints(id int) {
	rm := b.roadmap
	p := rm.Nodes[id].Point

	attached := false
	if b.connectable(p, rm.Start().Point) {
		rm.attach(id, StartID)
		attached = true
	}
	if attached && b.cfg.AttachPolicy == AttachExclusive {
		return
	}
	if b.connectable(p, rm.Goal().Point) {
		rm.attach(id, GoalID)
	}
}
