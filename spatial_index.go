package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// boxPadding keeps degenerate (zero width or height) boxes valid for rtreego
const boxPadding = 1e-9

// obstacleEntry wraps an obstacle for R-tree storage
type obstacleEntry struct {
	Index int
	BBox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// SpatialIndex manages obstacle spatial queries
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex creates a new spatial index over the obstacle bounding boxes
func NewSpatialIndex(obstacles []Triangle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, obstacle := range obstacles {
		bbox, err := toRect(obstacle.Bounds())
		if err == nil {
			tree.Insert(&obstacleEntry{Index: i, BBox: bbox})
		}
	}

	return &SpatialIndex{tree: tree}
}

// QueryRegion returns indices of obstacles whose bounding box intersects the given box,
// in ascending order
func (si *SpatialIndex) QueryRegion(box BBox) []int {
	rect, err := toRect(box)
	if err != nil {
		return []int{}
	}

	results := si.tree.SearchIntersect(rect)
	indices := make([]int, 0, len(results))
	for _, item := range results {
		indices = append(indices, item.(*obstacleEntry).Index)
	}
	sort.Ints(indices)

	return indices
}

// toRect converts a bounding box to an rtreego rectangle, padded on every side
func toRect(box BBox) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{box.MinX - boxPadding, box.MinY - boxPadding},
		[]float64{box.MaxX - box.MinX + 2*boxPadding, box.MaxY - box.MinY + 2*boxPadding},
	)
}

// nodeEntry places a roadmap node in the R-tree
type nodeEntry struct {
	ID   int
	BBox rtreego.Rect
}

func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// NodeIndex answers radius queries over accepted roadmap samples
type NodeIndex struct {
	tree   *rtreego.Rtree
	points map[int]Point
}

// NewNodeIndex creates an empty node index
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{
		tree:   rtreego.NewTree(2, 25, 50),
		points: make(map[int]Point),
	}
}

// Insert adds a node to the index
func (ni *NodeIndex) Insert(id int, p Point) {
	ni.points[id] = p
	ni.tree.Insert(&nodeEntry{
		ID:   id,
		BBox: rtreego.Point{p.X, p.Y}.ToRect(boxPadding),
	})
}

// Within returns the IDs of indexed nodes at distance <= radius from p, ascending
func (ni *NodeIndex) Within(p Point, radius float64) []int {
	rect, err := toRect(BBox{MinX: p.X - radius, MinY: p.Y - radius, MaxX: p.X + radius, MaxY: p.Y + radius})
	if err != nil {
		return []int{}
	}

	results := ni.tree.SearchIntersect(rect)
	ids := make([]int, 0, len(results))
	for _, item := range results {
		id := item.(*nodeEntry).ID
		if ni.points[id].Distance(p) <= radius {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}

// Len returns the number of indexed nodes
func (ni *NodeIndex) Len() int {
	return ni.tree.Size()
}
