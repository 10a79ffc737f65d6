package metrics

import (
	"fmt"
	"math"

	"github.com/npillmayer/ordtree"
)

// Cost is the result of probing a tree with a series of searches.
type Cost struct {
	Probes      int // number of searches performed
	Hits        int // number of successful searches
	Comparisons int // total number of comparisons
	Max         int // maximum number of comparisons for a single search
}

// Mean returns the average number of comparisons per search.
func (c Cost) Mean() float64 {
	if c.Probes == 0 {
		return 0
	}
	return float64(c.Comparisons) / float64(c.Probes)
}

// Misses returns the number of unsuccessful searches.
func (c Cost) Misses() int {
	return c.Probes - c.Hits
}

func (c Cost) String() string {
	return fmt.Sprintf("%d probes, %d hits, mean %.2f, max %d comparisons",
		c.Probes, c.Hits, c.Mean(), c.Max)
}

// SearchCost searches a tree for every probe and accumulates the number of
// comparisons needed.
func SearchCost[E any](tree *ordtree.Tree[E], probes []E) Cost {
	var cost Cost
	for _, p := range probes {
		found, comparisons := tree.SearchCount(p)
		cost.Probes++
		if found {
			cost.Hits++
		}
		cost.Comparisons += comparisons
		cost.Max = max(cost.Max, comparisons)
	}
	tracer().Debugf("search cost: %s", cost)
	return cost
}

// Shape describes the overall shape of a tree.
type Shape struct {
	Size    int // number of nodes
	Height  int // number of nodes on the longest root-to-leaf path
	Leaves  int // number of nodes without children
	Optimal int // minimal possible height for Size nodes
}

// Balance returns the ratio of the optimal height to the actual height, where
// 1.0 denotes a perfectly balanced tree. An empty tree has balance 1.0.
func (s Shape) Balance() float64 {
	if s.Height == 0 {
		return 1.0
	}
	return float64(s.Optimal) / float64(s.Height)
}

// ShapeOf measures the shape of a tree.
func ShapeOf[E any](tree *ordtree.Tree[E]) Shape {
	s := Shape{
		Size:   tree.Size(),
		Height: tree.Height(),
		Leaves: tree.NumberOfLeaves(),
	}
	s.Optimal = OptimalHeight(s.Size)
	return s
}

// OptimalHeight returns the minimal height of a binary tree with n nodes,
// i.e. ⌈log2(n+1)⌉.
func OptimalHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n) + 1)))
}
