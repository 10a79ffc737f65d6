package metrics

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSearchCost(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := ordtree.New(5, 3, 8, 1, 4, 7, 9)
	cost := SearchCost(tree, []int{5, 3, 4, 6})
	if cost.Probes != 4 || cost.Hits != 3 || cost.Misses() != 1 {
		t.Errorf("unexpected probe counts: %s", cost)
	}
	if cost.Comparisons != 1+2+3+3 || cost.Max != 3 {
		t.Errorf("unexpected comparison counts: %s", cost)
	}
	if cost.Mean() != 2.25 {
		t.Errorf("expected mean 2.25, have %f", cost.Mean())
	}
	if (Cost{}).Mean() != 0 {
		t.Errorf("mean of no probes should be 0")
	}
}

func TestSortedInsertionDegenerates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := 200
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	shuffled := make([]int, n)
	copy(shuffled, sorted)
	rand.New(rand.NewSource(1)).Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	degenerated := ordtree.New(sorted...)
	random := ordtree.New(shuffled...)
	if c := SearchCost(degenerated, sorted); c.Max != n {
		t.Errorf("expected a list-like tree, max comparisons are %d", c.Max)
	}
	if SearchCost(random, sorted).Mean() >= SearchCost(degenerated, sorted).Mean() {
		t.Errorf("random insertion order should search cheaper than sorted order")
	}
	shape := ShapeOf(degenerated)
	if shape.Height != n || shape.Leaves != 1 || shape.Optimal != 8 {
		t.Errorf("unexpected shape %+v", shape)
	}
	if ShapeOf(random).Balance() <= shape.Balance() {
		t.Errorf("random tree should be better balanced")
	}
}

func TestOptimalHeight(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 7: 3, 8: 4} {
		if h := OptimalHeight(n); h != want {
			t.Errorf("OptimalHeight(%d) = %d, want %d", n, h, want)
		}
	}
	balanced := ordtree.New(4, 2, 6, 1, 3, 5, 7)
	if b := ShapeOf(balanced).Balance(); b != 1.0 {
		t.Errorf("expected perfect balance, have %f", b)
	}
}
