package ordtree

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	t.Helper()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func sampleTree() *Tree[int] {
	return New(5, 3, 8, 1, 4, 7, 9)
}

func TestNewEmpty(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := New[int]()
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Root() != nil {
		t.Fatalf("expected new tree to be empty, size=%d", tree.Size())
	}
	if tree.Search(1) {
		t.Errorf("empty tree should not contain 1")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("empty tree should be valid, got %v", err)
	}
}

func TestNewFromElementsDropsDuplicates(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := New(3, 1, 3, 2, 1)
	if tree.Size() != 3 {
		t.Fatalf("expected size 3, have %d", tree.Size())
	}
	if got := tree.Elements(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("unexpected elements %v", got)
	}
	if tree.Root().Element() != 3 {
		t.Errorf("expected first element to become root, root is %d", tree.Root().Element())
	}
}

type version struct {
	major, minor int
}

func (v version) Compare(other version) int {
	if v.major != other.major {
		return v.major - other.major
	}
	return v.minor - other.minor
}

func TestNewComparable(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewComparable(version{1, 2}, version{0, 9}, version{1, 0}, version{1, 2})
	if tree.Size() != 3 {
		t.Fatalf("expected size 3, have %d", tree.Size())
	}
	want := []version{{0, 9}, {1, 0}, {1, 2}}
	if got := tree.Elements(); !slices.Equal(got, want) {
		t.Errorf("expected %v, have %v", want, got)
	}
}

func TestNewFuncReverseOrder(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewFunc(func(a, b string) int { return strings.Compare(b, a) }, "b", "c", "a")
	if got := tree.Elements(); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("expected descending elements, have %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestCollect(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := Collect(slices.Values([]int{4, 2, 6, 2}))
	if tree.Size() != 3 {
		t.Fatalf("expected size 3, have %d", tree.Size())
	}
	if !tree.SameTree(New(4, 2, 6)) {
		t.Errorf("collected tree differs from tree built by New")
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	before := New(5, 3, 8, 1, 4, 7, 9)
	if tree.Insert(4) {
		t.Errorf("inserting a duplicate should fail")
	}
	if tree.Size() != 7 {
		t.Errorf("size should be unchanged, is %d", tree.Size())
	}
	if !tree.SameTree(before) {
		t.Errorf("structure changed by rejected insert")
	}
}

func TestInsertAttachesAtParent(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	if !tree.Insert(6) {
		t.Fatalf("insert of 6 failed")
	}
	seven := tree.Root().Right().Left()
	if seven.Element() != 7 || seven.Left() == nil || seven.Left().Element() != 6 {
		t.Errorf("expected 6 to be left child of 7")
	}
	if tree.Size() != 8 {
		t.Errorf("expected size 8, have %d", tree.Size())
	}
}

func TestSearchCount(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	cases := []struct {
		e     int
		found bool
		comps int
	}{
		{5, true, 1},
		{3, true, 2},
		{4, true, 3},
		{9, true, 3},
		{6, false, 3},
		{10, false, 3},
	}
	for _, tc := range cases {
		found, comps := tree.SearchCount(tc.e)
		if found != tc.found || comps != tc.comps {
			t.Errorf("SearchCount(%d) = (%v,%d), want (%v,%d)", tc.e, found, comps, tc.found, tc.comps)
		}
		if tree.Search(tc.e) != found {
			t.Errorf("Search(%d) and SearchCount disagree", tc.e)
		}
		if found && len(tree.Path(tc.e)) != comps {
			t.Errorf("path length for %d should match comparison count %d", tc.e, comps)
		}
	}
}

func TestDeleteWithLeftChildPromotesPredecessor(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	if !tree.Delete(5) {
		t.Fatalf("delete of 5 failed")
	}
	if tree.Root().Element() != 4 {
		t.Errorf("expected predecessor 4 at root, have %d", tree.Root().Element())
	}
	if got := tree.LeftSubTree(4); !slices.Equal(got, []int{3, 1}) {
		t.Errorf("expected left subtree [3 1], have %v", got)
	}
	if tree.Size() != 6 || tree.Search(5) {
		t.Errorf("tree still contains 5 or has wrong size %d", tree.Size())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeletePredecessorIsLeftChild(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := New(5, 3, 8, 1)
	tree.Delete(3) // left child 1 has no right descendants
	if got := tree.Root().Left().Element(); got != 1 {
		t.Errorf("expected 1 to replace 3, have %d", got)
	}
	if tree.Root().Left().Left() != nil {
		t.Errorf("expected old node of 1 to be unlinked")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteWithoutLeftChild(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := New(5, 3, 8, 4, 9)
	tree.Delete(3) // 3 has only a right child
	if got := tree.Root().Left().Element(); got != 4 {
		t.Errorf("expected 4 to be spliced in for 3, have %d", got)
	}
	tree.Delete(8)
	if got := tree.Root().Right().Element(); got != 9 {
		t.Errorf("expected 9 to be spliced in for 8, have %d", got)
	}
	tree.Delete(9) // leaf
	if tree.Root().Right() != nil {
		t.Errorf("expected no right subtree")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteRootWithoutLeftChild(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := New(1, 2, 3)
	tree.Delete(1)
	if tree.Root().Element() != 2 || tree.Size() != 2 {
		t.Errorf("expected 2 to become root")
	}
	tree.Delete(2)
	tree.Delete(3)
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Errorf("expected tree to be empty")
	}
}

func TestDeleteAbsentLeavesTreeUnchanged(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	if tree.Delete(6) {
		t.Errorf("delete of absent element should fail")
	}
	if tree.Size() != 7 || !tree.SameTree(sampleTree()) {
		t.Errorf("tree changed by failed delete")
	}
	if New[int]().Delete(1) {
		t.Errorf("delete on empty tree should fail")
	}
}

func TestClear(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	tree.Clear()
	if !tree.IsEmpty() || tree.Size() != 0 || len(tree.Elements()) != 0 {
		t.Errorf("expected cleared tree to be empty")
	}
	if !tree.Insert(1) || tree.Size() != 1 {
		t.Errorf("cleared tree should accept inserts")
	}
}

func TestCheckDetectsBrokenOrder(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := sampleTree()
	tree.root.left.right.element = 6 // 6 within left subtree of 5
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected invariant violation, got %v", err)
	}
	tree = sampleTree()
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected size mismatch to be detected, got %v", err)
	}
	tree = sampleTree()
	tree.root.right.right.left = tree.root.left
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected shared node to be detected, got %v", err)
	}
}

func TestRandomizedInsertDelete(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(4711))
	tree := New[int]()
	model := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		e := r.Intn(200)
		if r.Intn(3) == 0 {
			if tree.Delete(e) != model[e] {
				t.Fatalf("step %d: Delete(%d) disagrees with model", i, e)
			}
			delete(model, e)
		} else {
			if tree.Insert(e) == model[e] {
				t.Fatalf("step %d: Insert(%d) disagrees with model", i, e)
			}
			model[e] = true
		}
		if tree.Size() != len(model) {
			t.Fatalf("step %d: size=%d, model has %d", i, tree.Size(), len(model))
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	elements := tree.Elements()
	if !slices.IsSorted(elements) || len(elements) != tree.Size() {
		t.Errorf("inorder traversal is not strictly ascending")
	}
	for e := range model {
		if !tree.Search(e) {
			t.Errorf("tree lost element %d", e)
		}
	}
}

func TestInsertIntoZeroTreePanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	var tree Tree[int]
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Insert on zero tree to panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "comparison function") {
			t.Errorf("expected panic about missing comparison function, have %v", r)
		}
		if tree.Size() != 0 || tree.Root() != nil {
			t.Errorf("zero tree should stay empty, size=%d", tree.Size())
		}
	}()
	tree.Insert(1)
}
