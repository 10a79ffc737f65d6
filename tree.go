package ordtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

// Comparable is a type which is able to compare itself to other values of
// the same type, establishing a total order.
//
// Compare returns a negative number if the receiver is less than other, zero
// if both are equal, and a positive number if the receiver is greater.
type Comparable[E any] interface {
	Compare(other E) int
}

// Tree is an unbalanced binary search tree of distinct elements.
//
// Trees have to be created with one of the constructors New, NewFunc,
// NewComparable or Collect; they carry the comparison function for their
// element type. A Tree is not safe for concurrent use.
type Tree[E any] struct {
	root    *Node[E]
	size    int
	compare func(a, b E) int
}

// New creates a tree for an ordered element type and inserts elements in
// sequence order. Later duplicates are silently dropped.
func New[E cmp.Ordered](elements ...E) *Tree[E] {
	return NewFunc(cmp.Compare[E], elements...)
}

// NewComparable creates a tree for an element type implementing Comparable
// and inserts elements in sequence order.
func NewComparable[E Comparable[E]](elements ...E) *Tree[E] {
	return NewFunc(func(a, b E) int {
		return a.Compare(b)
	}, elements...)
}

// NewFunc creates a tree ordered by a client-supplied comparison function
// and inserts elements in sequence order. compare must establish a total
// order on E; if it does not, tree behaviour is undefined.
//
// NewFunc panics if compare is nil.
func NewFunc[E any](compare func(a, b E) int, elements ...E) *Tree[E] {
	assert(compare != nil, "ordtree: comparison function may not be nil")
	t := &Tree[E]{compare: compare}
	for _, e := range elements {
		t.Insert(e)
	}
	return t
}

// Collect creates a tree from the elements of a finite iterator, inserted
// in iteration order.
func Collect[E cmp.Ordered](seq iter.Seq[E]) *Tree[E] {
	t := New[E]()
	for e := range seq {
		t.Insert(e)
	}
	return t
}

// Size returns the number of elements in the tree.
func (t *Tree[E]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Compare compares two elements using the ordering of the tree.
func (t *Tree[E]) Compare(a, b E) int {
	return t.compare(a, b)
}

// Root returns the root node of the tree, or nil for an empty tree.
// The node graph must not be mutated by clients.
func (t *Tree[E]) Root() *Node[E] {
	if t == nil {
		return nil
	}
	return t.root
}

// Search returns true if e is an element of the tree.
func (t *Tree[E]) Search(e E) bool {
	return t.find(e) != nil
}

// SearchCount searches for e, as Search does, and additionally returns the
// number of comparisons performed, i.e. the number of nodes visited.
func (t *Tree[E]) SearchCount(e E) (found bool, comparisons int) {
	if t == nil {
		return false, 0
	}
	current := t.root
	for current != nil {
		comparisons++
		c := t.compare(e, current.element)
		if c < 0 {
			current = current.left
		} else if c > 0 {
			current = current.right
		} else {
			return true, comparisons
		}
	}
	return false, comparisons
}

// find locates the node holding e, or returns nil.
func (t *Tree[E]) find(e E) *Node[E] {
	if t == nil {
		return nil
	}
	current := t.root
	for current != nil {
		c := t.compare(e, current.element)
		if c < 0 {
			current = current.left
		} else if c > 0 {
			current = current.right
		} else {
			return current
		}
	}
	return nil
}

// Insert inserts e into the tree. It returns false, leaving the tree
// unchanged, if an equal element is already present.
func (t *Tree[E]) Insert(e E) bool {
	assert(t != nil, "ordtree: Insert called for nil tree")
	assert(t.compare != nil, "ordtree: Insert called for tree without comparison function; use a constructor")
	if t.root == nil {
		t.root = newNode(e)
		t.size++
		return true
	}
	var parent *Node[E]
	current := t.root
	for current != nil {
		c := t.compare(e, current.element)
		if c < 0 {
			parent = current
			current = current.left
		} else if c > 0 {
			parent = current
			current = current.right
		} else {
			return false // duplicate
		}
	}
	if t.compare(e, parent.element) < 0 {
		parent.left = newNode(e)
	} else {
		parent.right = newNode(e)
	}
	t.size++
	return true
}

// Delete removes e from the tree. It returns false if e is not an element
// of the tree.
//
// If the node holding e has a left child, the node itself stays in place and
// receives the element of its in-order predecessor, i.e. the rightmost node
// of its left subtree. The predecessor node is unlinked instead.
func (t *Tree[E]) Delete(e E) bool {
	if t == nil {
		return false
	}
	var parent *Node[E]
	current := t.root
	for current != nil {
		c := t.compare(e, current.element)
		if c < 0 {
			parent = current
			current = current.left
		} else if c > 0 {
			parent = current
			current = current.right
		} else {
			break
		}
	}
	if current == nil {
		return false
	}
	if current.left == nil {
		// link parent directly to the right child of current
		if parent == nil {
			t.root = current.right
		} else if t.compare(e, parent.element) < 0 {
			parent.left = current.right
		} else {
			parent.right = current.right
		}
		T().Debugf("ordtree: delete %v, spliced node without left child", e)
	} else {
		parentOfRightmost := current
		rightmost := current.left
		for rightmost.right != nil {
			parentOfRightmost = rightmost
			rightmost = rightmost.right
		}
		current.element = rightmost.element
		if parentOfRightmost.right == rightmost {
			parentOfRightmost.right = rightmost.left
		} else { // parentOfRightmost == current
			parentOfRightmost.left = rightmost.left
		}
		T().Debugf("ordtree: delete %v, promoted predecessor %v", e, current.element)
	}
	t.size--
	return true
}

// Clear removes all elements from the tree.
func (t *Tree[E]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}
