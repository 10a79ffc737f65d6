package ordtree

import (
	"fmt"
	"io"
	"iter"
)

// Order selects one of the classical depth-first visiting orders.
type Order int8

// Visiting orders for Walk and Print.
const (
	InOrder   Order = iota // left, self, right
	PreOrder               // self, left, right
	PostOrder              // left, right, self
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Inorder calls visit for every element in ascending order.
func (t *Tree[E]) Inorder(visit func(E)) {
	t.Walk(InOrder, visit)
}

// Preorder calls visit for every element, visiting a node before its left
// and right subtrees.
func (t *Tree[E]) Preorder(visit func(E)) {
	t.Walk(PreOrder, visit)
}

// Postorder calls visit for every element, visiting a node after its left
// and right subtrees.
func (t *Tree[E]) Postorder(visit func(E)) {
	t.Walk(PostOrder, visit)
}

// Walk calls visit for every element of the tree in the given order.
// visit must not mutate the tree.
func (t *Tree[E]) Walk(order Order, visit func(E)) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	switch order {
	case InOrder:
		inorder(t.root, visit)
	case PreOrder:
		preorder(t.root, visit)
	case PostOrder:
		postorder(t.root, visit)
	default:
		panic(fmt.Sprintf("ordtree: unknown traversal order %d", order))
	}
}

func inorder[E any](n *Node[E], visit func(E)) {
	if n == nil {
		return
	}
	inorder(n.left, visit)
	visit(n.element)
	inorder(n.right, visit)
}

func preorder[E any](n *Node[E], visit func(E)) {
	if n == nil {
		return
	}
	visit(n.element)
	preorder(n.left, visit)
	preorder(n.right, visit)
}

func postorder[E any](n *Node[E], visit func(E)) {
	if n == nil {
		return
	}
	postorder(n.left, visit)
	postorder(n.right, visit)
	visit(n.element)
}

// Print writes the elements of the tree to w in the given order, each
// element followed by a single blank.
func (t *Tree[E]) Print(w io.Writer, order Order) error {
	var err error
	t.Walk(order, func(e E) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%v ", e)
	})
	return err
}

// Elements returns all elements of the tree in ascending order.
func (t *Tree[E]) Elements() []E {
	elements := make([]E, 0, t.Size())
	t.Inorder(func(e E) {
		elements = append(elements, e)
	})
	return elements
}

// All returns an iterator over the elements of the tree in ascending order.
// The tree must not be mutated during iteration.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t == nil {
			return
		}
		eachInorder(t.root, yield)
	}
}

func eachInorder[E any](n *Node[E], yield func(E) bool) bool {
	if n == nil {
		return true
	}
	return eachInorder(n.left, yield) && yield(n.element) && eachInorder(n.right, yield)
}
