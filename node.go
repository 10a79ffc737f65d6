package ordtree

// Node is a node of a binary search tree. Nodes are owned exclusively by
// their parent (or by the tree, for the root) and do not link back to
// their parent.
//
// Nodes are handed out for read-only inspection, e.g. for pretty-printing
// a tree. Clients must not hold on to nodes across mutations of the tree.
type Node[E any] struct {
	element E
	left    *Node[E]
	right   *Node[E]
}

func newNode[E any](e E) *Node[E] {
	return &Node[E]{element: e}
}

// Element returns the element stored at this node.
func (n *Node[E]) Element() E {
	return n.element
}

// Left returns the left child of n, or nil.
func (n *Node[E]) Left() *Node[E] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[E]) Right() *Node[E] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is true if n has neither a left nor a right child.
func (n *Node[E]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}
