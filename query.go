package ordtree

// Path returns the elements visited while descending from the root to e,
// including e itself. If e is not an element of the tree, Path returns an
// empty slice; partial paths are never returned.
func (t *Tree[E]) Path(e E) []E {
	if t == nil {
		return []E{}
	}
	nodes := t.pathNodes(e)
	path := make([]E, len(nodes))
	for i, n := range nodes {
		path[i] = n.element
	}
	return path
}

// pathNodes returns the nodes from the root down to the node holding e, or
// nil if e is not found.
func (t *Tree[E]) pathNodes(e E) []*Node[E] {
	var nodes []*Node[E]
	current := t.root
	for current != nil {
		nodes = append(nodes, current)
		c := t.compare(e, current.element)
		if c < 0 {
			current = current.left
		} else if c > 0 {
			current = current.right
		} else {
			return nodes
		}
	}
	return nil
}

// NumberOfLeaves returns the number of nodes without children.
func (t *Tree[E]) NumberOfLeaves() int {
	if t == nil || t.root == nil {
		return 0
	}
	leaves := 0
	stack := []*Node[E]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left == nil && n.right == nil {
			leaves++
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return leaves
}

// Height returns the number of nodes on the longest path from the root to a
// leaf; 0 for an empty tree.
func (t *Tree[E]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[E any](n *Node[E]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// LeftSubTree returns the elements of the left subtree of the node holding
// e, in preorder. If e is not an element of the tree, an empty slice is
// returned.
func (t *Tree[E]) LeftSubTree(e E) []E {
	n := t.find(e)
	if n == nil {
		return []E{}
	}
	return preorderFrom(n.left)
}

// RightSubTree returns the elements of the right subtree of the node holding
// e, in preorder. If e is not an element of the tree, an empty slice is
// returned.
func (t *Tree[E]) RightSubTree(e E) []E {
	n := t.find(e)
	if n == nil {
		return []E{}
	}
	return preorderFrom(n.right)
}

// preorderFrom collects a subtree in preorder, using an explicit stack.
// Right children are pushed before left ones, so left is popped first.
func preorderFrom[E any](subtree *Node[E]) []E {
	elements := []E{}
	if subtree == nil {
		return elements
	}
	stack := []*Node[E]{subtree}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		elements = append(elements, n.element)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return elements
}

// SameTree returns true if other has the same shape as t and holds equal
// elements at corresponding nodes. Elements are compared with t's
// comparison function.
func (t *Tree[E]) SameTree(other *Tree[E]) bool {
	if t == nil || other == nil {
		return t.IsEmpty() && other.IsEmpty()
	}
	return t.sameNodes(t.root, other.root)
}

func (t *Tree[E]) sameNodes(n1, n2 *Node[E]) bool {
	if n1 == nil && n2 == nil {
		return true
	}
	if n1 == nil || n2 == nil {
		return false
	}
	if t.compare(n1.element, n2.element) != 0 {
		return false
	}
	return t.sameNodes(n1.left, n2.left) && t.sameNodes(n1.right, n2.right)
}
