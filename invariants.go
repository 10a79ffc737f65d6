package ordtree

import "fmt"

// Check validates the structural tree invariants: strict binary-search
// order, absence of shared nodes or cycles, and a size consistent with the
// number of reachable nodes.
//
// Check is intended for tests and debugging.
func (t *Tree[E]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.compare == nil {
		return fmt.Errorf("%w: tree has no comparison function", ErrInvariantViolated)
	}
	seen := make(map[*Node[E]]struct{}, t.size)
	count, err := t.checkNode(t.root, nil, nil, seen)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size is %d, but %d nodes are reachable", ErrInvariantViolated,
			t.size, count)
	}
	return nil
}

// checkNode checks that every element below n lies strictly between the
// bounds lower and upper (nil meaning unbounded).
func (t *Tree[E]) checkNode(n *Node[E], lower, upper *E, seen map[*Node[E]]struct{}) (int, error) {
	if n == nil {
		return 0, nil
	}
	if _, ok := seen[n]; ok {
		return 0, fmt.Errorf("%w: node %v is reachable twice", ErrInvariantViolated, n.element)
	}
	seen[n] = struct{}{}
	if lower != nil && t.compare(n.element, *lower) <= 0 {
		return 0, fmt.Errorf("%w: %v is not greater than %v", ErrInvariantViolated, n.element, *lower)
	}
	if upper != nil && t.compare(n.element, *upper) >= 0 {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrInvariantViolated, n.element, *upper)
	}
	left, err := t.checkNode(n.left, lower, &n.element, seen)
	if err != nil {
		return 0, err
	}
	right, err := t.checkNode(n.right, &n.element, upper, seen)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
