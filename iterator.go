package ordtree

import "fmt"

// Iterator iterates over a snapshot of the elements of a tree, in ascending
// order. The snapshot is taken when the iterator is created; later mutations
// of the tree, other than through Remove, are not reflected.
//
//	it := tree.Iterator()
//	for it.HasNext() {
//	    e, _ := it.Next()
//	    ...
//	}
type Iterator[E any] struct {
	tree     *Tree[E]
	list     []E
	current  int  // index of the next element to yield
	yielded  bool // Next has been called since the last Remove
	lastSeen E
}

// Iterator returns an inorder iterator for the tree.
func (t *Tree[E]) Iterator() *Iterator[E] {
	return t.InorderIterator()
}

// InorderIterator returns an iterator over the ascending sequence of
// elements of the tree.
func (t *Tree[E]) InorderIterator() *Iterator[E] {
	it := &Iterator[E]{tree: t}
	it.list = t.Elements()
	return it
}

// HasNext returns true if the iterator has more elements.
func (it *Iterator[E]) HasNext() bool {
	return it.current < len(it.list)
}

// Next returns the next element and advances the iterator.
func (it *Iterator[E]) Next() (E, error) {
	if !it.HasNext() {
		var zero E
		return zero, ErrIteratorExhausted
	}
	e := it.list[it.current]
	it.current++
	it.lastSeen = e
	it.yielded = true
	return e, nil
}

// Remove deletes the element most recently returned by Next from the
// underlying tree. The snapshot is then rebuilt and the iterator restarts
// at the (new) smallest element of the tree.
//
// Remove returns ErrIllegalIteratorState if Next has not been called since
// creation or since the last Remove, or if the element has already been
// deleted from the tree by other means.
func (it *Iterator[E]) Remove() error {
	if !it.yielded {
		return ErrIllegalIteratorState
	}
	if !it.tree.Delete(it.lastSeen) {
		// element has been deleted from the tree behind the iterator's back
		it.yielded = false
		return fmt.Errorf("ordtree: element %v no longer in tree: %w", it.lastSeen, ErrIllegalIteratorState)
	}
	it.list = it.tree.Elements()
	it.current = 0
	it.yielded = false
	var zero E
	it.lastSeen = zero
	return nil
}
