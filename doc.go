/*
Package ordtree implements a generic, in-memory binary search tree.

Trees

A Tree holds distinct elements of a totally ordered type. Elements are kept
in binary-search order: for every node, elements in its left subtree compare
less, and elements in its right subtree compare greater. Inserting an element
which is already present is a no-op.

	tree := ordtree.New(5, 3, 8, 1, 4, 7, 9)
	tree.Insert(6)
	tree.Delete(5)
	fmt.Println(tree.Elements()) // [1 3 4 6 7 8 9]

The tree is not self-balancing. Operations are O(height), which is O(log n)
on average for random insertion order and degrades to O(n) for sorted input.
Clients interested in the shape of a tree may use SearchCount or
package metrics to analyze it empirically.

Deletion of a node with a left child promotes the in-order predecessor (the
rightmost node of the left subtree): its element is copied into the deleted
node, and the predecessor node is spliced out. Clients inspecting the node
graph through Root or Path will observe this.

Trees are not safe for concurrent use. A Tree must not be mutated while
another goroutine reads it.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the ordtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrIllegalIteratorState is flagged if an iterator is asked to remove an
// element without having yielded one since the last removal.
const ErrIllegalIteratorState = TreeError("iterator has no current element")

// ErrIteratorExhausted is flagged if Next is called on an iterator without
// remaining elements.
const ErrIteratorExhausted = TreeError("iterator exhausted")

// ErrInvariantViolated is flagged by Check if a tree does not satisfy the
// binary-search-tree invariants.
const ErrInvariantViolated = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
