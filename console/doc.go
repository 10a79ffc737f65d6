/*
Package console renders binary search trees to terminals with fixed-width
fonts.

Trees are drawn sideways, with the root at the left margin, right subtrees
above and left subtrees below their parent node:

	    ┌── 9
	┌── 8
	│   └── 7
	5
	│   ┌── 4
	└── 3
	    └── 1

Element labels are measured in display cells according to UAX#11 (East Asian
Width), so wide characters and emojis are accounted for when truncating labels
to the terminal's line width. Nodes on a highlighted search path and leaf nodes
are colored.

	tree := ordtree.New(5, 3, 8, 1, 4, 7, 9)
	console.Print(tree, 7) // highlight path to 7

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
