/*
Package metrics provides some pre-manufactured metrics on the shape of
binary search trees.

Trees of package ordtree are not self-balancing. The cost of a search is
the number of comparisons performed, which equals the depth of the node
found (or of the nil link reached). Metrics in this package help to
analyze balance empirically, e.g. to compare random against sorted
insertion order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
