/*
Package textfile provides API helpers to load UTF-8 text files as trees of
words.

Words are found by the Unicode word-breaking rules of UAX#29. The resulting
tree holds every distinct word of a text, inserted in reading order; the
shape of the tree therefore reflects the order in which words first appear.

Reading is done by a background goroutine which publishes words to the
loading goroutine. The tree itself is only ever touched by the caller.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
