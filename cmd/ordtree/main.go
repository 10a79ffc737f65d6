/*
Command ordtree is a driver for binary search trees of package ordtree.

It builds trees from command line arguments or text files and displays
them as text, Graphviz DOT or HTML, or analyzes the search cost of trees
built from sorted versus shuffled input.

	ordtree show 5 3 8 1 4 7 9 --path 7
	ordtree dot 5 3 8 | dot -Tsvg > tree.svg
	ordtree words README.md --fold
	ordtree balance -n 10000

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
