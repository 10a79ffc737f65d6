package ordtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[E any] struct {
	idTable map[*Node[E]]int
	max     int
}

func newtable[E any]() nodeids[E] {
	return nodeids[E]{
		idTable: make(map[*Node[E]]int),
		max:     1,
	}
}

func (ids nodeids[E]) find(node *Node[E]) int {
	return ids.idTable[node]
}

func (ids *nodeids[E]) alloc(node *Node[E]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as empty circles.
//
// If highlight is given, nodes on the path from the root to highlight are
// filled with a highlighting color.
func Tree2Dot[E any](tree *Tree[E], w io.Writer, highlight ...E) error {
	onPath := make(map[*Node[E]]bool)
	if len(highlight) > 0 && !tree.IsEmpty() {
		for _, n := range tree.pathNodes(highlight[0]) {
			onPath[n] = true
		}
	}
	ids := newtable[E]()
	var nodelist, edgelist strings.Builder
	nilid := 10000
	var walk func(n *Node[E], depth int) int
	walk = func(n *Node[E], depth int) int {
		ID := ids.alloc(n)
		label := strings.ReplaceAll(fmt.Sprintf("%v", n.element), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label,
			nodeDotStyles(n.IsLeaf(), onPath[n], depth))
		for _, child := range [2]*Node[E]{n.left, n.right} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child, depth+1))
		}
		return ID
	}
	if !tree.IsEmpty() {
		walk(tree.root, 0)
	}
	T().Debugf("tree DOT: %d nodes", ids.max-1)
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			T().Errorf("tree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool, highlight bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[min(depth, len(hexhlcolors)-1)])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
