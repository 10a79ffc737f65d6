/*
Package html renders binary search trees as HTML and builds trees from the
text of HTML documents.

Rendering produces nested unordered lists, one list item per node:

	<ul class="ordtree">
	  <li class="node"><span>5</span>
	    <ul>
	      <li class="node left"><span>3</span>…</li>
	      <li class="node right"><span>8</span>…</li>
	    </ul>
	  </li>
	</ul>

Leaves carry the additional class "leaf"; nodes on a highlighted search path
carry the class "path".
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/textfile"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// Render writes an HTML fragment for a tree to w. If highlight is given, the
// nodes on the path from the root to this element get class "path".
func Render[E any](w io.Writer, tree *ordtree.Tree[E], highlight ...E) error {
	if w == nil {
		return ordtree.ErrIllegalArguments
	}
	var path []E
	if len(highlight) > 0 {
		path = tree.Path(highlight[0])
	}
	doc := Node(tree, path)
	return html.Render(w, doc)
}

// Node creates an HTML node tree for a tree, marking the nodes of path
// (which may be empty) with class "path".
func Node[E any](tree *ordtree.Tree[E], path []E) *html.Node {
	ul := element(atom.Ul, "ordtree")
	if tree.IsEmpty() {
		return ul
	}
	ul.AppendChild(listItem(tree, tree.Root(), "", path, 0, len(path) > 0))
	return ul
}

func listItem[E any](tree *ordtree.Tree[E], n *ordtree.Node[E], side string, path []E,
	depth int, onPath bool) *html.Node {
	//
	classes := []string{"node"}
	if side != "" {
		classes = append(classes, side)
	}
	if n.IsLeaf() {
		classes = append(classes, "leaf")
	}
	if onPath {
		classes = append(classes, "path")
	}
	li := element(atom.Li, strings.Join(classes, " "))
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%v", n.Element())})
	li.AppendChild(span)
	if n.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	for _, c := range []struct {
		child *ordtree.Node[E]
		side  string
	}{{n.Left(), "left"}, {n.Right(), "right"}} {
		if c.child == nil {
			children.AppendChild(element(atom.Li, "empty "+c.side))
			continue
		}
		childOnPath := onPath && depth+1 < len(path) && tree.Compare(c.child.Element(), path[depth+1]) == 0
		children.AppendChild(listItem(tree, c.child, c.side, path, depth+1, childOnPath))
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// TreeFromHTML creates a tree of the distinct words of the textual content
// of an HTML fragment. Words are inserted in document order.
func TreeFromHTML(input io.Reader) (*ordtree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := ordtree.New[string]()
	for _, n := range nodes {
		collectWords(n, tree)
	}
	tracer().Debugf("collected %d distinct words from HTML", tree.Size())
	return tree, nil
}

// InnerWords collects the distinct words of an HTML element and all its
// descendents into a tree.
func InnerWords(n *html.Node) (*ordtree.Tree[string], error) {
	if n == nil {
		return nil, ordtree.ErrIllegalArguments
	}
	tree := ordtree.New[string]()
	collectWords(n, tree)
	return tree, nil
}

func collectWords(n *html.Node, tree *ordtree.Tree[string]) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	} else if n.Type == html.TextNode {
		for word := range textfile.Words(strings.NewReader(n.Data)) {
			tree.Insert(word)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, tree)
	}
}
