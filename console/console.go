package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Palette holds the colors used to display nodes. A nil color
// prints uncolored.
type Palette struct {
	Inner     *color.Color // nodes with at least one child
	Leaf      *color.Color // nodes without children
	Highlight *color.Color // nodes on a highlighted path
}

// DefaultPalette returns the palette used if clients do not provide one.
func DefaultPalette() *Palette {
	return &Palette{
		Inner:     color.New(color.FgBlue),
		Leaf:      color.New(color.FgGreen),
		Highlight: color.New(color.FgRed, color.Bold),
	}
}

// Format renders trees. A Format may be shared for rendering multiple trees.
type Format struct {
	Config  *Config
	Palette *Palette
}

var setupGraphemes sync.Once

// NewFormat creates a new tree format. config and palette may be nil, resulting
// in unlimited line width and the default palette.
func NewFormat(config *Config, palette *Palette) *Format {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if config == nil {
		config = &Config{}
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Format{Config: config, Palette: palette}
}

// Print renders a tree to stdout, with a configuration derived from the terminal.
// If highlight is given, the path from the root to this element will be highlighted.
func Print[E any](tree *ordtree.Tree[E], highlight ...E) error {
	return Fprint(os.Stdout, NewFormat(ConfigFromTerminal(), nil), tree, highlight...)
}

// Fprint renders a tree to w. If highlight is given, the path from the root to
// this element will be highlighted. An empty tree renders as nothing.
func Fprint[E any](w io.Writer, format *Format, tree *ordtree.Tree[E], highlight ...E) error {
	if w == nil || format == nil {
		return ordtree.ErrIllegalArguments
	}
	if tree.IsEmpty() {
		return nil
	}
	r := &renderer[E]{w: w, format: format, tree: tree}
	if len(highlight) > 0 {
		r.path = tree.Path(highlight[0])
	}
	r.node(tree.Root(), 0, "", atRoot, len(r.path) > 0)
	return r.err
}

// position of a node relative to its parent
type position int8

const (
	atRoot position = iota
	asRight
	asLeft
)

const (
	branchUp   = "┌── "
	branchDown = "└── "
	pipe       = "│   "
	blank      = "    "
)

type renderer[E any] struct {
	w      io.Writer
	format *Format
	tree   *ordtree.Tree[E]
	path   []E
	err    error
}

// node renders the subtree at n: right subtree first, then n, then the left subtree.
func (r *renderer[E]) node(n *ordtree.Node[E], depth int, prefix string, pos position, onPath bool) {
	if right := n.Right(); right != nil {
		r.node(right, depth+1, prefix+indent(pos, true), asRight, r.follows(onPath, depth, right))
	}
	r.line(n, prefix+connector(pos), onPath)
	if left := n.Left(); left != nil {
		r.node(left, depth+1, prefix+indent(pos, false), asLeft, r.follows(onPath, depth, left))
	}
}

// follows is true if child continues a highlighted path through its parent at depth.
func (r *renderer[E]) follows(parentOnPath bool, depth int, child *ordtree.Node[E]) bool {
	return parentOnPath && depth+1 < len(r.path) &&
		r.tree.Compare(child.Element(), r.path[depth+1]) == 0
}

func (r *renderer[E]) line(n *ordtree.Node[E], prefix string, onPath bool) {
	if r.err != nil {
		return
	}
	label := fmt.Sprintf("%v", n.Element())
	if lw := r.format.Config.LineWidth; lw > 0 {
		ctx := r.format.Config.context()
		label = truncate(label, lw-displayWidth(prefix, ctx), ctx)
	}
	var c *color.Color
	switch {
	case onPath:
		c = r.format.Palette.Highlight
	case n.IsLeaf():
		c = r.format.Palette.Leaf
	default:
		c = r.format.Palette.Inner
	}
	if _, r.err = io.WriteString(r.w, prefix); r.err != nil {
		return
	}
	if c != nil {
		_, r.err = c.Fprint(r.w, label)
	} else {
		_, r.err = io.WriteString(r.w, label)
	}
	if r.err == nil {
		_, r.err = io.WriteString(r.w, "\n")
	}
}

func indent(pos position, upper bool) string {
	switch pos {
	case asRight:
		if upper {
			return blank
		}
		return pipe
	case asLeft:
		if upper {
			return pipe
		}
		return blank
	}
	return ""
}

func connector(pos position) string {
	switch pos {
	case asRight:
		return branchUp
	case asLeft:
		return branchDown
	}
	return ""
}

// displayWidth returns the number of display cells of s in context.
// Box-drawing characters are ambiguous-width and may take 2 cells.
func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens a label to at most avail display cells, marking the cut
// with an ellipsis. Labels are cut at grapheme boundaries.
func truncate(label string, avail int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(label)
	if uax11.StringWidth(gstr, context) <= avail {
		return label
	}
	ellipsis := displayWidth("…", context)
	if avail <= ellipsis {
		return "…"
	}
	var b strings.Builder
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := displayWidth(g, context)
		if width+gw > avail-ellipsis {
			break
		}
		b.WriteString(g)
		width += gw
	}
	b.WriteString("…")
	T().Debugf("console: truncated label %q to %q", label, b.String())
	return b.String()
}
