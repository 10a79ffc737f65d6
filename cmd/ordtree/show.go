package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/console"
	"github.com/npillmayer/ordtree/html"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   "show [elements...]",
		Short: "Print traversals, statistics and a drawing of a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withTree(args, &f, treeRunner{
				ints:    func(t *ordtree.Tree[int], h []int) error { return show(out, t, h) },
				strings: func(t *ordtree.Tree[string], h []string) error { return show(out, t, h) },
			})
		},
	}
	f.register(cmd)
	return cmd
}

func show[E any](w io.Writer, tree *ordtree.Tree[E], highlight []E) error {
	fmt.Fprintf(w, "size:      %d\n", tree.Size())
	fmt.Fprintf(w, "height:    %d\n", tree.Height())
	fmt.Fprintf(w, "leaves:    %d\n", tree.NumberOfLeaves())
	for _, order := range []ordtree.Order{ordtree.InOrder, ordtree.PreOrder, ordtree.PostOrder} {
		fmt.Fprintf(w, "%-10s ", order.String()+":")
		if err := tree.Print(w, order); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	if len(highlight) > 0 {
		fmt.Fprintf(w, "path to %v: %v\n", highlight[0], tree.Path(highlight[0]))
	}
	fmt.Fprintln(w)
	return console.Fprint(w, console.NewFormat(console.ConfigFromTerminal(), nil), tree, highlight...)
}

func newDotCmd() *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   "dot [elements...]",
		Short: "Write a tree in Graphviz DOT format",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withTree(args, &f, treeRunner{
				ints: func(t *ordtree.Tree[int], h []int) error {
					return ordtree.Tree2Dot(t, out, h...)
				},
				strings: func(t *ordtree.Tree[string], h []string) error {
					return ordtree.Tree2Dot(t, out, h...)
				},
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newHTMLCmd() *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   "html [elements...]",
		Short: "Write a tree as nested HTML lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := withTree(args, &f, treeRunner{
				ints: func(t *ordtree.Tree[int], h []int) error {
					return html.Render(out, t, h...)
				},
				strings: func(t *ordtree.Tree[string], h []string) error {
					return html.Render(out, t, h...)
				},
			})
			if err == nil {
				fmt.Fprintln(out)
			}
			return err
		},
	}
	f.register(cmd)
	return cmd
}
