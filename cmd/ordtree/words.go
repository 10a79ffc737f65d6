package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/html"
	"github.com/npillmayer/ordtree/metrics"
	"github.com/npillmayer/ordtree/textfile"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	var fold, draw bool
	cmd := &cobra.Command{
		Use:   "words FILE",
		Short: "Collect the distinct words of a text or HTML file into a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			var tree *ordtree.Tree[string]
			var err error
			switch strings.ToLower(filepath.Ext(name)) {
			case ".html", ".htm":
				tree, err = wordsFromHTML(name)
			default:
				tree, err = textfile.Load(cmd.Context(), name, &textfile.Options{FoldCase: fold})
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			shape := metrics.ShapeOf(tree)
			fmt.Fprintf(out, "%d distinct words, height %d (optimal %d), %d leaves\n",
				shape.Size, shape.Height, shape.Optimal, shape.Leaves)
			for word := range tree.All() {
				fmt.Fprintln(out, word)
			}
			if draw {
				return show(out, tree, nil)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fold, "fold", "f", false, "fold words to lower case (text files only)")
	cmd.Flags().BoolVarP(&draw, "tree", "t", false, "draw the resulting tree")
	return cmd
}

func wordsFromHTML(name string) (*ordtree.Tree[string], error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return html.TreeFromHTML(file)
}
