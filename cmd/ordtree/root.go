package main

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// treeFlags are shared by commands which build a tree from their arguments.
type treeFlags struct {
	strings bool
	path    string
	deletes []string
}

func (f *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.strings, "strings", "s", false, "treat elements as strings instead of integers")
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "highlight the path to this element")
	cmd.Flags().StringSliceVarP(&f.deletes, "delete", "d", nil, "delete these elements after building the tree")
}

func newRootCmd() *cobra.Command {
	var traceLevel string
	var noColor bool
	root := &cobra.Command{
		Use:           "ordtree",
		Short:         "Build, inspect and analyze binary search trees",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseTraceLevel(traceLevel)
			if err != nil {
				return err
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(level)
			if noColor {
				color.NoColor = true
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (debug, info, error)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.AddCommand(newShowCmd(), newDotCmd(), newHTMLCmd(), newWordsCmd(), newBalanceCmd())
	return root
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: unknown trace level %q", ordtree.ErrIllegalArguments, s)
}

// withTree builds a tree from command arguments, either of integers or of
// strings, applies deletions and hands it to run.
func withTree(args []string, f *treeFlags, run treeRunner) error {
	if f.strings {
		return runTree(args, f, func(s string) (string, error) { return s, nil }, run.strings)
	}
	return runTree(args, f, parseInt, run.ints)
}

type treeRunner struct {
	ints    func(tree *ordtree.Tree[int], highlight []int) error
	strings func(tree *ordtree.Tree[string], highlight []string) error
}

func runTree[E cmp.Ordered](args []string, f *treeFlags, parse func(string) (E, error),
	run func(*ordtree.Tree[E], []E) error) error {
	//
	elements, err := parseAll(args, parse)
	if err != nil {
		return err
	}
	deletes, err := parseAll(f.deletes, parse)
	if err != nil {
		return err
	}
	tree := ordtree.New(elements...)
	for _, e := range deletes {
		if !tree.Delete(e) {
			gtrace.CoreTracer.Infof("element %v not in tree, not deleted", e)
		}
	}
	var highlight []E
	if f.path != "" {
		e, err := parse(f.path)
		if err != nil {
			return err
		}
		highlight = []E{e}
	}
	return run(tree, highlight)
}

func parseAll[E any](args []string, parse func(string) (E, error)) ([]E, error) {
	elements := make([]E, 0, len(args))
	for _, arg := range args {
		e, err := parse(arg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ordtree.ErrIllegalArguments, s)
	}
	return n, nil
}
