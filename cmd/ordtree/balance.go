package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/metrics"
	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	var n int
	var seed int64
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Compare search cost of trees built from sorted and from shuffled input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("%w: number of elements must be positive", ordtree.ErrIllegalArguments)
			}
			return balance(cmd.OutOrStdout(), n, seed)
		},
	}
	cmd.Flags().IntVarP(&n, "number", "n", 1000, "number of elements to insert")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for shuffling")
	return cmd
}

func balance(w io.Writer, n int, seed int64) error {
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = 2 * i // odd numbers are misses
	}
	shuffled := make([]int, n)
	copy(shuffled, sorted)
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	probes := make([]int, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		probes = append(probes, i)
	}
	fmt.Fprintf(w, "%s elements, %s probes\n", humanize.Comma(int64(n)), humanize.Comma(int64(len(probes))))
	for _, run := range []struct {
		name  string
		input []int
	}{{"sorted", sorted}, {"shuffled", shuffled}} {
		tree := ordtree.New(run.input...)
		cost := metrics.SearchCost(tree, probes)
		shape := metrics.ShapeOf(tree)
		fmt.Fprintf(w, "%-9s height %s, balance %.3f, comparisons total %s, mean %s, max %s\n",
			run.name+":",
			humanize.Comma(int64(shape.Height)),
			shape.Balance(),
			humanize.Comma(int64(cost.Comparisons)),
			humanize.FormatFloat("#,###.##", cost.Mean()),
			humanize.Comma(int64(cost.Max)))
	}
	return nil
}
