package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a timed insert and rank-query pass over a generated dataset",
	Long: `bench builds a tree from the configured number of entries, timing
the insert phase, then issues one IndexOf rank query per stored key and
times that pass too.

Example:
  ordindex bench --entries 100000 --key-span 1000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		insertStart := time.Now()
		tr, err := buildDemoTree()
		if err != nil {
			return fmt.Errorf("failed to build tree: %w", err)
		}
		insertElapsed := time.Since(insertStart)

		r := rand.New(rand.NewSource(cfg.Bench.Seed))
		keys := make([]int, 0, tr.Count())
		it := tr.Iterate()
		for {
			e, ok, err := it.Next()
			if err != nil {
				return fmt.Errorf("traversal failed: %w", err)
			}
			if !ok {
				break
			}
			keys = append(keys, e.Key)
		}
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		rankStart := time.Now()
		for _, k := range keys {
			if idx := tr.IndexOf(k); idx < 0 {
				return fmt.Errorf("IndexOf(%d) unexpectedly reported absent", k)
			}
		}
		rankElapsed := time.Since(rankStart)

		fmt.Printf("entries:        %d\n", tr.Count())
		fmt.Printf("internal/leaf:  %d/%d\n", cfg.Tree.InternalCapacity, cfg.Tree.LeafCapacity)
		fmt.Printf("insert elapsed: %s (%s/op)\n", insertElapsed, insertElapsed/time.Duration(tr.Count()))
		fmt.Printf("rank elapsed:   %s (%s/op)\n", rankElapsed, rankElapsed/time.Duration(tr.Count()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
