package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build a tree from the configured dataset and print its structure",
	Long: `dump builds a tree from the configured number of entries and
renders it as indented text: a header line per internal node, then one
line per separator or leaf entry.

Example:
  ordindex dump --entries 40 --internal-capacity 4 --leaf-capacity 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildDemoTree()
		if err != nil {
			return fmt.Errorf("failed to build tree: %w", err)
		}
		fmt.Print(tr.Dump())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
