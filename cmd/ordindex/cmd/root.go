/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordindex/ordindex/internal/cliconfig"
)

var cfg *cliconfig.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ordindex",
	Short: "ordindex - in-memory ordered associative container tools",
	Long: `ordindex is a reference driver around an in-memory B+Tree library:
keyed lookups plus O(log n) rank and positional queries, with no on-disk
format or concurrency of its own.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath != "" && cliconfig.ConfigExists(configPath) {
			loaded, err := cliconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			cfg = cliconfig.DefaultConfig()
		}

		if v, _ := cmd.Flags().GetInt("internal-capacity"); v > 0 {
			cfg.Tree.InternalCapacity = v
		}
		if v, _ := cmd.Flags().GetInt("leaf-capacity"); v > 0 {
			cfg.Tree.LeafCapacity = v
		}
		if v, _ := cmd.Flags().GetInt("entries"); v > 0 {
			cfg.Bench.Entries = v
		}
		if v, _ := cmd.Flags().GetInt("key-span"); v > 0 {
			cfg.Bench.KeySpan = v
		}
		if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
			cfg.Bench.Seed = v
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (defaults baked in if absent)")
	rootCmd.PersistentFlags().Int("internal-capacity", 0, "internal node branching factor (0 = use config default)")
	rootCmd.PersistentFlags().Int("leaf-capacity", 0, "leaf node capacity (0 = use config default)")
	rootCmd.PersistentFlags().Int("entries", 0, "number of entries to generate (0 = use config default)")
	rootCmd.PersistentFlags().Int("key-span", 0, "upper bound (exclusive) of generated integer keys (0 = use config default)")
	rootCmd.PersistentFlags().Int64("seed", 0, "PRNG seed for generated data (0 = use config default)")
}
