// ascend is a terminal rhythm game about climbing through dimensions.
//
// Usage:
//
//	ascend list              - List the dimensions
//	ascend play [dimension]  - Start a run (default: dimension 0)
//	ascend menu              - Interactive dimension picker
//	ascend serve             - Start SSH server for remote play
//	ascend scores            - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.ascend/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ascend",
	Short: "Ascend - climb through dimensions in your terminal",
	Long: `Ascend is a terminal rhythm game. A run starts as a dimensionless
point and climbs through line, plane, space, fold and nebula by matching
colors, shapes and rotations. A drop sends you back to the point.

Available commands:
  list     - Show the dimensions and their controls
  play     - Start a run at a specific dimension
  menu     - Interactive dimension picker
  serve    - Start SSH server for remote play
  scores   - View the run history

Examples:
  ascend list
  ascend play
  ascend play 2
  ascend menu
  ascend serve --ssh :2222
  ascend scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ascend/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
