package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkadyvolkov/tui-ascend/internal/dimension"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the dimensions",
	Long:  `Shows the dimensions in ascension order with their controls.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	dims := dimension.List()

	fmt.Println("Dimensions:")
	fmt.Println()

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, d := range dims {
		if len(d.Title) > maxTitleLen {
			maxTitleLen = len(d.Title)
		}
	}

	// Print header
	fmt.Printf("  %-8s  %-*s  %s\n", "ID", maxTitleLen, "Title", "Controls")
	fmt.Printf("  %-8s  %-*s  %s\n", "--", maxTitleLen, "-----", "--------")

	for _, d := range dims {
		fmt.Printf("  %-8s  %-*s  %s\n", d.ID, maxTitleLen, d.Title, d.Controls)
	}

	fmt.Println()
	fmt.Println("Run 'ascend play <id>' to start at a dimension.")
}
