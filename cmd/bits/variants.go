package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldofbits/internal/game"
	"github.com/vovakirdan/worldofbits/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List rule variants",
	Long:  `Shows the rule variants that --variant accepts.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Println("Rule variants:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, v := range variants {
		maxNameLen = max(maxNameLen, len(v.Name))
	}

	fmt.Printf("  %-*s  %-5s  %-9s  %-6s  %s\n", maxNameLen, "Name", "Reach", "Boundary", "Values", "Description")
	fmt.Printf("  %-*s  %-5s  %-9s  %-6s  %s\n", maxNameLen, "----", "-----", "--------", "------", "-----------")

	for _, v := range variants {
		name := v.Name
		if name == game.DefaultVariant {
			name += "*"
		}
		fmt.Printf("  %-*s  %-5d  %-9s  %-6s  %s\n", maxNameLen, name, v.NeighborhoodRadius, v.Boundary(),
			fmt.Sprintf("2-%d", 1<<v.ValueExponentRange), v.Title)
	}

	fmt.Println()
	fmt.Println("* same rules as the built-in config. Without --variant the config file rules apply.")
	fmt.Println("Run 'bits play --variant <name>' to use one.")
}
