package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/worldofbits/internal/game"
	"github.com/vovakirdan/worldofbits/internal/world"
)

var flagRadius int

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Preview the tokens around the origin",
	Long: `Print the tokens a fresh world holds around the starting cell.

Token placement depends only on the cell coordinates, so the preview is the
same on every machine for the same rules. The starting cell is bracketed.

Examples:
  bits map
  bits map --radius 12
  bits map --variant generous`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagRadius, "radius", 5, "Cells to show in every direction")
}

func runMap(_ *cobra.Command, _ []string) error {
	cfg, variant, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagRadius < 0 {
		return errors.New("radius must not be negative")
	}

	radius := flagRadius
	// Shrink to fit the terminal
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		colWidth := len(strconv.Itoa(1<<cfg.Rules.ValueExponentRange)) + 3
		radius = min(radius, max((w/colWidth-1)/2, 0))
	}

	if variant == "" {
		variant = "from config"
	}
	fmt.Printf("Rules %s, spawn probability %.2f, reach %d\n\n",
		variant, cfg.Rules.SpawnProbability, cfg.Rules.NeighborhoodRadius)
	fmt.Print(game.Preview(cfg.Rules, world.Cell{}, radius))
	return nil
}
