package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/worldofbits/internal/platform/tui"
	"github.com/vovakirdan/worldofbits/internal/storage"
)

var (
	flagPlain    bool
	flagWinsSlot string
)

var winsCmd = &cobra.Command{
	Use:   "wins",
	Short: "Show recorded wins",
	Long: `Display the most recent wins from all players.

With --slot, prints how often that slot has won and its best game instead.

Examples:
  bits wins
  bits wins --plain
  bits wins --slot local
  bits wins --slot ssh:alice`,
	Args: cobra.NoArgs,
	RunE: runWins,
}

func init() {
	winsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive board")
	winsCmd.Flags().StringVar(&flagWinsSlot, "slot", "", "Show stats for one save slot")
}

func runWins(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening saves database: %w", err)
	}
	defer store.Close()

	switch {
	case flagWinsSlot != "":
		return printSlotStats(store, flagWinsSlot)
	case flagPlain:
		return printWins(store)
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunWinsBoard(store, width, height); err != nil {
			return fmt.Errorf("running wins board: %w", err)
		}
		return nil
	}
}

func printWins(store *storage.Store) error {
	wins, err := store.RecentWins(20)
	if err != nil {
		return fmt.Errorf("retrieving wins: %w", err)
	}

	fmt.Println("Recent wins")
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bits play' and make the first 2048!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "#", "Player", "Moves", "Left", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "-", "------", "-----", "----", "----")

	for _, row := range tui.WinRows(wins) {
		fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}
	return nil
}

func printSlotStats(store *storage.Store, slot string) error {
	count, err := store.WinCount(slot)
	if err != nil {
		return fmt.Errorf("counting wins: %w", err)
	}
	best, err := store.BestWin(slot)
	if err != nil {
		return fmt.Errorf("retrieving best win: %w", err)
	}

	fmt.Printf("Slot %s: %d win(s)\n", slot, count)
	if best != nil {
		fmt.Printf("Best: %d moves on %s (%s)\n", best.Moves, best.CreatedAt.Format("2006-01-02 15:04"), best.WinID)
	}
	return nil
}
