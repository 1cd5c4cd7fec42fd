package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/worldofbits/internal/storage"
)

var (
	flagResetSlot string
	flagList      bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a saved world",
	Long: `Delete the saved world of a slot so the next game starts fresh.
Recorded wins are kept.

Examples:
  bits reset
  bits reset --slot weekend
  bits reset --list`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetSlot, "slot", "local", "Save slot to delete")
	resetCmd.Flags().BoolVar(&flagList, "list", false, "List saved slots instead of deleting")
}

func runReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening saves database: %w", err)
	}
	defer store.Close()

	if flagList {
		slots, err := store.Slots()
		if err != nil {
			return fmt.Errorf("listing slots: %w", err)
		}
		if len(slots) == 0 {
			fmt.Println("No saved worlds.")
			return nil
		}
		for _, s := range slots {
			fmt.Printf("  %-24s  %s\n", s.Slot, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	deleted, err := store.DeleteSnapshot(flagResetSlot)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("Slot %q has no saved world.\n", flagResetSlot)
		return nil
	}
	fmt.Printf("Deleted the world in slot %q.\n", flagResetSlot)
	return nil
}
