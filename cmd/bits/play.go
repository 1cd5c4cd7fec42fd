package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/worldofbits/internal/core"
	"github.com/vovakirdan/worldofbits/internal/game"
	"github.com/vovakirdan/worldofbits/internal/platform/tui"
	"github.com/vovakirdan/worldofbits/internal/storage"
	"github.com/vovakirdan/worldofbits/internal/world"
)

var (
	flagSlot string
	flagAt   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play World of Bits",
	Long: `Play in this terminal. Your world is saved after every move and
restored the next time you play the same slot.

Controls:
  Arrows/WASD  - Walk one cell (move the cursor while aiming)
  Tab          - Toggle aiming at another cell in reach
  Space/Enter  - Pick up, place or merge
  R            - New world (press twice unless you have won)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  bits play
  bits play --slot weekend
  bits play --variant generous
  bits play --at 51.5007,-0.1246`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSlot, "slot", "local", "Save slot")
	playCmd.Flags().StringVar(&flagAt, "at", "", "Start at a position, as lat,lng")
}

// parseLatLng parses "lat,lng".
func parseLatLng(s string) (world.LatLng, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return world.LatLng{}, fmt.Errorf("position %q is not lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return world.LatLng{}, fmt.Errorf("bad latitude %q: %w", latStr, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return world.LatLng{}, fmt.Errorf("bad longitude %q: %w", lngStr, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return world.LatLng{}, fmt.Errorf("position %q is off the globe", s)
	}
	return world.LatLng{Lat: lat, Lng: lng}, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, variant, err := loadGameConfig()
	if err != nil {
		return err
	}

	opts := game.Options{
		Config:  cfg,
		Variant: variant,
		Slot:    flagSlot,
	}
	if flagAt != "" {
		pos, err := parseLatLng(flagAt)
		if err != nil {
			return err
		}
		opts.StartAt = &pos
	}

	logger, closeLog := openLogger()
	defer closeLog()
	opts.Logger = logger

	stopTelemetry := startTelemetry(logger)
	defer stopTelemetry()

	// Open save storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without storage - the world just won't be saved
	} else {
		defer store.Close()
		opts.Persister = store
		opts.Wins = store
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	g := game.New(opts)
	logger.Info("playing", "slot", flagSlot, "variant", variant)

	runErr := tui.Run(g, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
	})

	// Flush the last save before the store closes
	g.Close()

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
