// bits is World of Bits for the terminal: walk a grid laid over the real
// world, pick up numbered tokens and merge equal ones until you make 2048.
//
// Usage:
//
//	bits play                - Play in this terminal
//	bits serve               - Start SSH server, one world per user
//	bits wins                - Show recorded wins
//	bits map                 - Preview the tokens around the origin
//	bits reset               - Delete a saved world
//	bits variants            - List rule variants
//
// Global flags:
//
//	--db <path>        - Set database path (default: ~/.worldofbits/bits.db, env BITS_DB)
//	--config <path>    - Game config YAML (env BITS_CONFIG)
//	--variant <name>   - Rule variant overriding the config rules (env BITS_VARIANT)
//	--log <path>       - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDBPath = "~/.worldofbits/bits.db"

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagVariant string
	flagLogPath string
)

func main() {
	// Load .env file for local setups; env vars may also be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("could not load .env", "error", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bits",
	Short: "World of Bits - merge your way to 2048 across the map",
	Long: `World of Bits lays a grid of cells over the world. Some cells hold a
numbered token. Walk around, pick a token up and put it on a token of the
same value to merge them. Make a 2048 to win.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  wins      - View recorded wins
  map       - Preview the tokens around the origin
  reset     - Delete a saved world
  variants  - List rule variants

Examples:
  bits play
  bits play --variant cozy --slot weekend
  bits serve --ssh :2222
  bits map --radius 8`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		envDefault(cmd, "db", "BITS_DB", &flagDBPath)
		envDefault(cmd, "config", "BITS_CONFIG", &flagConfig)
		envDefault(cmd, "variant", "BITS_VARIANT", &flagVariant)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Rule variant, overrides the config rules (see 'bits variants')")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(winsCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(variantsCmd)
}

// envDefault fills a flag from the environment unless it was given explicitly.
func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
