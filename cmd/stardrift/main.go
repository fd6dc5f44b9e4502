// stardrift is a terminal asteroids game, playable locally or served
// over SSH.
//
// Usage:
//
//	stardrift play            - Play in the current terminal
//	stardrift serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagSeed int64

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Asteroids in your terminal",
	Long: `Stardrift is a terminal rendition of the classic asteroids game:
steer a ship across a wrapping field, shoot asteroids apart, and survive
as the waves grow.

Controls:
  Left/Right or A/D  - Rotate
  Up or W            - Thrust
  Space              - Fire
  Enter              - Restart after game over
  Q/Ctrl+C           - Quit

Examples:
  stardrift play
  stardrift play --seed 42
  stardrift serve --config server.yaml`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
