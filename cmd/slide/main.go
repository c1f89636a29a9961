// slide is a sliding-tile puzzle (the 15-puzzle, generalized to any board
// size) played in the terminal.
//
// Usage:
//
//	slide play               - Play in the local terminal
//	slide serve              - Start SSH server for remote play
//	slide stats              - Show recorded play sessions
//	slide config             - Print the default configuration YAML
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.tui-slide/sessions.db)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Sliding-tile puzzle in your terminal",
	Long: `slide is a terminal sliding-tile puzzle: an N-wide by M-tall
generalization of the classic 15-puzzle.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  stats    - View recorded play sessions
  config   - Print the default configuration YAML

Examples:
  slide play
  slide play --width 4 --height 4
  slide serve --ssh :2222
  slide stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-slide/sessions.db", "Path to session stats database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
