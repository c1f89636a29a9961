package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkarpenko/tui-slide/internal/platform/tui"
	"github.com/vkarpenko/tui-slide/internal/storage"
)

var flagClear bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded play sessions",
	Long: `Display recent play sessions with board size, move count, and duration.

Examples:
  slide stats
  slide stats --clear   # Delete all recorded sessions`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions deleted.")
		return
	}

	height := 24
	if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		height = h
	}

	if err := tui.RunStats(store, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}
