package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkarpenko/tui-slide/internal/config"
	"github.com/vkarpenko/tui-slide/internal/platform/tui"
	"github.com/vkarpenko/tui-slide/internal/puzzle"
	"github.com/vkarpenko/tui-slide/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
	flagTPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle in the local terminal. The board begins solved;
slide tiles into the empty corner with the arrow keys.

Controls:
  Arrows/hjkl/wasd - Slide the neighboring tile into the empty cell
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Examples:
  slide play
  slide play --width 4 --height 4
  slide play --tps 100
  slide play --config ./my-slide.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in tiles (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in tiles (overrides config)")
	playCmd.Flags().IntVar(&flagTPS, "tps", 0, "Animation ticks per second (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flag overrides
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagTPS > 0 {
		cfg.Timing.TickRate = flagTPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	game, err := puzzle.New(cfg.Board.Width, cfg.Board.Height, cfg.Tiles.Size, cfg.Tiles.Spacing)
	if err != nil {
		return err
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg.Timing.TickRate, width, height)

	if store != nil {
		store.Close()
	}

	return runErr
}
