package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkarpenko/tui-slide/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default configuration to stdout. Save it to
~/.tui-slide/config.yaml (or pass it via --config) and edit to taste.

Example:
  slide config > ~/.tui-slide/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
