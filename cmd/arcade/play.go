package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play one game",
	Long: `Runs a single game until you quit.

  arrows, wasd   move, steer, shift
  x, z           rotate (tetris)
  space          hard drop (tetris), start
  enter          start, next level
  p              pause
  r              restart after game over
  esc, b         leave when paused or over
  q, ctrl+c      quit

--difficulty picks a preset: easy, normal, hard, or fixed (no progression).
--config loads tuning overrides from a YAML or TOML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("config", "", "game config file (YAML or TOML)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]
	configFile, _ := cmd.Flags().GetString("config")

	env, closeAudio := gameEnv(configFile)
	defer closeAudio()

	game, err := registry.Create(id, env)
	switch {
	case errors.Is(err, registry.ErrUnknownGame):
		return fmt.Errorf("no game called %q; see 'arcade list'", id)
	case err != nil:
		return err
	}

	store, closeStore := openStore()
	defer closeStore()

	if err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("play %s: %w", id, err)
	}
	return nil
}
