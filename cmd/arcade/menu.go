package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu until you quit",
	Long: `Opens the game picker. Esc leaves a finished or paused game and comes
back here; Tab shows the high scores.

  up/down, j/k   move
  enter, space   play
  tab            high scores
  q              quit`,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, closeStore := openStore()
		defer closeStore()

		env, closeAudio := gameEnv("")
		defer closeAudio()

		// A pinned --seed is reused for every game; otherwise each draws its own.
		return tui.RunSession(store, runtimeConfig(), env)
	},
}
