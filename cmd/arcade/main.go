// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--audio              - Play sound cues on the local audio device
//	--log-level <level>  - debug, info, warn, error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"

	_ "github.com/vovakirdan/neon-arcade/internal/games/chomper"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pong"
	_ "github.com/vovakirdan/neon-arcade/internal/games/snake"
	_ "github.com/vovakirdan/neon-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagAudio      bool
	flagLogLevel   string
	flagLogFile    string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Chomper, Tetris, Snake and Pong in the terminal",
	Long: `Neon Arcade plays Chomper, Tetris, Snake and Pong in the terminal,
locally or for anyone who connects over SSH. Scores are kept in SQLite.

  arcade menu
  arcade play tetris --difficulty hard
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagAudio, "audio", false, "Play sound cues on the local audio device")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger builds the process logger from the log flags.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logSink = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Preset = flagDifficulty
	return cfg
}

// gameEnv builds the capabilities handed to local games. The returned
// closer releases the audio device.
func gameEnv(configFile string) (registry.Env, func()) {
	env := registry.Env{Logger: logger, ConfigFile: configFile}
	if !flagAudio {
		return env, func() {}
	}

	synth, err := audio.NewSynth(logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return env, func() {}
	}
	env.Sink = synth
	return env, synth.Close
}

// openStore opens the scores database. Games still run without one, so a
// failure is logged and a nil store returned.
func openStore() (*storage.Store, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be kept", "db", flagDBPath, "err", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
