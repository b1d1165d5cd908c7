package config

import (
	_ "embed"
)

//go:embed defaults/chomper.yaml
var defaultChomperYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultChomperConfig returns the default Chomper configuration.
func DefaultChomperConfig() ChomperConfig {
	return ChomperConfig{
		Gameplay: ChomperGameplay{
			Lives: 3,
		},
		Scoring: ChomperScoring{
			Dot:        10,
			Power:      50,
			Ghost:      200,
			LevelBonus: 500,
		},
		Timing: ChomperTiming{
			TickMs:      150,
			MinTickMs:   80,
			TickStepMs:  10,
			PowerMs:     8000,
			PowerMinMs:  3000,
			PowerStepMs: 500,
			DeathMs:     1500,
			FlashMs:     2000,
		},
		Ghosts: ChomperGhosts{
			ReleaseStagger: 50,
			ReturnRelease:  20,
			ScaredJitter:   10,
			LeadFar:        4,
			LeadNear:       2,
			ShyRadius:      8,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Scoring: TetrisScoring{
			Lines:         []int{0, 100, 300, 500, 800},
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		Timing: TetrisTiming{
			BaseMs: 1000,
			StepMs: 100,
			MinMs:  100,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Timing: SnakeTiming{
			BaseMs:     150,
			StepMs:     15,
			MinMs:      50,
			SpeedEvery: 50,
		},
		Food: SnakeFood{
			Points: 10,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  1.0,
			MaxBallSpeed: 3.0,
			SpinFactor:   0.3,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 60,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chomper":
		return defaultChomperYAML
	case "tetris":
		return defaultTetrisYAML
	case "snake":
		return defaultSnakeYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
