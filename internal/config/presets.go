package config

// ApplyChomperPreset modifies the config based on a difficulty preset.
func ApplyChomperPreset(cfg *ChomperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.TickMs = 180
		cfg.Timing.PowerMs += 2000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.TickMs = 120
		cfg.Timing.PowerMs -= 2000
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseMs = 1200
	case DifficultyHard:
		cfg.Timing.BaseMs = 700
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseMs = 200
	case DifficultyHard:
		cfg.Timing.BaseMs = 100
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
