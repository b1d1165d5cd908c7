package config

import "github.com/vovakirdan/neon-arcade/internal/core"

// Progression types.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// DifficultyManager maps score or elapsed ticks to a difficulty level in
// [0, 1]. The level starts at the initial level and reaches 1 at MaxAt.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.floor = core.ClampF(level, 0, 1)
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// progress is the fraction of the way to MaxAt, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	var at int
	switch d.cfg.Progression.Type {
	case ProgressByScore:
		at = score
	case ProgressByTime:
		at = ticks
	default:
		return 0
	}
	return core.ClampF(float64(at)/float64(max(d.cfg.Progression.MaxAt, 1)), 0, 1)
}

// Level returns the difficulty level for the given score and tick count.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}
	return d.floor + d.progress(score, ticks)*(1-d.floor)
}

// Speed scales base by up to 1+SpeedMultiplier as the level rises.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
