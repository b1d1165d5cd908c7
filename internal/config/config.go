// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

// ChomperConfig contains all configuration for the Chomper maze game.
type ChomperConfig struct {
	Gameplay ChomperGameplay `yaml:"gameplay" toml:"gameplay"`
	Scoring  ChomperScoring  `yaml:"scoring" toml:"scoring"`
	Timing   ChomperTiming   `yaml:"timing" toml:"timing"`
	Ghosts   ChomperGhosts   `yaml:"ghosts" toml:"ghosts"`
}

// ChomperGameplay defines lives and the maze source.
type ChomperGameplay struct {
	Lives    int    `yaml:"lives" toml:"lives"`
	MazeFile string `yaml:"maze_file,omitempty" toml:"maze_file"` // Empty uses the built-in maze
}

// ChomperScoring defines point values.
type ChomperScoring struct {
	Dot        int `yaml:"dot" toml:"dot"`
	Power      int `yaml:"power" toml:"power"`
	Ghost      int `yaml:"ghost" toml:"ghost"`
	LevelBonus int `yaml:"level_bonus" toml:"level_bonus"` // Multiplied by level
}

// ChomperTiming defines tick and timer durations in milliseconds.
type ChomperTiming struct {
	TickMs      int `yaml:"tick_ms" toml:"tick_ms"`           // Level 1 tick
	MinTickMs   int `yaml:"min_tick_ms" toml:"min_tick_ms"`   // Floor for later levels
	TickStepMs  int `yaml:"tick_step_ms" toml:"tick_step_ms"` // Subtracted per level
	PowerMs     int `yaml:"power_ms" toml:"power_ms"`
	PowerMinMs  int `yaml:"power_min_ms" toml:"power_min_ms"`
	PowerStepMs int `yaml:"power_step_ms" toml:"power_step_ms"`
	DeathMs     int `yaml:"death_ms" toml:"death_ms"` // Frozen pause after losing a life
	FlashMs     int `yaml:"flash_ms" toml:"flash_ms"` // Scared ghosts flash this long before power ends
}

// ChomperGhosts defines ghost behavior parameters.
type ChomperGhosts struct {
	ReleaseStagger int `yaml:"release_stagger" toml:"release_stagger"` // Ticks between initial releases
	ReturnRelease  int `yaml:"return_release" toml:"return_release"`   // Ticks in house after being eaten
	ScaredJitter   int `yaml:"scared_jitter" toml:"scared_jitter"`     // Upper bound of random score added when scared
	LeadFar        int `yaml:"lead_far" toml:"lead_far"`
	LeadNear       int `yaml:"lead_near" toml:"lead_near"`
	ShyRadius      int `yaml:"shy_radius" toml:"shy_radius"`
}

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board" toml:"board"`
	Scoring TetrisScoring `yaml:"scoring" toml:"scoring"`
	Timing  TetrisTiming  `yaml:"timing" toml:"timing"`
}

// TetrisBoard defines the well size.
type TetrisBoard struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// TetrisScoring defines point values.
type TetrisScoring struct {
	Lines         []int `yaml:"lines" toml:"lines"` // Indexed by rows cleared at once, scaled by level
	SoftDrop      int   `yaml:"soft_drop" toml:"soft_drop"`
	HardDrop      int   `yaml:"hard_drop" toml:"hard_drop"`
	LinesPerLevel int   `yaml:"lines_per_level" toml:"lines_per_level"`
}

// TetrisTiming defines the fall interval curve in milliseconds.
type TetrisTiming struct {
	BaseMs int `yaml:"base_ms" toml:"base_ms"`
	StepMs int `yaml:"step_ms" toml:"step_ms"`
	MinMs  int `yaml:"min_ms" toml:"min_ms"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board" toml:"board"`
	Timing SnakeTiming `yaml:"timing" toml:"timing"`
	Food   SnakeFood   `yaml:"food" toml:"food"`
}

// SnakeBoard defines the playfield size.
type SnakeBoard struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// SnakeTiming defines the step interval curve in milliseconds.
type SnakeTiming struct {
	BaseMs     int `yaml:"base_ms" toml:"base_ms"`
	StepMs     int `yaml:"step_ms" toml:"step_ms"`
	MinMs      int `yaml:"min_ms" toml:"min_ms"`
	SpeedEvery int `yaml:"speed_every" toml:"speed_every"` // Points per speed level
}

// SnakeFood defines food scoring.
type SnakeFood struct {
	Points int `yaml:"points" toml:"points"`
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics" toml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles" toml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay" toml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu" toml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PongPhysics defines ball and paddle speeds in cells per frame.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed" toml:"max_ball_speed"` // Multiple of BallSpeed
	SpinFactor   float64 `yaml:"spin_factor" toml:"spin_factor"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height" toml:"height"`
	Width  int `yaml:"width" toml:"width"`
	Offset int `yaml:"offset" toml:"offset"` // Distance from edge
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score" toml:"win_score"`
	ServeDelay int `yaml:"serve_delay" toml:"serve_delay"` // Frames before serving
}

// PongCPU defines CPU opponent skill bounds (0-1).
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill" toml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill" toml:"max_skill"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
