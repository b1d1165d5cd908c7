package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrUnknownGame is returned when no embedded defaults exist for a name.
	ErrUnknownGame = errors.New("no default config")
)

// Extensions lists the file extensions Load looks for, in order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// Load loads the configuration named name (e.g. "chomper") into T.
// The embedded defaults are decoded first and any file found is decoded on
// top, so a file only needs the keys it changes.
// Search order: customPath -> ~/.arcade/configs/<name>.* -> ./configs/<name>.* -> embedded default
func Load[T any](name, customPath string) (T, error) {
	var cfg T

	data := GetDefaultYAML(name)
	if data == nil {
		return cfg, fmt.Errorf("config: %w for %q", ErrUnknownGame, name)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: embedded %s: %w", name, err)
	}

	// Try custom path first
	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range searchPaths(name) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// A broken user file falls through to the next location.
		overlay := cfg
		if err := decodeFile(path, &overlay); err == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// decodeFile decodes path into v, choosing the format by extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("config: %w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

func searchPaths(name string) []string {
	var paths []string
	for _, ext := range Extensions {
		if p := userConfigPath(name + ext); p != "" {
			paths = append(paths, p)
		}
	}
	for _, ext := range Extensions {
		paths = append(paths, filepath.Join("configs", name+ext))
	}
	return paths
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadChomper loads Chomper configuration.
func LoadChomper(customPath string) (ChomperConfig, error) {
	return Load[ChomperConfig]("chomper", customPath)
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return Load[TetrisConfig]("tetris", customPath)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return Load[SnakeConfig]("snake", customPath)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return Load[PongConfig]("pong", customPath)
}
