package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML maze file.
func ParseTOML(data []byte) (Maze, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return Maze{}, fmt.Errorf("toml decode: %w", err)
	}
	return f.toMaze(), nil
}
