package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML maze file.
func ParseYAML(data []byte) (Maze, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.toMaze(), nil
}
