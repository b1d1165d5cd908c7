package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/chomper/levels/formats"
)

func testdata(parts ...string) string {
	return filepath.Join(append([]string{"testdata", "mazes"}, parts...)...)
}

func TestLoadFileYAML(t *testing.T) {
	lvl, err := LoadFile(testdata("classic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "classic", lvl.ID)
	assert.Equal(t, 21, lvl.Width)
	assert.Equal(t, 22, lvl.Height)
	assert.Equal(t, core.Point{X: 10, Y: 16}, lvl.Player)
	assert.Equal(t, core.Point{X: 10, Y: 8}, lvl.GhostSpawn)
	assert.Len(t, lvl.GhostStarts, GhostCount)
	assert.Equal(t, CodePower, lvl.Codes[2][1])
	assert.Equal(t, CodeHouse, lvl.Codes[10][10])
	assert.Equal(t, CodeEmpty, lvl.Codes[10][0])
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	y, err := LoadFile(testdata("classic.yaml"))
	require.NoError(t, err)
	tm, err := LoadFile(testdata("classic.toml"))
	require.NoError(t, err)

	assert.Equal(t, y.Codes, tm.Codes)
	assert.Equal(t, y.Player, tm.Player)
	assert.Equal(t, y.GhostStarts, tm.GhostStarts)
	assert.Equal(t, y.Home, tm.Home)
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	lvls, err := NewLoader(testdata()).LoadAll()
	require.NoError(t, err)

	require.Len(t, lvls, 2)
	assert.Equal(t, "classic", lvls[0].ID)
	assert.Equal(t, "classic-toml", lvls[1].ID)
}

func TestLoaderLoadByID(t *testing.T) {
	l := NewLoader(testdata())

	lvl, err := l.LoadByID("classic-toml")
	require.NoError(t, err)
	assert.Equal(t, "Classic (TOML)", lvl.Name)

	_, err = l.LoadByID("nope")
	assert.Error(t, err)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(testdata("broken.yaml"))
	assert.ErrorIs(t, err, ErrInvalidMaze)

	path := filepath.Join(t.TempDir(), "maze.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(testdata("missing.yaml"))
	assert.Error(t, err)
}

func TestBuildValidation(t *testing.T) {
	ghosts := []core.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	valid := formats.Maze{
		Rows:        []string{"###", "#.#", "###"},
		Player:      core.Point{X: 1, Y: 1},
		GhostSpawn:  core.Point{X: 1, Y: 1},
		Home:        core.Point{X: 1, Y: 1},
		GhostStarts: ghosts,
	}
	_, err := Build(valid)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(m *formats.Maze)
	}{
		{"empty", func(m *formats.Maze) { m.Rows = nil }},
		{"ragged", func(m *formats.Maze) { m.Rows = []string{"###", "#.", "###"} }},
		{"glyph", func(m *formats.Maze) { m.Rows = []string{"###", "#?#", "###"} }},
		{"no dots", func(m *formats.Maze) { m.Rows = []string{"###", "# #", "###"} }},
		{"ghosts", func(m *formats.Maze) { m.GhostStarts = ghosts[:2] }},
		{"player in wall", func(m *formats.Maze) { m.Player = core.Point{X: 0, Y: 0} }},
		{"home outside", func(m *formats.Maze) { m.Home = core.Point{X: 5, Y: 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			m.Rows = append([]string(nil), valid.Rows...)
			tt.mutate(&m)
			_, err := Build(m)
			assert.ErrorIs(t, err, ErrInvalidMaze)
		})
	}
}
