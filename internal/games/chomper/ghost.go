package chomper

import (
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Mode is a ghost's behavior state. A ghost is in exactly one mode.
type Mode int

const (
	ModeInHouse Mode = iota // Waiting for its release timer
	ModeNormal              // Chasing with its targeting policy
	ModeScared              // Fleeing during power mode; can be eaten
	ModeEaten               // Eyes returning to the house
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeInHouse:
		return "in_house"
	case ModeNormal:
		return "normal"
	case ModeScared:
		return "scared"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Chase is what a targeting policy sees of the world.
type Chase struct {
	Player  core.Point
	Heading core.Dir
	Cols    int
	Rows    int
}

// TargetingPolicy picks the cell a normal ghost steers towards.
type TargetingPolicy interface {
	Target(self core.Point, c Chase) core.Point
}

// Direct chases the player's current cell.
type Direct struct{}

// Target implements TargetingPolicy.
func (Direct) Target(_ core.Point, c Chase) core.Point {
	return c.Player
}

// LeadBy aims N cells ahead of the player along its heading.
type LeadBy struct {
	N int
}

// Target implements TargetingPolicy.
func (l LeadBy) Target(_ core.Point, c Chase) core.Point {
	return core.Point{
		X: c.Player.X + c.Heading.X*l.N,
		Y: c.Player.Y + c.Heading.Y*l.N,
	}
}

// Shy chases the player while farther than Radius and retreats to Corner
// once it gets close.
type Shy struct {
	Radius int
	Corner core.Point
}

// Target implements TargetingPolicy.
func (s Shy) Target(self core.Point, c Chase) core.Point {
	if self.Manhattan(c.Player) > s.Radius {
		return c.Player
	}
	return s.Corner
}

// Ghost is one chaser.
type Ghost struct {
	Name    string
	Color   core.Color
	Pos     core.Point
	Dir     core.Dir
	Mode    Mode
	Release int // Ticks left in the house
	Policy  TargetingPolicy
}

// Active reports whether the ghost is loose in the maze and can touch the player.
func (g *Ghost) Active() bool {
	return g.Mode == ModeNormal || g.Mode == ModeScared
}

// Scared reports whether the ghost is vulnerable while power mode is in the
// given state. Ghosts waiting in the house count as scared during power mode
// and come out fleeing.
func (g *Ghost) Scared(power bool) bool {
	return g.Mode == ModeScared || (power && g.Mode == ModeInHouse)
}

// fleeTarget mirrors the player's position through the ghost.
func fleeTarget(self, player core.Point) core.Point {
	return core.Point{
		X: self.X + (self.X - player.X),
		Y: self.Y + (self.Y - player.Y),
	}
}

// chooseDir picks the next direction for a loose ghost. Reversing is only
// allowed at a dead end. Among several options the one whose next cell is
// closest to target wins, with jitter added to each score when noisy;
// ties keep the earliest of up, down, left, right.
func chooseDir(g *Ghost, m *Maze, target core.Point, jitter func() float64) core.Dir {
	back := g.Dir.Reverse()

	var options []core.Dir
	for _, d := range core.Cardinals {
		if !g.Dir.IsZero() && d == back {
			continue
		}
		if !m.CanEnter(g.Pos.Add(d)) {
			continue
		}
		options = append(options, d)
	}

	switch len(options) {
	case 0:
		return back
	case 1:
		return options[0]
	}

	best := options[0]
	bestScore := 0.0
	for i, d := range options {
		score := float64(g.Pos.Add(d).Manhattan(target))
		if jitter != nil {
			score += jitter()
		}
		if i == 0 || score < bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// stepToward moves one cell along each axis towards dst, ignoring walls.
func stepToward(p, dst core.Point) core.Point {
	switch {
	case p.X < dst.X:
		p.X++
	case p.X > dst.X:
		p.X--
	}
	switch {
	case p.Y < dst.Y:
		p.Y++
	case p.Y > dst.Y:
		p.Y--
	}
	return p
}
