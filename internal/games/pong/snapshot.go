package pong

// Snapshot contains the state of a match, quantised to integers so two
// runs can be compared exactly.
type Snapshot struct {
	Tick     int
	BallX    int
	BallY    int
	BallVX   int // Velocity scaled by 1000
	BallVY   int // Velocity scaled by 1000
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	GameOver bool
	Winner   Side
	Serving  bool
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	c := g.court
	return Snapshot{
		Tick:     c.ticks,
		BallX:    int(c.ball.X),
		BallY:    int(c.ball.Y),
		BallVX:   int(c.ball.VX * 1000),
		BallVY:   int(c.ball.VY * 1000),
		Paddle1Y: int(c.paddles[SidePlayer]),
		Paddle2Y: int(c.paddles[SideCPU]),
		Score1:   c.scores[SidePlayer],
		Score2:   c.scores[SideCPU],
		GameOver: c.over,
		Winner:   c.winner,
		Serving:  c.serving > 0,
	}
}
