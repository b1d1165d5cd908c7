package snake

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const tick = 150 * time.Millisecond

func newTestGame(t *testing.T, seed int64) (*Game, *audio.Recorder) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	rec := &audio.Recorder{}
	g := New(registry.Env{Sink: rec})
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	g.HandleInput(core.ActionConfirm)
	if g.State().Run != core.RunRunning {
		t.Fatalf("Expected running after confirm, got %v", g.State().Run)
	}
	return g, rec
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, 12345)
		for i := 0; i < 100; i++ {
			in := core.InputFrame{}
			switch i {
			case 20:
				in = press(core.ActionDown)
			case 40:
				in = press(core.ActionLeft)
			case 60:
				in = press(core.ActionUp)
			}
			g.Step(in, 50*time.Millisecond)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
}

func TestStartLayout(t *testing.T) {
	g, rec := newTestGame(t, 1)
	w := g.world

	want := []core.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
	for i, p := range want {
		if w.body[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, w.body[i])
		}
	}
	if w.dir != core.DirRight {
		t.Errorf("Expected initial direction right, got %v", w.dir)
	}
	if g.loop.Clock().Interval() != tick {
		t.Errorf("Expected %v interval, got %v", tick, g.loop.Clock().Interval())
	}
	if rec.Count(audio.EventStart) != 1 {
		t.Error("Expected a start cue")
	}
}

func TestStepRunsWholeTicks(t *testing.T) {
	g, _ := newTestGame(t, 1)

	if res := g.Step(core.InputFrame{}, 100*time.Millisecond); res.Ticks != 0 {
		t.Errorf("Expected no move after 100ms, got %d", res.Ticks)
	}
	if res := g.Step(core.InputFrame{}, 50*time.Millisecond); res.Ticks != 1 {
		t.Errorf("Expected one move after 150ms, got %d", res.Ticks)
	}
	if head := g.world.body[0]; head != (core.Point{X: 6, Y: 10}) {
		t.Errorf("Expected head at (6,10), got %v", head)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g, _ := newTestGame(t, 42)
	w := g.world

	g.HandleInput(core.ActionLeft)
	if w.next != core.DirRight {
		t.Errorf("Reversal accepted: next is %v", w.next)
	}

	g.HandleInput(core.ActionDown)
	if w.next != core.DirDown {
		t.Errorf("Expected next down, got %v", w.next)
	}

	// Still heading right until the move, so left stays a reversal.
	g.HandleInput(core.ActionLeft)
	if w.next != core.DirDown {
		t.Errorf("Reversal accepted after queued turn: next is %v", w.next)
	}

	g.Step(core.InputFrame{}, tick)
	if w.dir != core.DirDown {
		t.Fatalf("Expected heading down, got %v", w.dir)
	}
	g.HandleInput(core.ActionUp)
	if w.next != core.DirDown {
		t.Errorf("Reversal accepted while heading down: next is %v", w.next)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g, _ := newTestGame(t, 999)
	w := g.world

	for i := 0; i < 100; i++ {
		if !w.spawnFood() {
			t.Fatal("Board unexpectedly full")
		}
		if w.occupied(w.food) {
			t.Errorf("Food spawned on snake at %v", w.food)
		}
		if !w.inBounds(w.food) {
			t.Errorf("Food spawned out of bounds at %v", w.food)
		}
	}
}

func TestWallCollision(t *testing.T) {
	g, rec := newTestGame(t, 789)
	w := g.world

	w.body = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	w.dir = core.DirLeft
	w.next = core.DirLeft

	g.Step(core.InputFrame{}, tick)

	if !g.State().GameOver {
		t.Error("Game should be over after hitting the wall")
	}
	if rec.Count(audio.EventGameOver) != 1 {
		t.Error("Expected a game over cue")
	}
	if res := g.Step(core.InputFrame{}, time.Second); res.Ticks != 0 {
		t.Errorf("Expected no ticks after game over, got %d", res.Ticks)
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
	}{
		{"body", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}},
		{"tail", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 111)
			w := g.world
			w.body = tt.body
			w.dir = core.DirUp
			w.next = core.DirRight
			w.food = core.Point{X: 0, Y: 0}

			stepWorld(w, core.InputFrame{})

			if !w.over {
				t.Error("Game should be over after self collision")
			}
		})
	}
}

func TestSnakeGrowth(t *testing.T) {
	g, rec := newTestGame(t, 222)
	w := g.world

	initialLen := len(w.body)
	w.food = w.body[0].Add(core.DirRight)

	stepWorld(w, core.InputFrame{})

	if len(w.body) != initialLen+1 {
		t.Errorf("Snake should grow by 1 after eating, got %d vs %d", len(w.body), initialLen+1)
	}
	if w.score != 10 {
		t.Errorf("Score should be 10 after eating, got %d", w.score)
	}
	if rec.Count(audio.EventEat) != 1 {
		t.Error("Expected an eat cue")
	}
	if w.occupied(w.food) {
		t.Error("New food spawned on the snake")
	}
}

func TestSpeedUpEveryFiftyPoints(t *testing.T) {
	g, rec := newTestGame(t, 333)
	w := g.world

	w.score = 40
	w.food = w.body[0].Add(core.DirRight)
	stepWorld(w, core.InputFrame{})

	if w.speed != 2 {
		t.Fatalf("Expected speed 2 at 50 points, got %d", w.speed)
	}
	if got := g.loop.Clock().Interval(); got != 135*time.Millisecond {
		t.Errorf("Expected 135ms interval, got %v", got)
	}
	if rec.Count(audio.EventLevelUp) != 1 {
		t.Error("Expected a level up cue")
	}
}

func TestIntervalCurve(t *testing.T) {
	g, _ := newTestGame(t, 1)
	tests := []struct {
		speed int
		want  time.Duration
	}{
		{1, 150 * time.Millisecond},
		{2, 135 * time.Millisecond},
		{7, 60 * time.Millisecond},
		{8, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		g.world.speed = tt.speed
		if got := g.world.interval(); got != tt.want {
			t.Errorf("Speed %d: expected %v, got %v", tt.speed, tt.want, got)
		}
	}
}

func TestWinWhenBoardFills(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 8
	cfg.Board.Height = 8
	rec := &audio.Recorder{}
	w := newWorld(cfg, 1, rec, log.New(io.Discard))

	w.body = []core.Point{{X: 6, Y: 7}}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := core.Point{X: x, Y: y}
			if p != (core.Point{X: 7, Y: 7}) && p != (core.Point{X: 6, Y: 7}) {
				w.body = append(w.body, p)
			}
		}
	}
	w.food = core.Point{X: 7, Y: 7}

	stepWorld(w, core.InputFrame{})

	if !w.won || !w.over {
		t.Errorf("Expected a win when the body fills the board, won=%v over=%v", w.won, w.over)
	}
	if rec.Count(audio.EventWin) != 1 {
		t.Error("Expected a win cue")
	}
}

func TestPauseStopsMoves(t *testing.T) {
	g, _ := newTestGame(t, 1)

	g.HandleInput(core.ActionPause)
	if res := g.Step(press(core.ActionDown), time.Second); res.Ticks != 0 {
		t.Errorf("Expected no ticks while paused, got %d", res.Ticks)
	}
	if g.world.next != core.DirRight {
		t.Error("Turn accepted while paused")
	}

	g.HandleInput(core.ActionPause)
	if g.Snapshot().Phase != PhasePlaying {
		t.Errorf("Expected playing after resume, got %s", g.Snapshot().Phase)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, 5)
	g.world.body[0] = core.Point{X: 19, Y: 10}
	g.Step(core.InputFrame{}, tick)
	if g.Snapshot().Phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Snapshot().Phase)
	}

	g.Step(press(core.ActionRestart), 0)

	snap := g.Snapshot()
	if snap.Phase != PhasePlaying || snap.Score != 0 || snap.Length != 3 {
		t.Errorf("Expected a fresh run, got %+v", snap)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g, _ := newTestGame(t, 333)

	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected a resize prompt")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if !strings.Contains(screen.String(), "●") {
		t.Error("Food should be drawn")
	}
	if !strings.Contains(screen.String(), "██") {
		t.Error("Head should be drawn")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("snake") {
		t.Fatal("snake not registered")
	}
	g, err := registry.Create("snake", registry.Env{})
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("Unexpected identity %q / %q", g.ID(), g.Title())
	}
}
