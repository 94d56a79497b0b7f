package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/types"
)

func snakeAt(points ...types.Point) *entity.Snake {
	s := entity.NewSnake(types.RIGHT)
	for _, p := range points {
		s.Grow(p)
	}
	return s
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := snakeAt(types.Point{X: 7, Y: 5}, types.Point{X: 8, Y: 5}, types.Point{X: 9, Y: 5})

	tests := []struct {
		pos  types.Point
		want CollisionType
	}{
		{types.Point{X: 10, Y: 5}, WallCollision},
		{types.Point{X: -1, Y: 0}, WallCollision},
		{types.Point{X: 0, Y: 10}, WallCollision},
		{types.Point{X: 8, Y: 5}, SelfCollision},
		{types.Point{X: 7, Y: 5}, SelfCollision},
		{types.Point{X: 9, Y: 4}, NoCollision},
		{types.Point{X: 0, Y: 0}, NoCollision},
	}
	for _, tt := range tests {
		if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
			t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestOutOfBoundsFromHead(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	snake := snakeAt(types.Point{X: 9, Y: 5})
	next := snake.NextMove()
	if next != (types.Point{X: 10, Y: 5}) {
		t.Fatalf("next move = %v", next)
	}
	if got := NewCollisionManager(grid).CheckCollision(next, snake); got != WallCollision {
		t.Errorf("got %v, want wall collision", got)
	}
}

func TestGenerateAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	cm := NewCollisionManager(grid)
	tm := NewTreasureManager(grid, rand.New(rand.NewSource(42)), cm)
	snake := snakeAt(
		types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 2, Y: 0},
		types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1},
	)
	for i := 0; i < 50; i++ {
		p, ok := tm.Generate(snake)
		if !ok {
			t.Fatal("Generate reported a full grid")
		}
		if p != (types.Point{X: 0, Y: 1}) {
			t.Fatalf("Generate = %v, want the only free cell (0, 1)", p)
		}
	}
}

func TestGenerateFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	tm := NewTreasureManager(grid, rand.New(rand.NewSource(1)), NewCollisionManager(grid))
	snake := snakeAt(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0})
	if _, ok := tm.Generate(snake); ok {
		t.Error("Generate on a full grid should fail instead of looping")
	}
}

func TestGenerateInsideGrid(t *testing.T) {
	grid := types.Grid{Width: 7, Height: 4}
	tm := NewTreasureManager(grid, rand.New(rand.NewSource(7)), NewCollisionManager(grid))
	snake := snakeAt(types.Point{X: 3, Y: 2})
	seen := map[types.Point]bool{}
	for i := 0; i < 500; i++ {
		p, _ := tm.Generate(snake)
		if !grid.Contains(p) || p == (types.Point{X: 3, Y: 2}) {
			t.Fatalf("bad treasure %v", p)
		}
		seen[p] = true
	}
	if len(seen) != grid.Area()-1 {
		t.Errorf("visited %d cells, want every free cell (%d)", len(seen), grid.Area()-1)
	}
}

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager("test", 100)
	if sm.Current() != StateRunning {
		t.Fatalf("initial state %v", sm.Current())
	}
	if got := sm.SetPaused(true); got != StatePaused {
		t.Errorf("SetPaused(true) = %v", got)
	}
	if got := sm.SetPaused(false); got != StateRunning {
		t.Errorf("SetPaused(false) = %v", got)
	}
	sm.CountTick()
	sm.CountTick()
	if got := sm.Finish(StateRunning, 3); got != StateRunning {
		t.Errorf("non-terminal finish changed state to %v", got)
	}
	if got := sm.Finish(StateGameOver, 3); got != StateGameOver {
		t.Errorf("Finish = %v", got)
	}
	if got := sm.Finish(StateVictory, 100); got != StateGameOver {
		t.Errorf("second Finish replaced terminal state with %v", got)
	}
	if got := sm.SetPaused(true); got != StateGameOver {
		t.Errorf("pause after game over = %v", got)
	}

	rec := sm.Record()
	if rec.UUID != "test" || rec.Score != 3 || rec.MaxScore != 100 || rec.Ticks != 2 || rec.State != StateGameOver {
		t.Errorf("record = %+v", rec)
	}
	if rec.EndTime.IsZero() || rec.Duration() < 0 {
		t.Errorf("record times = %v .. %v", rec.StartTime, rec.EndTime)
	}
}

func TestStateTerminal(t *testing.T) {
	for s, want := range map[State]bool{
		StateRunning:  false,
		StatePaused:   false,
		StateGameOver: true,
		StateVictory:  true,
		StateQuit:     true,
	} {
		if s.Terminal() != want {
			t.Errorf("%v.Terminal() = %v", s, !want)
		}
	}
}
