package game

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/manager"
	"snake-term/game/types"
)

const (
	snakeGlyph    = '@'
	treasureGlyph = '$'
	emptyGlyph    = ' '
)

// ErrGridTooSmall is returned when the display cannot hold a snake and a treasure.
var ErrGridTooSmall = errors.New("grid needs at least two cells")

type Game struct {
	UUID string
	Grid types.Grid

	snake    *entity.Snake
	treasure types.Point
	renderer Renderer
	delays   Delays

	collisionMgr *manager.CollisionManager
	treasureMgr  *manager.TreasureManager
	stateMgr     *manager.StateManager

	wait func(ctx context.Context, d time.Duration) error
}

// NewGame sizes the grid from the renderer and places a one-segment snake
// heading right in the centre. Nothing is drawn until Start.
func NewGame(r Renderer, settings Settings, rng *rand.Rand) (*Game, error) {
	width, height := r.Size()
	grid := types.Grid{Width: width, Height: height}
	if width <= 0 || height <= 0 || grid.Area() < 2 {
		return nil, errors.Wrapf(ErrGridTooSmall, "%dx%d", width, height)
	}

	gameUUID := uuid.New().String()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		snake:        entity.NewSnake(types.RIGHT),
		renderer:     r,
		delays:       settings.Delays(),
		collisionMgr: collisionMgr,
		treasureMgr:  manager.NewTreasureManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(gameUUID, grid.Area()),
		wait:         sleep,
	}
	g.snake.Grow(grid.Center())
	treasure, ok := g.treasureMgr.Generate(g.snake)
	if !ok {
		return nil, errors.Wrapf(ErrGridTooSmall, "%dx%d", width, height)
	}
	g.treasure = treasure

	glog.V(1).Infof("game %s: grid %dx%d, difficulty %v, delays %+v",
		gameUUID, width, height, settings.Difficulty, g.delays)
	return g, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Treasure() types.Point {
	return g.treasure
}

func (g *Game) State() manager.State {
	return g.stateMgr.Current()
}

func (g *Game) Record() manager.GameRecord {
	return g.stateMgr.Record()
}

// Start paints the initial board: background, treasure and head.
func (g *Game) Start() {
	g.renderer.Clear()
	g.drawCell(g.treasure, treasureGlyph, types.ColorYellow)
	g.drawCell(g.snake.Head().Point, snakeGlyph, types.ColorGreen)
	g.renderer.Flush()
}

// Run draws the board and ticks until the game ends or ctx is cancelled,
// which counts as a quit.
func (g *Game) Run(ctx context.Context) manager.State {
	g.Start()
	for {
		if err := g.wait(ctx, g.delays.For(g.snake.Direction())); err != nil {
			return g.quit()
		}
		if g.snake.Terminated() {
			return g.quit()
		}
		if state := g.Tick(); state.Terminal() {
			return state
		}
	}
}

// Tick advances the game by one step and returns the resulting state.
func (g *Game) Tick() manager.State {
	if state := g.stateMgr.SetPaused(g.snake.Paused()); state != manager.StateRunning {
		return state
	}
	g.stateMgr.CountTick()

	next := g.snake.NextMove()
	if collision := g.collisionMgr.CheckCollision(next, g.snake); collision != manager.NoCollision {
		glog.V(1).Infof("game %s: %v collision at %v", g.UUID, collision, next)
		g.snake.Terminate()
		g.drawGameOver()
		return g.stateMgr.Finish(manager.StateGameOver, g.snake.Len())
	}

	if g.collisionMgr.IsTreasureCollision(next, g.treasure) {
		g.snake.Grow(next)
		glog.V(2).Infof("Ate treasure: %v, length %d", next, g.snake.Len())

		// Generate refuses before sampling once the snake covers every cell.
		treasure, ok := g.treasureMgr.Generate(g.snake)
		if !ok {
			g.snake.Terminate()
			g.drawVictory()
			return g.stateMgr.Finish(manager.StateVictory, g.snake.Len())
		}
		g.treasure = treasure
		g.drawCell(g.treasure, treasureGlyph, types.ColorYellow)
	} else {
		g.drawCell(g.snake.Tail().Point, emptyGlyph, types.ColorBlack)
		g.snake.Move(next)
	}

	if glog.V(3) {
		glog.Infof("game %s:\n%v", g.UUID, g.snake)
	}
	g.drawCell(g.snake.Head().Point, snakeGlyph, types.ColorGreen)
	g.renderer.Flush()
	return g.stateMgr.Current()
}

func (g *Game) quit() manager.State {
	g.snake.Terminate()
	return g.stateMgr.Finish(manager.StateQuit, g.snake.Len())
}

func (g *Game) drawCell(p types.Point, glyph rune, color types.Color) {
	g.renderer.DrawCell(p.X, p.Y, glyph, color)
}

func (g *Game) drawCentered(y int, text string, color types.Color) {
	g.renderer.DrawText(g.Grid.Width/2-len(text)/2, y, text, color)
}

func (g *Game) drawScore(y int, label string, valueColor types.Color) {
	value := fmt.Sprint(g.snake.Len())
	x := g.Grid.Width/2 - (len(label)+len(value))/2
	g.renderer.DrawText(x, y, label, types.ColorWhite)
	g.renderer.DrawText(x+len(label), y, value, valueColor)
}

func (g *Game) drawGameOver() {
	g.renderer.Clear()
	y := g.Grid.Height / 2
	g.drawCentered(y, "Game Over", types.ColorRed)
	g.drawScore(y+1, "Score: ", types.ColorYellow)
	g.renderer.Flush()
}

func (g *Game) drawVictory() {
	g.renderer.Clear()
	y := g.Grid.Height/2 - 1
	g.drawCentered(y, "Congratulations,", types.ColorWhite)
	g.drawCentered(y+1, "you win!", types.ColorWhite)
	g.drawScore(y+2, "Maximum Score: ", types.ColorGreen)
	g.renderer.Flush()
}

// sleep waits for d unless ctx is done first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
