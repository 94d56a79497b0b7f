package ui

import (
	"context"
	"io"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-term/game/types"
)

const borderPadding = 10 // Padding around game area

// WindowConfig sizes the raylib window in grid cells.
type WindowConfig struct {
	Title    string
	Columns  int
	Rows     int
	CellSize int32
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:    "Snake",
		Columns:  48,
		Rows:     30,
		CellSize: 20,
	}
}

type cell struct {
	glyph rune
	color types.Color
}

// Window is a raylib backed renderer and key source. The game draws into a
// back buffer from its own goroutine; Flush publishes it and Run, which must
// own the main goroutine, paints the published frame and polls keys.
type Window struct {
	cfg    WindowConfig
	colors bool

	mu    sync.Mutex
	back  []cell
	front []cell

	keys   chan types.Key
	closed chan struct{}
}

func NewWindow(cfg WindowConfig, colors bool) *Window {
	n := cfg.Columns * cfg.Rows
	w := &Window{
		cfg:    cfg,
		colors: colors,
		back:   make([]cell, n),
		front:  make([]cell, n),
		keys:   make(chan types.Key, 16),
		closed: make(chan struct{}),
	}
	w.Clear()
	return w
}

func (w *Window) index(x, y int) (int, bool) {
	if x < 0 || x >= w.cfg.Columns || y < 0 || y >= w.cfg.Rows {
		return 0, false
	}
	return y*w.cfg.Columns + x, true
}

func (w *Window) DrawCell(x, y int, glyph rune, color types.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i, ok := w.index(x, y); ok {
		w.back[i] = cell{glyph: glyph, color: color}
	}
}

func (w *Window) DrawText(x, y int, text string, color types.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, r := range text {
		if i, ok := w.index(x, y); ok {
			w.back[i] = cell{glyph: r, color: color}
		}
		x++
	}
}

func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.back {
		w.back[i] = cell{glyph: ' ', color: types.ColorBlack}
	}
}

func (w *Window) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	copy(w.front, w.back)
}

func (w *Window) Size() (int, int) {
	return w.cfg.Columns, w.cfg.Rows
}

func (w *Window) NextKey(ctx context.Context) (types.Key, error) {
	select {
	case <-ctx.Done():
		return types.KeyNone, ctx.Err()
	case k := <-w.keys:
		return k, nil
	case <-w.closed:
		return types.KeyNone, io.EOF
	}
}

// Run opens the window and paints frames until ctx is done or the user
// closes the window. raylib needs every call on one OS thread, so Run must
// be called from main.
func (w *Window) Run(ctx context.Context) {
	width := int32(w.cfg.Columns)*w.cfg.CellSize + borderPadding*2
	height := int32(w.cfg.Rows)*w.cfg.CellSize + borderPadding*2
	rl.InitWindow(width, height, w.cfg.Title)
	defer rl.CloseWindow()
	defer close(w.closed)

	// Escape is a game key, not a close request.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	frame := make([]cell, len(w.front))
	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.pollKeys()

		w.mu.Lock()
		copy(frame, w.front)
		w.mu.Unlock()
		w.draw(frame)
	}
}

func (w *Window) pollKeys() {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		key := windowKey(k)
		if key == types.KeyNone {
			continue
		}
		select {
		case w.keys <- key:
		default:
			// Drop presses nobody is reading.
		}
	}
}

func (w *Window) draw(frame []cell) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	size := w.cfg.CellSize
	fontSize := size - 2
	for i, c := range frame {
		if c.glyph == ' ' || c.glyph == 0 {
			continue
		}
		x := int32(borderPadding) + int32(i%w.cfg.Columns)*size
		y := int32(borderPadding) + int32(i/w.cfg.Columns)*size
		color := windowColor(c.color, w.colors)
		switch c.glyph {
		case '@', '$':
			rl.DrawRectangle(x+1, y+1, size-2, size-2, color)
		default:
			rl.DrawText(string(c.glyph), x+2, y+1, fontSize, color)
		}
	}
	rl.DrawRectangleLines(borderPadding-1, borderPadding-1,
		int32(w.cfg.Columns)*size+2, int32(w.cfg.Rows)*size+2, rl.DarkGray)
}

// windowKey maps raylib key codes, which use upper case ASCII for letters,
// onto the game's keys.
func windowKey(k int32) types.Key {
	switch {
	case k >= rl.KeyA && k <= rl.KeyZ:
		return types.RuneKey(rune(k - rl.KeyA + 'a'))
	case k == rl.KeySpace:
		return types.KeySpace
	case k == rl.KeyEscape:
		return types.KeyEscape
	case k == rl.KeyUp:
		return types.KeyArrowUp
	case k == rl.KeyDown:
		return types.KeyArrowDown
	case k == rl.KeyLeft:
		return types.KeyArrowLeft
	case k == rl.KeyRight:
		return types.KeyArrowRight
	}
	return types.KeyNone
}
