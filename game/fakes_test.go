package game

import (
	"context"
	"io"
	"strings"
	"sync"

	"snake-term/game/types"
)

type fakeRenderer struct {
	mu      sync.Mutex
	width   int
	height  int
	cells   map[types.Point]rune
	texts   []string
	clears  int
	flushes int
}

func newFakeRenderer(width, height int) *fakeRenderer {
	return &fakeRenderer{
		width:  width,
		height: height,
		cells:  make(map[types.Point]rune),
	}
}

func (f *fakeRenderer) DrawCell(x, y int, glyph rune, _ types.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cells[types.Point{X: x, Y: y}] = glyph
}

func (f *fakeRenderer) DrawText(x, y int, text string, _ types.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	for i, r := range text {
		f.cells[types.Point{X: x + i, Y: y}] = r
	}
}

func (f *fakeRenderer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.texts = nil
	f.cells = make(map[types.Point]rune)
}

func (f *fakeRenderer) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
}

func (f *fakeRenderer) Size() (int, int) {
	return f.width, f.height
}

func (f *fakeRenderer) cell(p types.Point) rune {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cells[p]
}

func (f *fakeRenderer) flushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}

// screenText joins every text drawn since the last Clear.
func (f *fakeRenderer) screenText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.texts, "")
}

type fakeKeys struct {
	ch chan types.Key
}

func newFakeKeys(keys ...types.Key) *fakeKeys {
	f := &fakeKeys{ch: make(chan types.Key, len(keys)+8)}
	for _, k := range keys {
		f.ch <- k
	}
	return f
}

func (f *fakeKeys) NextKey(ctx context.Context) (types.Key, error) {
	select {
	case <-ctx.Done():
		return types.KeyNone, ctx.Err()
	case k, ok := <-f.ch:
		if !ok {
			return types.KeyNone, io.EOF
		}
		return k, nil
	}
}
