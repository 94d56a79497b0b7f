package ui

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"snake-term/game/types"
)

// Terminal draws the game with tcell and reads keys from the same screen.
type Terminal struct {
	screen tcell.Screen
	colors bool
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewTerminal takes over the controlling terminal. Close restores it.
func NewTerminal(colors bool) (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("stdout is not a terminal")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "problem creating screen")
	}
	return newTerminal(screen, colors)
}

func newTerminal(screen tcell.Screen, colors bool) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init problem")
	}
	screen.HideCursor()
	screen.SetStyle(terminalStyle(types.ColorBlack, colors))

	t := &Terminal{
		screen: screen,
		colors: colors,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
	go t.pump(screen)
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump(screen tcell.Screen) {
	defer close(t.events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) DrawCell(x, y int, glyph rune, color types.Color) {
	t.screen.SetContent(x, y, glyph, nil, terminalStyle(color, t.colors))
}

func (t *Terminal) DrawText(x, y int, text string, color types.Color) {
	style := terminalStyle(color, t.colors)
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Clear paints every cell with the background.
func (t *Terminal) Clear() {
	t.screen.Fill(' ', terminalStyle(types.ColorBlack, t.colors))
}

func (t *Terminal) Flush() {
	t.screen.Show()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// NextKey blocks for the next key press. Resize events only repaint; the
// grid keeps the size it had at startup.
func (t *Terminal) NextKey(ctx context.Context) (types.Key, error) {
	for {
		select {
		case <-ctx.Done():
			return types.KeyNone, ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return types.KeyNone, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if key := terminalKey(ev); key != types.KeyNone {
					return key, nil
				}
			}
		}
	}
}

func terminalKey(ev *tcell.EventKey) types.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return types.RuneKey(ev.Rune())
	case tcell.KeyUp:
		return types.KeyArrowUp
	case tcell.KeyDown:
		return types.KeyArrowDown
	case tcell.KeyLeft:
		return types.KeyArrowLeft
	case tcell.KeyRight:
		return types.KeyArrowRight
	case tcell.KeyEscape:
		return types.KeyEscape
	case tcell.KeyCtrlC:
		return types.KeyInterrupt
	}
	glog.V(2).Infof("ignoring key %v", ev.Name())
	return types.KeyNone
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}
