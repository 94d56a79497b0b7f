package game

import (
	"context"

	"snake-term/game/types"
)

// Renderer is the display the game draws into. Coordinates are grid cells
// with the origin in the top-left corner. Nothing becomes visible until Flush.
type Renderer interface {
	DrawCell(x, y int, glyph rune, color types.Color)
	DrawText(x, y int, text string, color types.Color)
	Clear()
	Flush()
	Size() (width, height int)
}

// KeySource yields key presses one at a time. NextKey blocks until a key
// arrives or ctx is done, and returns io.EOF once input is closed.
type KeySource interface {
	NextKey(ctx context.Context) (types.Key, error)
}
