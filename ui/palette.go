package ui

import (
	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-term/game/types"
)

var terminalColors = map[types.Color]tcell.Color{
	types.ColorDefault: tcell.ColorDefault,
	types.ColorRed:     tcell.ColorMaroon,
	types.ColorGreen:   tcell.ColorGreen,
	types.ColorYellow:  tcell.ColorOlive,
	types.ColorBlue:    tcell.ColorNavy,
	types.ColorCyan:    tcell.ColorTeal,
	types.ColorMagenta: tcell.ColorPurple,
	types.ColorWhite:   tcell.ColorSilver,
	types.ColorGray:    tcell.ColorGray,
	types.ColorBlack:   tcell.ColorBlack,
}

// terminalStyle uses the eight basic colours on a black background, which
// every terminal supports. Without colours everything is drawn in the
// terminal's default style.
func terminalStyle(c types.Color, enabled bool) tcell.Style {
	if !enabled {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(terminalColors[c]).Background(tcell.ColorBlack)
}

var windowColors = map[types.Color]rl.Color{
	types.ColorDefault: rl.RayWhite,
	types.ColorRed:     rl.Red,
	types.ColorGreen:   rl.Green,
	types.ColorYellow:  rl.Yellow,
	types.ColorBlue:    rl.Blue,
	types.ColorCyan:    rl.SkyBlue,
	types.ColorMagenta: rl.Magenta,
	types.ColorWhite:   rl.White,
	types.ColorGray:    rl.Gray,
	types.ColorBlack:   rl.Black,
}

func windowColor(c types.Color, enabled bool) rl.Color {
	if !enabled {
		if c == types.ColorBlack {
			return rl.Black
		}
		return rl.LightGray
	}
	return windowColors[c]
}
