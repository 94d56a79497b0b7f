package types

// Color is a logical colour; backends map it onto their own palette.
type Color int

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBlack
)
