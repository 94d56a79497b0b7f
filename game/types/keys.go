package types

// Key is an abstract key code. Printable keys use their rune value;
// keys without one live above the unicode range.
type Key rune

const (
	KeyNone      Key = 0
	KeySpace     Key = ' '
	KeyEscape    Key = 27
	KeyInterrupt Key = 0x110000 + iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// RuneKey returns the Key for a printable rune.
func RuneKey(r rune) Key {
	return Key(r)
}

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyInterrupt:
		return "interrupt"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	}
	return string(rune(k))
}
