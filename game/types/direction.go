package types

// Direction represents a cardinal direction
type Direction int32

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
)

// Vector converts a Direction into a unit step. Y grows downwards.
func (d Direction) Vector() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	case RIGHT:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return LEFT
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == LEFT || d == RIGHT
}

// SameAxis reports whether d and o are parallel.
func (d Direction) SameAxis(o Direction) bool {
	return d.Horizontal() == o.Horizontal()
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return "(none)"
	}
}
