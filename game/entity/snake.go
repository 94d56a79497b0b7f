package entity

import (
	"fmt"
	"strings"
	"sync/atomic"

	"snake-term/game/types"
)

// Snake holds the body chain and the flags shared with the input listener.
//
// The chain (head, tail, length) is only mutated by the game loop. The
// direction, paused and terminated flags are written by the input listener
// and read by the game loop each tick, so they are kept in atomics.
type Snake struct {
	head   *Segment
	tail   *Segment
	length int
	nextID int

	direction  atomic.Int32
	paused     atomic.Bool
	terminated atomic.Bool
}

func NewSnake(direction types.Direction) *Snake {
	s := &Snake{nextID: 1}
	s.direction.Store(int32(direction))
	return s
}

// NextMove returns the cell the head would enter on the next step.
func (s *Snake) NextMove() types.Point {
	return s.head.Point.Add(s.Direction().Vector())
}

// Grow adds a new head at p in front of the current head.
func (s *Snake) Grow(p types.Point) {
	newHead := &Segment{Point: p, ID: s.nextID}
	s.nextID++

	switch s.length {
	case 0:
		// head == tail
		s.head = newHead
		s.tail = newHead
	case 1:
		// decouple head and tail
		newHead.next = s.tail
		s.tail.prev = newHead
		s.tail.next = nil
		s.head = newHead
	default:
		newHead.next = s.head
		s.head.prev = newHead
		s.head = newHead
	}
	s.length++
}

// Move advances the head to p and drops the tail, returning the cell
// the tail used to occupy. Moving an empty snake panics.
func (s *Snake) Move(p types.Point) types.Point {
	if s.length == 0 {
		panic("entity: move on empty snake")
	}
	s.Grow(p)
	s.length--

	oldTail := s.tail
	s.tail = oldTail.prev
	s.tail.next = nil
	oldTail.prev = nil
	return oldTail.Point
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	for seg := s.head; seg != nil; seg = seg.next {
		if seg.Point == p {
			return true
		}
	}
	return false
}

// Len is the number of live segments, which is also the score.
func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Head() *Segment {
	return s.head
}

func (s *Snake) Tail() *Segment {
	return s.tail
}

// Points returns the occupied cells from head to tail.
func (s *Snake) Points() []types.Point {
	points := make([]types.Point, 0, s.length)
	for seg := s.head; seg != nil; seg = seg.next {
		points = append(points, seg.Point)
	}
	return points
}

func (s *Snake) Direction() types.Direction {
	return types.Direction(s.direction.Load())
}

// Turn points the snake towards d unless d lies on the current axis,
// which would either be a no-op or a reversal into the neck. An accepted
// turn also resumes a paused game.
func (s *Snake) Turn(d types.Direction) bool {
	if d.SameAxis(s.Direction()) {
		return false
	}
	s.direction.Store(int32(d))
	s.paused.Store(false)
	return true
}

func (s *Snake) Paused() bool {
	return s.paused.Load()
}

// TogglePause flips the paused flag and returns the new value.
func (s *Snake) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *Snake) Terminated() bool {
	return s.terminated.Load()
}

// Terminate marks the session as over for both goroutines.
func (s *Snake) Terminate() {
	s.terminated.Store(true)
}

// String dumps every field and segment, for debug logging.
func (s *Snake) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "direction: %v\n", s.Direction())
	fmt.Fprintf(&b, "head: %v\n", s.head)
	fmt.Fprintf(&b, "tail: %v\n", s.tail)
	fmt.Fprintf(&b, "segment_count: %d\n", s.length)
	for seg := s.head; seg != nil; seg = seg.next {
		fmt.Fprintf(&b, "    segment: %v\n", seg)
	}
	return b.String()
}
