package entity

import (
	"fmt"

	"snake-term/game/types"
)

// Segment is one cell of the snake's body. Segments form a doubly
// linked chain: prev points towards the head, next towards the tail.
type Segment struct {
	Point types.Point
	ID    int

	next *Segment
	prev *Segment
}

// Next returns the segment behind s, or nil for the tail.
func (s *Segment) Next() *Segment {
	return s.next
}

// Prev returns the segment in front of s, or nil for the head.
func (s *Segment) Prev() *Segment {
	return s.prev
}

func (s *Segment) String() string {
	return fmt.Sprintf("{id: %d, next: %s, prev: %s, p: %v}",
		s.ID, segmentID(s.next), segmentID(s.prev), s.Point)
}

func segmentID(s *Segment) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprint(s.ID)
}
