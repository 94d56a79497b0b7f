package game

import (
	"time"

	"github.com/pkg/errors"

	"snake-term/game/types"
)

// Difficulty selects one of the frame delay presets.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty accepts the names printed by String.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, errors.Errorf("unknown difficulty %q", s)
}

// Delays is the pause before each step. Terminal cells are roughly twice
// as tall as they are wide, so vertical steps wait longer.
type Delays struct {
	Horizontal time.Duration
	Vertical   time.Duration
}

var difficultyDelays = map[Difficulty]Delays{
	Easy:   {Horizontal: 66 * time.Millisecond, Vertical: 110 * time.Millisecond},
	Normal: {Horizontal: 44 * time.Millisecond, Vertical: 77 * time.Millisecond},
	Hard:   {Horizontal: 22 * time.Millisecond, Vertical: 34 * time.Millisecond},
}

// For returns the delay before a step in direction d.
func (d Delays) For(dir types.Direction) time.Duration {
	if dir.Horizontal() {
		return d.Horizontal
	}
	return d.Vertical
}

// Settings is the session configuration coming from the command line.
type Settings struct {
	Difficulty    Difficulty
	SyncFrameRate bool
	ColorEnabled  bool
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty:   Normal,
		ColorEnabled: true,
	}
}

func (s Settings) Delays() Delays {
	d, ok := difficultyDelays[s.Difficulty]
	if !ok {
		d = difficultyDelays[Normal]
	}
	if s.SyncFrameRate {
		d.Horizontal = d.Vertical
	}
	return d
}
