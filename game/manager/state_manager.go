package manager

import (
	"time"

	"github.com/golang/glog"
)

// State is the phase of a game session.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateVictory
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	case StateVictory:
		return "VICTORY"
	case StateQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further ticks follow this state.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory || s == StateQuit
}

// GameRecord summarises one session.
type GameRecord struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Ticks     int       `json:"ticks"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"maxScore"`
	State     State     `json:"state"`
}

// Duration is the wall time between start and end, or until now for a live session.
func (r GameRecord) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

type StateManager struct {
	current State
	record  GameRecord
	now     func() time.Time
}

func NewStateManager(uuid string, maxScore int) *StateManager {
	sm := &StateManager{
		current: StateRunning,
		now:     time.Now,
	}
	sm.record = GameRecord{
		UUID:      uuid,
		StartTime: sm.now(),
		MaxScore:  maxScore,
		State:     StateRunning,
	}
	return sm
}

func (sm *StateManager) Current() State {
	return sm.current
}

// SetPaused moves between RUNNING and PAUSED. Terminal states are kept.
func (sm *StateManager) SetPaused(paused bool) State {
	if sm.current.Terminal() {
		return sm.current
	}
	next := StateRunning
	if paused {
		next = StatePaused
	}
	if next != sm.current {
		glog.V(1).Infof("game %s: %v -> %v", sm.record.UUID, sm.current, next)
		sm.current = next
	}
	return sm.current
}

// CountTick records one completed tick.
func (sm *StateManager) CountTick() {
	sm.record.Ticks++
}

// Finish moves to a terminal state and closes the record. Only the first
// call has an effect.
func (sm *StateManager) Finish(state State, score int) State {
	if sm.current.Terminal() {
		return sm.current
	}
	if !state.Terminal() {
		glog.Warningf("game %s: ignoring finish with non-terminal state %v", sm.record.UUID, state)
		return sm.current
	}
	glog.V(1).Infof("game %s: %v -> %v", sm.record.UUID, sm.current, state)
	sm.current = state
	sm.record.State = state
	sm.record.Score = score
	sm.record.EndTime = sm.now()
	glog.Infof("game %s finished: state=%v score=%d/%d ticks=%d duration=%v",
		sm.record.UUID, state, score, sm.record.MaxScore, sm.record.Ticks, sm.record.Duration())
	return sm.current
}

func (sm *StateManager) Record() GameRecord {
	return sm.record
}
