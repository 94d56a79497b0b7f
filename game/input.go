package game

import (
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"snake-term/game/entity"
	"snake-term/game/types"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the heading a movement action requests.
func (a Action) Direction() (types.Direction, bool) {
	switch a {
	case ActionUp:
		return types.UP, true
	case ActionDown:
		return types.DOWN, true
	case ActionLeft:
		return types.LEFT, true
	case ActionRight:
		return types.RIGHT, true
	}
	return 0, false
}

// keyBindings maps every alias to its action: WASD, vi keys and arrows
// for movement, p/space to pause, q/escape/ctrl-c to quit.
var keyBindings = map[types.Key]Action{
	'a': ActionLeft, 'h': ActionLeft, types.KeyArrowLeft: ActionLeft,
	's': ActionDown, 'j': ActionDown, types.KeyArrowDown: ActionDown,
	'w': ActionUp, 'k': ActionUp, types.KeyArrowUp: ActionUp,
	'd': ActionRight, 'l': ActionRight, types.KeyArrowRight: ActionRight,

	'p': ActionPause, types.KeySpace: ActionPause,

	'q': ActionQuit, types.KeyEscape: ActionQuit, types.KeyInterrupt: ActionQuit,
}

// ActionFor looks up the action bound to key. Unknown keys map to ActionNone.
func ActionFor(key types.Key) Action {
	return keyBindings[key]
}

// Listener turns key presses into direction, pause and quit changes on the
// snake. It never touches the chain itself.
type Listener struct {
	keys  KeySource
	snake *entity.Snake
	quit  context.CancelFunc
}

func NewListener(keys KeySource, snake *entity.Snake, quit context.CancelFunc) *Listener {
	return &Listener{
		keys:  keys,
		snake: snake,
		quit:  quit,
	}
}

// Run reads keys until the snake is terminated or ctx is done. Closed
// input is handled like the quit key.
func (l *Listener) Run(ctx context.Context) error {
	for !l.snake.Terminated() {
		key, err := l.keys.NextKey(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.Handle(types.KeyInterrupt)
			return errors.Wrap(err, "reading input")
		}
		l.Handle(key)
	}
	return nil
}

// Handle applies a single key press and returns the action it mapped to.
func (l *Listener) Handle(key types.Key) Action {
	action := ActionFor(key)
	glog.V(2).Infof("Key: %v -> %v", key, action)

	switch action {
	case ActionPause:
		l.snake.TogglePause()
	case ActionQuit:
		l.snake.Terminate()
		l.quit()
	case ActionNone:
	default:
		dir, _ := action.Direction()
		l.snake.Turn(dir)
	}
	return action
}
