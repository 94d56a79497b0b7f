package game

import (
	"context"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"snake-term/game/manager"
)

// Play runs one session: the input listener on its own goroutine and the
// game loop on the caller's. After game over or victory the end screen stays
// up until one more key arrives. Play returns once both goroutines are done.
func Play(ctx context.Context, r Renderer, keys KeySource, settings Settings, rng *rand.Rand) (manager.GameRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, err := NewGame(r, settings, rng)
	if err != nil {
		return manager.GameRecord{}, err
	}

	listener := NewListener(keys, g.Snake(), cancel)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := listener.Run(ctx); err != nil {
			glog.Warningf("game %s: input listener stopped: %v", g.UUID, err)
		}
	}()

	state := g.Run(ctx)
	if state == manager.StateQuit {
		cancel()
	}
	<-done
	return g.Record(), nil
}
