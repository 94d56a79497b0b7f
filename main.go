package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"snake-term/game"
	"snake-term/game/manager"
	"snake-term/ui"
)

func main() {
	// glog registers its flags on the default set; share them with ours.
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})
	opts, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		printUsage(os.Stdout, err)
		return
	}
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	glog.V(1).Infof("settings %+v window=%t seed=%d", opts.settings, opts.window, seed)
	rng := rand.New(rand.NewSource(seed))

	var record manager.GameRecord
	if opts.window {
		record, err = playWindow(ctx, opts.settings, rng)
	} else {
		record, err = playTerminal(ctx, opts.settings, rng)
	}
	if err != nil {
		glog.Errorf("snake: %v", err)
		fmt.Fprintln(os.Stderr, "snake:", err)
		return
	}
	glog.Infof("session %s ended: %v, score %d", record.UUID, record.State, record.Score)
}

func playTerminal(ctx context.Context, settings game.Settings, rng *rand.Rand) (manager.GameRecord, error) {
	term, err := ui.NewTerminal(settings.ColorEnabled)
	if err != nil {
		return manager.GameRecord{}, err
	}
	defer term.Close()
	return game.Play(ctx, term, term, settings, rng)
}

// playWindow keeps the main goroutine for raylib and runs the session beside it.
func playWindow(ctx context.Context, settings game.Settings, rng *rand.Rand) (manager.GameRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	win := ui.NewWindow(ui.DefaultWindowConfig(), settings.ColorEnabled)

	var (
		record manager.GameRecord
		err    error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		record, err = game.Play(ctx, win, win, settings, rng)
	}()

	win.Run(ctx)
	<-done
	return record, err
}
