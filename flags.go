package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"snake-term/game"
)

// options is everything the command line controls.
type options struct {
	settings game.Settings
	window   bool
	seed     uint64
}

// usageError is returned when the command line cannot be used as given.
// Its message is printed above the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// countFlag is a switch that remembers how often it was given, so that
// an option given twice (under any alias) can be rejected. It can only be
// switched on.
type countFlag struct {
	n int
}

func (c *countFlag) String() string {
	return fmt.Sprint(c.n > 0)
}

func (c *countFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	if !on {
		return errors.Errorf("%q cannot switch an option off", value)
	}
	c.n++
	return nil
}

func (c *countFlag) IsBoolFlag() bool {
	return true
}

var shortFlags = regexp.MustCompile(`^-[dhs]{2}$`)

// expandShortFlags splits combined short options: -ds becomes -d -s.
func expandShortFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !shortFlags.MatchString(arg) {
			out = append(out, arg)
			continue
		}
		for _, c := range arg[1:] {
			out = append(out, "-"+string(c))
		}
	}
	return out
}

// parseArgs reads `[easy|normal|hard] [-dhs] [--window] [--seed=N]` from
// args. fs may already carry other flags, such as glog's.
func parseArgs(fs *flag.FlagSet, args []string) (options, error) {
	opts := options{settings: game.DefaultSettings()}

	var help, sync, noColors, difficulty countFlag
	fs.Var(&help, "h", "")
	fs.Var(&help, "help", "display this help info")
	fs.Var(&sync, "s", "")
	fs.Var(&sync, "sync_frame_rate", "synchronize horizontal and vertical frame rates")
	fs.Var(&noColors, "d", "")
	fs.Var(&noColors, "disable_colors", "disable color output")
	fs.BoolVar(&opts.window, "window", false, "play in a window instead of the terminal")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for treasure placement (0 picks one)")
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// Every argument is read before deciding, so help wins over an
	// unknown argument wherever it appears.
	var unknown string
	rest := expandShortFlags(args)
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			// Parse has usually consumed the argument it failed on; bad
			// syntax such as "---x" is rejected before that.
			left := fs.Args()
			if len(left) == len(rest) {
				left = rest[1:]
			}
			if unknown == "" {
				unknown = rest[len(rest)-len(left)-1]
			}
			rest = left
			continue
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		arg := rest[0]
		rest = rest[1:]
		if arg == "help" {
			help.n++
			continue
		}
		d, err := game.ParseDifficulty(arg)
		if err != nil {
			if unknown == "" {
				unknown = arg
			}
			continue
		}
		opts.settings.Difficulty = d
		difficulty.n++
	}

	switch {
	case help.n > 0:
		return opts, &usageError{msg: "Help info:"}
	case unknown != "":
		return opts, &usageError{msg: "Unknown argument: " + unknown}
	case sync.n > 1 || noColors.n > 1 || difficulty.n > 1:
		return opts, &usageError{msg: "Duplicate arguments."}
	}
	opts.settings.SyncFrameRate = sync.n > 0
	opts.settings.ColorEnabled = noColors.n == 0
	return opts, nil
}

// printUsage explains the command line after a usage error.
func printUsage(w io.Writer, err error) {
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(w, uerr.msg)
	} else if err != nil {
		fmt.Fprintln(w, err)
	}
	fmt.Fprint(w, `
Usage: snake [ {easy|normal|hard} -dhs ]

Difficulty setting defaults to "normal".

Options:
"--disable_colors" (-d) disables color output.
"--help" (-h) displays this help info.
"--sync_frame_rate" (-s) synchronizes horizontal and vertical frame rates.
"--window" opens a window instead of using the terminal.
"--seed=N" fixes the treasure placement.


Frame rates are by default faster horizontally to offset differences in character height and width.
`)
}
