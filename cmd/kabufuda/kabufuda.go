package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"

	"github.com/kabufuda/solver/internal/config"
	"github.com/kabufuda/solver/internal/game"
	"github.com/kabufuda/solver/internal/parse"
	"github.com/kabufuda/solver/internal/render"
	"github.com/kabufuda/solver/internal/solver"
)

var log = logrus.New()

const (
	exitOK       = 0
	exitUnsolved = 1
	exitUsage    = 2
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "usage: kabufuda [flags] [puzzle-file]\n\n")
		fmt.Fprintf(fs.Output(), "Reads a puzzle (stdin if no file is given) and prints a winning move sequence.\n\n")
		fs.PrintDefaults()
	}
}

func loadConfig(path, difficulty, color, level string, replay bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if difficulty != "" {
		cfg.Difficulty = difficulty
	}
	if color != "" {
		cfg.Color = color
	}
	if level != "" {
		cfg.LogLevel = level
	}
	cfg.Replay = cfg.Replay || replay
	return cfg, cfg.Validate()
}

func newOutput(w io.Writer, color string) *termenv.Output {
	switch color {
	case config.ColorAlways:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	case config.ColorNever:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	default:
		return termenv.NewOutput(w)
	}
}

func readBoard(name string, stdin io.Reader, d game.Difficulty) (game.Board, error) {
	if name == "" || name == "-" {
		return parse.Board(stdin, d)
	}
	f, err := os.Open(name)
	if err != nil {
		return game.Board{}, err
	}
	defer f.Close()
	return parse.Board(f, d)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kabufuda", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	configPath := fs.String("config", "", "YAML configuration file")
	difficulty := fs.String("difficulty", "", "easy, normal, hard or expert (default expert)")
	color := fs.String("color", "", "auto, always or never (default auto)")
	level := fs.String("log-level", "", "log level (default info)")
	replay := fs.Bool("replay", false, "print the board after every move")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	log.SetOutput(stderr)
	cfg, err := loadConfig(*configPath, *difficulty, *color, *level, *replay)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return exitUsage
	}
	lvl, _ := cfg.Level()
	log.SetLevel(lvl)
	d, _ := cfg.GameDifficulty()

	b, err := readBoard(fs.Arg(0), stdin, d)
	if err != nil {
		log.WithError(err).Error("cannot read puzzle")
		return exitUsage
	}
	log.WithField("difficulty", d).Debug("puzzle loaded")

	r := render.New(newOutput(stdout, cfg.Color))
	fmt.Fprintf(stdout, "Board:\n%s\n", r.Board(b))

	result := solver.New(b,
		solver.WithLogger(log),
		solver.WithProgressInterval(cfg.Progress()),
		solver.WithPartitions(cfg.Partitions),
	).Run()
	log.WithFields(logrus.Fields{
		"outcome": result.Outcome(),
		"states":  result.NumStates(),
		"skipped": result.NumSkipped(),
		"depth":   result.MaxDepth(),
	}).Debug("search finished")

	moves, err := result.Moves()
	if result.Outcome() == solver.Invalid {
		log.WithError(err).Error("cannot solve puzzle")
		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stdout, "No solution: %v\n", err)
		return exitUnsolved
	}
	if result.Outcome() == solver.AlreadyWon {
		fmt.Fprintln(stdout, "Board is already won.")
		return exitOK
	}

	fmt.Fprintf(stdout, "Winning moves (%d):\n%s", len(moves), r.Moves(moves))
	if cfg.Replay {
		boards, err := game.Replay(b, moves)
		if err != nil {
			log.WithError(err).Error("replay failed")
			return exitUnsolved
		}
		for i, nb := range boards {
			fmt.Fprintf(stdout, "\n%d. %s\n%s", i+1, r.Move(moves[i]), r.Board(nb))
		}
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
