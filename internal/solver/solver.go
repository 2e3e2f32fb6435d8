// Package solver implements an iterative depth-first search for a winning move sequence.
package solver

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kabufuda/solver/internal/game"
	"github.com/kabufuda/solver/internal/packed"
	"github.com/kabufuda/solver/internal/partmap"
)

const (
	// DefaultProgressInterval is the number of pruned revisits between progress logs.
	DefaultProgressInterval = 1 << 20

	// DefaultPartitions is the default number of visited set partitions.
	DefaultPartitions = 1024
)

type Runner interface {
	Run() Resulter
}

var _ Runner = (*solver)(nil)

// Option configures a solver.
type Option func(*solver)

// WithLogger sets the logger for progress and outcome messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *solver) { s.log = log }
}

// WithProgressInterval logs progress every n pruned revisits; 0 disables progress logs.
func WithProgressInterval(n uint64) Option {
	return func(s *solver) { s.progressInterval = n }
}

// WithPartitions sets the number of partitions of the visited set.
func WithPartitions(n uint64) Option {
	return func(s *solver) { s.numPart = n }
}

type solver struct {
	start            game.Board
	log              logrus.FieldLogger
	progressInterval uint64
	numPart          uint64
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// New returns a solver for start. An invalid start board ends the search with outcome Invalid.
func New(start game.Board, opts ...Option) Runner {
	s := &solver{
		start:            start,
		log:              discardLogger(),
		progressInterval: DefaultProgressInterval,
		numPart:          DefaultPartitions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// frame is one level of the search: a board and the cursor into its candidate moves.
type frame struct {
	key   packed.Key
	moves []game.Move
	next  int
}

func newFrame(k packed.Key, b game.Board) frame {
	return frame{key: k, moves: b.ValidMoves()}
}

func (s *solver) Run() Resulter {
	r := &result{final: s.start}

	if err := s.start.Validate(); err != nil {
		r.outcome = Invalid
		r.err = err
		s.log.WithError(err).Warn("invalid start board")
		return r
	}

	if s.start.HasWon() {
		r.outcome = AlreadyWon
		s.log.Info("board already won")
		return r
	}

	r.visited = partmap.New(s.numPart)
	startKey := packed.Pack(s.start)
	r.visited.Add(startKey)

	frames := []frame{newFrame(startKey, s.start)}
	var path []game.Move

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		if top.next == len(top.moves) {
			// dead end: backtrack
			frames = frames[:len(frames)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		m := top.moves[top.next]
		top.next++
		b := packed.Unpack(top.key).Execute(m)
		k := packed.Pack(b)
		if !r.visited.Add(k) {
			r.skipped++
			if s.progressInterval != 0 && r.skipped%s.progressInterval == 0 {
				s.log.WithFields(logrus.Fields{
					"states":  r.visited.Size(),
					"skipped": r.skipped,
					"depth":   len(path),
				}).Info("search progress")
			}
			continue
		}

		path = append(path, m)
		r.maxDepth = max(r.maxDepth, len(path))
		if b.HasWon() {
			r.outcome = Solved
			r.moves = path
			r.final = b
			s.log.WithFields(logrus.Fields{
				"moves":  len(path),
				"states": r.visited.Size(),
			}).Info("solution found")
			return r
		}
		frames = append(frames, newFrame(k, b))
	}

	r.outcome = Unsolved
	s.log.WithField("states", r.visited.Size()).Info("search space exhausted")
	return r
}
