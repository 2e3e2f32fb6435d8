package solver

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/kabufuda/solver/internal/game"
	"github.com/kabufuda/solver/internal/partmap"
)

// ErrNoSolution is returned by Resulter.Moves when the search space was exhausted.
var ErrNoSolution = errors.New("no solution found")

// Outcome is the terminal state of a search.
type Outcome int

// Search outcomes.
const (
	Unsolved   Outcome = iota // search space exhausted without a win
	AlreadyWon                // start board was already won, nothing explored
	Solved                    // a winning move sequence was found
	Invalid                   // start board breaks the card count invariants
)

func (o Outcome) String() string {
	switch o {
	case Unsolved:
		return "unsolved"
	case AlreadyWon:
		return "already won"
	case Solved:
		return "solved"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Resulter interface {
	Outcome() Outcome
	Moves() ([]game.Move, error)
	Board() game.Board
	NumStates() int
	NumSkipped() uint64
	MaxDepth() int
}

var _ Resulter = (*result)(nil)

type result struct {
	outcome  Outcome
	err      error // *game.InvalidError for Invalid
	final    game.Board
	moves    []game.Move
	visited  *partmap.Set
	skipped  uint64
	maxDepth int
}

// Outcome returns how the search ended.
func (r *result) Outcome() Outcome { return r.outcome }

// Moves returns the winning move sequence: empty for an already won board,
// ErrNoSolution if none was found and the *game.InvalidError of an invalid start board.
func (r *result) Moves() ([]game.Move, error) {
	switch r.outcome {
	case AlreadyWon:
		return nil, nil
	case Solved:
		return slices.Clone(r.moves), nil
	case Invalid:
		return nil, r.err
	default:
		return nil, ErrNoSolution
	}
}

// Board returns the won board, or the start board if the search failed.
func (r *result) Board() game.Board { return r.final }

// NumStates returns the number of distinct boards visited.
func (r *result) NumStates() int {
	if r.visited == nil {
		return 0
	}
	return r.visited.Size()
}

// NumSkipped returns the number of revisits pruned.
func (r *result) NumSkipped() uint64 { return r.skipped }

// MaxDepth returns the longest move path explored.
func (r *result) MaxDepth() int { return r.maxDepth }
