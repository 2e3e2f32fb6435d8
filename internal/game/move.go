package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrIllegalMove is returned by Replay for a move the board does not allow.
var ErrIllegalMove = errors.New("illegal move")

// Move transfers Size cards from one slot to another.
type Move struct {
	From, To Slot
	Size     int
}

func (m Move) String() string {
	plural := "s"
	if m.Size == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d card%s from %d -> %d", m.Size, plural, m.From, m.To)
}

// Valid reports whether m is structurally sound, independent of any board.
func (m Move) Valid() bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	if m.Size < 1 || m.Size > CardsPerSuit {
		return false
	}
	if m.From == m.To {
		return false
	}
	// a swap field never holds a movable run
	if m.From.IsSwap() && m.Size != 1 {
		return false
	}
	// a swap field takes a single card or a whole group
	if m.To.IsSwap() && m.Size != 1 && m.Size != CardsPerSuit {
		return false
	}
	return true
}

// ValidFor reports whether m can be applied to b. Structural soundness is checked by Valid.
func (m Move) ValidFor(b Board) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}

	var c Card
	if m.From.IsSwap() {
		s := b.swapAt(m.From)
		if s.state != Occupied || m.Size != 1 {
			return false
		}
		c = s.card
	} else {
		s := b.stackAt(m.From)
		if s.Empty() || s.collapsed || s.TopRunLen() < m.Size {
			return false
		}
		c = s.Top()
	}

	if m.To.IsSwap() {
		return b.swapAt(m.To).state == Free
	}
	s := b.stackAt(m.To)
	return !s.collapsed && (s.Empty() || s.Top() == c)
}

// movable returns the card and the maximum run that can leave slot s.
func (b *Board) movable(s Slot) (Card, int) {
	if s.IsSwap() {
		sw := b.swapAt(s)
		if sw.state != Occupied {
			return 0, 0
		}
		return sw.card, 1
	}
	st := b.stackAt(s)
	if st.Empty() || st.collapsed {
		return 0, 0
	}
	return st.Top(), st.TopRunLen()
}

// ValidMoves returns every legal move on b, larger transfers first.
// Moves of equal size keep generation order: sources and destinations -4..7.
func (b Board) ValidMoves() []Move {
	var moves []Move
	for _, from := range slots {
		c, n := b.movable(from)
		if n == 0 {
			continue
		}
		for _, to := range slots {
			if to == from {
				continue
			}
			if to.IsSwap() {
				if b.swapAt(to).state == Free {
					moves = append(moves, Move{From: from, To: to, Size: 1})
					if n == CardsPerSuit {
						moves = append(moves, Move{From: from, To: to, Size: CardsPerSuit})
					}
				}
				continue
			}
			s := b.stackAt(to)
			if s.collapsed || !(s.Empty() || s.Top() == c) {
				continue
			}
			for size := 1; size <= n; size++ {
				moves = append(moves, Move{From: from, To: to, Size: size})
			}
		}
	}
	slices.SortStableFunc(moves, func(x, y Move) int { return y.Size - x.Size })
	return moves
}

// Execute applies m and returns the resulting board; b itself is left untouched.
// It panics if m is not legal on b.
func (b Board) Execute(m Move) Board {
	if !m.Valid() || !m.ValidFor(b) {
		panic(fmt.Sprintf("game: illegal move %v on %v", m, b))
	}

	var c Card
	if m.From.IsSwap() {
		s := b.swapAt(m.From)
		c = s.mustCard()
		s.Pop()
	} else {
		s := b.stackAt(m.From)
		c = s.Top()
		s.PopRun(m.Size)
	}

	if m.To.IsSwap() {
		b.swapAt(m.To).PushRun(c, m.Size)
	} else {
		s := b.stackAt(m.To)
		s.PushRun(c, m.Size)
		if s.TryCollapse() {
			b.UnlockNextSwap()
		}
	}

	if err := b.Validate(); err != nil {
		panic(fmt.Sprintf("game: move %v broke board: %v", m, err))
	}
	return b
}

// Replay applies moves in order starting at b and returns the board after each move.
// Unlike Execute it reports an illegal move as an error.
func Replay(b Board, moves []Move) ([]Board, error) {
	boards := make([]Board, 0, len(moves))
	for i, m := range moves {
		if !m.Valid() || !m.ValidFor(b) {
			return boards, fmt.Errorf("move %d (%v): %w", i+1, m, ErrIllegalMove)
		}
		b = b.Execute(m)
		boards = append(boards, b)
	}
	return boards, nil
}
