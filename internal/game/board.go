package game

import (
	"fmt"
	"strings"
)

// InitialDepth is the number of cards dealt to each stack.
const InitialDepth = 5

// Layout is a dealt board: NumStacks stacks of InitialDepth cards, bottom to top.
type Layout [NumStacks][InitialDepth]Card

// Board holds the stacks and swap fields. Board is a comparable value;
// copying it yields an independent snapshot.
type Board struct {
	stacks [NumStacks]Stack
	swaps  [NumSwaps]Swap
}

// New deals layout and unlocks the swap fields granted by d.
func New(layout Layout, d Difficulty) Board {
	var b Board
	for i, cards := range layout {
		b.stacks[i] = NewStack(cards[:]...)
	}
	for i := 0; i < d.FreeSwaps(); i++ {
		b.UnlockNextSwap()
	}
	return b
}

// NewBoard assembles a board from its parts without any checks.
func NewBoard(stacks [NumStacks]Stack, swaps [NumSwaps]Swap) Board {
	return Board{stacks: stacks, swaps: swaps}
}

// Stack returns stack i.
func (b Board) Stack(i int) Stack { return b.stacks[StackSlot(i)] }

// Swap returns swap field i.
func (b Board) Swap(i int) Swap { return b.swaps[SwapSlot(i).SwapIndex()] }

func (b *Board) stackAt(s Slot) *Stack { return &b.stacks[s.StackIndex()] }

func (b *Board) swapAt(s Slot) *Swap { return &b.swaps[s.SwapIndex()] }

// UnlockNextSwap frees the first locked swap field, if any.
func (b *Board) UnlockNextSwap() {
	for i := range b.swaps {
		if b.swaps[i].state == Locked {
			b.swaps[i].Unlock()
			return
		}
	}
}

// InvalidKind classifies a board invariant violation.
type InvalidKind int

// Invariant violations.
const (
	InvalidTotal InvalidKind = iota // wrong total number of cards
	InvalidSuit                     // wrong number of cards of one suit
)

// InvalidError describes the first invariant mismatch found on a board.
type InvalidError struct {
	Kind InvalidKind
	Suit Card // only for InvalidSuit
	Want int
	Got  int
}

func (e *InvalidError) Error() string {
	if e.Kind == InvalidTotal {
		return fmt.Sprintf("invalid board: expected %d cards, found %d", e.Want, e.Got)
	}
	return fmt.Sprintf("invalid board: expected %d cards of suit %d, found %d", e.Want, e.Suit, e.Got)
}

// Validate checks the card count invariants and returns an *InvalidError describing the first mismatch.
func (b Board) Validate() error {
	var counts [NumSuits]int
	total := 0
	for _, s := range b.stacks {
		for _, c := range s.cards[:s.n] {
			if c >= 0 && c < NumSuits {
				counts[c]++
			}
		}
		total += s.Len()
	}
	for _, s := range b.swaps {
		if c, ok := s.Card(); ok {
			counts[c] += s.Occupancy()
		}
		total += s.Occupancy()
	}
	if total != NumCards {
		return &InvalidError{Kind: InvalidTotal, Want: NumCards, Got: total}
	}
	for suit, n := range counts {
		if n != CardsPerSuit {
			return &InvalidError{Kind: InvalidSuit, Suit: Card(suit), Want: CardsPerSuit, Got: n}
		}
	}
	return nil
}

// IsValid reports whether the board satisfies its card count invariants.
func (b Board) IsValid() bool { return b.Validate() == nil }

// HasWon reports whether every remaining card is locked in a collapsed group.
func (b Board) HasWon() bool {
	for _, s := range b.stacks {
		if !s.Empty() && !s.collapsed {
			return false
		}
	}
	for _, s := range b.swaps {
		if s.state == Occupied {
			return false
		}
	}
	return true
}

// MaxDepth returns the size of the largest stack.
func (b Board) MaxDepth() int {
	depth := 0
	for _, s := range b.stacks {
		depth = max(depth, s.Len())
	}
	return depth
}

func (b Board) String() string {
	var sb strings.Builder
	for i, s := range b.swaps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(" |")
	for _, s := range b.stacks {
		sb.WriteByte(' ')
		sb.WriteString(s.String())
	}
	return sb.String()
}
