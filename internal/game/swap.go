package game

import "fmt"

// SwapState is the lifecycle state of a swap field.
type SwapState uint8

// Swap field states.
const (
	Locked SwapState = iota
	Free
	Occupied
	Collapsed
)

var swapStateNames = [...]string{"locked", "free", "occupied", "collapsed"}

func (s SwapState) String() string {
	if int(s) < len(swapStateNames) {
		return swapStateNames[s]
	}
	return fmt.Sprintf("SwapState(%d)", s)
}

// Swap is a single free cell. It holds one card when Occupied or a collapsed
// group of four when Collapsed.
type Swap struct {
	card  Card
	state SwapState
}

// NewSwap returns a swap field in state st. c is only kept for Occupied and Collapsed fields.
func NewSwap(st SwapState, c Card) Swap {
	if st != Occupied && st != Collapsed {
		c = 0
	}
	return Swap{card: c, state: st}
}

// State returns the lifecycle state.
func (s Swap) State() SwapState { return s.state }

// Card returns the held card, ok is false if the field holds none.
func (s Swap) Card() (c Card, ok bool) {
	if s.state == Occupied || s.state == Collapsed {
		return s.card, true
	}
	return 0, false
}

func (s Swap) mustCard() Card {
	c, ok := s.Card()
	if !ok {
		panic(fmt.Sprintf("game: no card on %s swap", s.state))
	}
	return c
}

// Occupancy returns the number of cards on the field: 0, 1 or 4.
func (s Swap) Occupancy() int {
	switch s.state {
	case Occupied:
		return 1
	case Collapsed:
		return CardsPerSuit
	default:
		return 0
	}
}

// Unlock makes a locked field free.
func (s *Swap) Unlock() {
	s.expect(Locked, "unlock")
	s.state = Free
}

// Push puts a single card onto a free field.
func (s *Swap) Push(c Card) {
	s.expect(Free, "push")
	s.card = c
	s.state = Occupied
}

// PushRun puts a single card (size 1) or a collapsed group (size 4) onto a free field.
func (s *Swap) PushRun(c Card, size int) {
	switch size {
	case 1:
		s.Push(c)
	case CardsPerSuit:
		s.expect(Free, "push group")
		s.card = c
		s.state = Collapsed
	default:
		panic(fmt.Sprintf("game: push of %d cards onto swap", size))
	}
}

// Pop removes the card of an occupied field.
func (s *Swap) Pop() {
	s.expect(Occupied, "pop")
	s.card = 0
	s.state = Free
}

func (s Swap) expect(st SwapState, op string) {
	if s.state != st {
		panic(fmt.Sprintf("game: %s on %s swap", op, s.state))
	}
}

func (s Swap) String() string {
	switch s.state {
	case Locked:
		return "<X>"
	case Free:
		return "< >"
	case Occupied:
		return fmt.Sprintf("<%d>", s.card)
	default:
		return fmt.Sprintf("-%d-", s.card)
	}
}
