package game

import (
	"fmt"
	"strings"
)

// MaxStackDepth is the capacity of a stack. Cards below the top run are always
// a prefix of the dealt stack (at most 4 cards), the top run holds at most 4 cards.
const MaxStackDepth = 8

// Stack is a pile of cards with top-only access. Once collapsed a stack is frozen.
//
// Stack is a comparable value: unused cells are kept zeroed.
type Stack struct {
	cards     [MaxStackDepth]Card
	n         uint8
	collapsed bool
}

// NewStack returns an uncollapsed stack holding cards bottom to top.
func NewStack(cards ...Card) Stack {
	var s Stack
	for _, c := range cards {
		s.Push(c)
	}
	return s
}

// CollapsedStack returns a collapsed stack of four c cards.
func CollapsedStack(c Card) Stack {
	s := NewStack(c, c, c, c)
	s.collapsed = true
	return s
}

// Len returns the number of cards on the stack.
func (s Stack) Len() int { return int(s.n) }

// Empty reports whether the stack holds no cards.
func (s Stack) Empty() bool { return s.n == 0 }

// Collapsed reports whether the stack is frozen.
func (s Stack) Collapsed() bool { return s.collapsed }

// Cards returns a copy of the stack's cards, bottom to top.
func (s Stack) Cards() []Card {
	cards := make([]Card, s.n)
	copy(cards, s.cards[:s.n])
	return cards
}

// Top returns the top card. It panics if the stack is empty.
func (s Stack) Top() Card {
	if s.n == 0 {
		panic("game: top of empty stack")
	}
	return s.cards[s.n-1]
}

// TopRunLen returns the number of cards at the top equal to the top card (0 for an empty stack).
func (s Stack) TopRunLen() int {
	if s.n == 0 {
		return 0
	}
	top := s.cards[s.n-1]
	l := 0
	for i := int(s.n) - 1; i >= 0 && s.cards[i] == top; i-- {
		l++
	}
	return l
}

// Push puts c on top of the stack.
func (s *Stack) Push(c Card) {
	if s.collapsed {
		panic("game: push onto collapsed stack")
	}
	if s.n == MaxStackDepth {
		panic("game: stack overflow")
	}
	s.cards[s.n] = c
	s.n++
}

// PushRun puts size copies of c on top of the stack.
func (s *Stack) PushRun(c Card, size int) {
	for i := 0; i < size; i++ {
		s.Push(c)
	}
}

// PopRun removes size cards of the top run.
func (s *Stack) PopRun(size int) {
	if s.collapsed {
		panic("game: pop from collapsed stack")
	}
	if size < 1 || size > s.TopRunLen() {
		panic(fmt.Sprintf("game: pop of %d cards exceeds top run of %d", size, s.TopRunLen()))
	}
	for i := 0; i < size; i++ {
		s.n--
		s.cards[s.n] = 0
	}
}

// TryCollapse freezes the stack if it holds exactly four equal cards and reports whether it is collapsed.
func (s *Stack) TryCollapse() bool {
	if s.n == CardsPerSuit && s.TopRunLen() == CardsPerSuit {
		s.collapsed = true
	}
	return s.collapsed
}

func (s Stack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.cards[:s.n] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	if s.collapsed {
		b.WriteByte('*')
	}
	return b.String()
}
