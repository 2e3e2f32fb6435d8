package game

import (
	"fmt"
	"strconv"
)

const (
	NumStacks = 8
	NumSwaps  = 4
)

// Slot addresses a place on the board: stacks are 0..7, swap fields are -1..-4
// (-1 is swap field 0, -4 is swap field 3).
type Slot int8

// StackSlot returns the address of stack i.
func StackSlot(i int) Slot {
	if i < 0 || i >= NumStacks {
		panic(fmt.Sprintf("game: stack index %d out of range", i))
	}
	return Slot(i)
}

// SwapSlot returns the address of swap field i.
func SwapSlot(i int) Slot {
	if i < 0 || i >= NumSwaps {
		panic(fmt.Sprintf("game: swap index %d out of range", i))
	}
	return Slot(-i - 1)
}

// Valid reports whether s addresses a stack or a swap field.
func (s Slot) Valid() bool { return s >= -NumSwaps && s < NumStacks }

// IsStack reports whether s addresses a stack.
func (s Slot) IsStack() bool { return s >= 0 && s < NumStacks }

// IsSwap reports whether s addresses a swap field.
func (s Slot) IsSwap() bool { return s >= -NumSwaps && s < 0 }

// StackIndex returns the stack index of s. It panics if s is no stack address.
func (s Slot) StackIndex() int {
	if !s.IsStack() {
		panic(fmt.Sprintf("game: slot %d is no stack", s))
	}
	return int(s)
}

// SwapIndex returns the swap field index of s. It panics if s is no swap address.
func (s Slot) SwapIndex() int {
	if !s.IsSwap() {
		panic(fmt.Sprintf("game: slot %d is no swap", s))
	}
	return int(-s) - 1
}

func (s Slot) String() string { return strconv.Itoa(int(s)) }

// slots lists all addresses in generation order: swap fields -4..-1, then stacks 0..7.
var slots = func() []Slot {
	s := make([]Slot, 0, NumSwaps+NumStacks)
	for i := Slot(-NumSwaps); i < NumStacks; i++ {
		s = append(s, i)
	}
	return s
}()
