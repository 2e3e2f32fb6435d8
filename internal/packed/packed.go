// Package packed provides a memory efficient representation of boards.
package packed

import (
	"hash/maphash"

	"github.com/kabufuda/solver/internal/game"
)

const (
	stackBytes = 1 + game.MaxStackDepth/2 // length and collapsed flag, then two cards per byte
	swapOffset = game.NumStacks * stackBytes
	keySize    = swapOffset + game.NumSwaps
)

// Key is a compressed representation of a board.
type Key [keySize]byte

// Hash returns a hash value of k.
func (k Key) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, k[:]) }

// Pack returns the packed representation of b.
func Pack(b game.Board) Key {
	var k Key
	for i := 0; i < game.NumStacks; i++ {
		s := b.Stack(i)
		p := k[i*stackBytes : (i+1)*stackBytes]
		p[0] = byte(s.Len())
		if s.Collapsed() {
			p[0] |= 0x10
		}
		for j, c := range s.Cards() {
			p[1+j/2] |= byte(c) << (4 * (j % 2))
		}
	}
	for i := 0; i < game.NumSwaps; i++ {
		s := b.Swap(i)
		c, _ := s.Card()
		k[swapOffset+i] = byte(s.State())<<4 | byte(c)
	}
	return k
}

// Unpack returns the board packed into k.
func Unpack(k Key) game.Board {
	var stacks [game.NumStacks]game.Stack
	for i := range stacks {
		p := k[i*stackBytes : (i+1)*stackBytes]
		n := int(p[0] & 0x0f)
		cards := make([]game.Card, n)
		for j := range cards {
			cards[j] = game.Card(p[1+j/2] >> (4 * (j % 2)) & 0x0f)
		}
		if p[0]&0x10 != 0 {
			stacks[i] = game.CollapsedStack(cards[0])
		} else {
			stacks[i] = game.NewStack(cards...)
		}
	}
	var swaps [game.NumSwaps]game.Swap
	for i := range swaps {
		b := k[swapOffset+i]
		swaps[i] = game.NewSwap(game.SwapState(b>>4), game.Card(b&0x0f))
	}
	return game.NewBoard(stacks, swaps)
}
