// Package game implements the Kabufuda solitaire board, its move rules and state transitions.
package game

import (
	"fmt"
	"strconv"
)

const (
	NumSuits     = 10 // number of different card values
	CardsPerSuit = 4  // copies of each card value
	NumCards     = NumSuits * CardsPerSuit
)

// Card is one of NumSuits card values (0..9).
type Card int8

// NewCard returns the card with value v. It panics if v is out of range.
func NewCard(v int) Card {
	if v < 0 || v >= NumSuits {
		panic(fmt.Sprintf("game: card value %d out of range", v))
	}
	return Card(v)
}

func (c Card) String() string { return strconv.Itoa(int(c)) }
