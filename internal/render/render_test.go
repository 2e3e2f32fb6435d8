package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/kabufuda/solver/internal/game"
)

var fixture = game.Layout{
	{8, 5, 1, 4, 9},
	{4, 3, 0, 9, 2},
	{0, 2, 0, 3, 2},
	{5, 7, 7, 1, 1},
	{5, 5, 3, 1, 7},
	{9, 8, 4, 6, 4},
	{6, 8, 8, 3, 6},
	{0, 6, 2, 9, 7},
}

func plain() *Renderer {
	return New(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)))
}

func TestBoard(t *testing.T) {
	b := game.New(fixture, game.Hard)
	b = b.Execute(game.Move{From: 3, To: -2, Size: 1})

	want := "Swaps: < > <1> <X> <X>\n" +
		"  8   4   0   5   5   9   6   0\n" +
		"  5   3   2   7   5   8   8   6\n" +
		"  1   0   0   7   3   4   8   2\n" +
		"  4   9   3   1   1   6   3   9\n" +
		"  9   2   2       7   4   6   7\n"
	assert.Equal(t, want, plain().Board(b))
}

func TestBoardCollapsed(t *testing.T) {
	var stacks [game.NumStacks]game.Stack
	for i := range stacks {
		stacks[i] = game.CollapsedStack(game.Card(i))
	}
	stacks[1] = game.NewStack()
	b := game.NewBoard(stacks, [game.NumSwaps]game.Swap{
		game.NewSwap(game.Collapsed, 8),
		game.NewSwap(game.Collapsed, 9),
		game.NewSwap(game.Collapsed, 1),
		game.NewSwap(game.Free, 0),
	})

	want := "Swaps: -8- -9- -1- < >\n" +
		" -0-     -2- -3- -4- -5- -6- -7-\n" +
		" -0-     -2- -3- -4- -5- -6- -7-\n" +
		" -0-     -2- -3- -4- -5- -6- -7-\n" +
		" -0-     -2- -3- -4- -5- -6- -7-\n"
	assert.Equal(t, want, plain().Board(b))
}

func TestColored(t *testing.T) {
	r := New(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI)))
	s := r.Board(game.New(fixture, game.Expert))
	assert.Contains(t, s, "\x1b[")
}

func TestMoves(t *testing.T) {
	moves := []game.Move{{From: 3, To: -1, Size: 1}, {From: 2, To: 4, Size: 2}}
	assert.Equal(t, "  1. 1 card from 3 -> -1\n  2. 2 cards from 2 -> 4\n", plain().Moves(moves))
}
