// Package render draws boards and moves for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/kabufuda/solver/internal/game"
)

// suitColors maps each card value to an ANSI color.
var suitColors = [game.NumSuits]string{"9", "10", "11", "12", "13", "14", "1", "2", "3", "5"}

// Renderer formats boards and moves on an output, coloring cards by suit.
type Renderer struct {
	out *termenv.Output
}

// New returns a renderer using the color profile of out.
func New(out *termenv.Output) *Renderer { return &Renderer{out: out} }

func (r *Renderer) card(c game.Card, format string) string {
	return r.out.String(fmt.Sprintf(format, c)).Foreground(r.out.Color(suitColors[c])).String()
}

func (r *Renderer) swap(s game.Swap) string {
	c, _ := s.Card()
	switch s.State() {
	case game.Locked:
		return r.out.String("<X>").Faint().String()
	case game.Free:
		return "< >"
	case game.Occupied:
		return r.card(c, "<%d>")
	default:
		return r.out.String(fmt.Sprintf("-%d-", c)).Foreground(r.out.Color(suitColors[c])).Bold().String()
	}
}

// Board returns a multi-line drawing of b: the swap fields, then the stacks as columns.
func (r *Renderer) Board(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("Swaps:")
	for i := 0; i < game.NumSwaps; i++ {
		sb.WriteByte(' ')
		sb.WriteString(r.swap(b.Swap(i)))
	}
	sb.WriteByte('\n')

	for row := 0; row < b.MaxDepth(); row++ {
		var line strings.Builder
		for i := 0; i < game.NumStacks; i++ {
			s := b.Stack(i)
			line.WriteByte(' ')
			switch {
			case row >= s.Len():
				line.WriteString("   ")
			case s.Collapsed():
				line.WriteString(r.out.String(fmt.Sprintf("-%d-", s.Cards()[row])).Bold().String())
			default:
				line.WriteString(r.card(s.Cards()[row], " %d "))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Move returns a one-line description of m.
func (r *Renderer) Move(m game.Move) string { return m.String() }

// Moves returns a numbered list of moves, one per line.
func (r *Renderer) Moves(moves []game.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, r.Move(m))
	}
	return sb.String()
}
