// Package parse reads puzzle layouts and difficulty names.
//
// A puzzle is written as game.InitialDepth rows of game.NumStacks digits separated by
// white space. Column i is stack i and the first row holds the bottom cards:
//
//	8 4 0 5 5 9 6 0
//	5 3 2 7 5 8 8 6
//	1 0 0 7 3 4 8 2
//	4 9 3 1 1 6 3 9
//	9 2 2 1 7 4 6 7
//
// Empty lines and lines starting with '#' are ignored.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kabufuda/solver/internal/game"
)

// ErrUnknownDifficulty is returned for a difficulty name that names no tier.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseError reports malformed puzzle text.
type ParseError struct {
	Line int // 1-based, 0 if not tied to a line
	Col  int // 1-based field number, 0 if not tied to a field
	Msg  string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return "parse: " + e.Msg
	case e.Col == 0:
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("parse: line %d, field %d: %s", e.Line, e.Col, e.Msg)
	}
}

// Layout reads a puzzle layout from r.
func Layout(r io.Reader) (game.Layout, error) {
	var layout game.Layout
	row := 0
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if row == game.InitialDepth {
			return layout, &ParseError{Line: line, Msg: fmt.Sprintf("more than %d rows", game.InitialDepth)}
		}
		fields := strings.Fields(text)
		if len(fields) != game.NumStacks {
			return layout, &ParseError{Line: line, Msg: fmt.Sprintf("expected %d cards, found %d", game.NumStacks, len(fields))}
		}
		for col, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= game.NumSuits {
				return layout, &ParseError{Line: line, Col: col + 1, Msg: fmt.Sprintf("invalid card %q", f)}
			}
			layout[col][row] = game.NewCard(v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return layout, err
	}
	if row != game.InitialDepth {
		return layout, &ParseError{Msg: fmt.Sprintf("expected %d rows, found %d", game.InitialDepth, row)}
	}
	return layout, nil
}

// Board reads a puzzle from r and deals it at difficulty d.
// A layout breaking the card count invariants yields a *game.InvalidError.
func Board(r io.Reader, d game.Difficulty) (game.Board, error) {
	layout, err := Layout(r)
	if err != nil {
		return game.Board{}, err
	}
	b := game.New(layout, d)
	if err := b.Validate(); err != nil {
		return game.Board{}, err
	}
	return b, nil
}

// Difficulty returns the tier named name (easy, normal, hard or expert, case insensitive).
func Difficulty(name string) (game.Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range game.Difficulties {
		if d.String() == name {
			return d, nil
		}
	}
	return game.Expert, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
