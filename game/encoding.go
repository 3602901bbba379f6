package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MoveToText encodes a vertex in the usual "D4" notation. Pass and Resign have their own words.
func (b *Board) MoveToText(v int) string {
	switch Move(v) {
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	}
	x, y := b.CoordinatesOf(v)
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return "invalid"
	}
	return string(columnLetter(x)) + strconv.Itoa(y+1)
}

// TextToMove parses the output of MoveToText. Letters are case insensitive.
func (b *Board) TextToMove(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "PASS":
		return int(Pass), nil
	case "RESIGN":
		return int(Resign), nil
	}
	if len(s) < 2 {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q", s)
	}

	col := s[0]
	if col < 'A' || col > 'Z' || col == 'I' {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q has no column", s)
	}
	x := int(col - 'A')
	if col > 'I' {
		x--
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q has no row", s)
	}
	y := row - 1
	if x >= b.size || y < 0 || y >= b.size {
		return 0, errors.Wrapf(ErrBadCoordinate, "%q is off a %dx%d board", s, b.size, b.size)
	}
	return b.VertexOf(x, y), nil
}
