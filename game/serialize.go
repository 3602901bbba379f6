package game

import (
	"fmt"
	"strings"
)

// noVertex marks the absence of a vertex, e.g. no last move to highlight.
const noVertex = -1

// SerializeBoard renders the position as text: column letters on top and
// bottom, rows from the highest down to 1 with their number on both sides.
// Empty star points are drawn as '+'.
func (b *Board) SerializeBoard() string { return b.serialize(noVertex) }

func (b *Board) String() string { return b.SerializeBoard() }

// serialize renders the board and wraps lastMove in parentheses.
func (b *Board) serialize(lastMove int) string {
	var buf strings.Builder
	buf.WriteString("\n   ")
	b.writeColumns(&buf)
	buf.WriteString("\n")

	for y := b.size - 1; y >= 0; y-- {
		fmt.Fprintf(&buf, "%2d", y+1)
		if lastMove == b.VertexOf(0, y) {
			buf.WriteByte('(')
		} else {
			buf.WriteByte(' ')
		}
		for x := 0; x < b.size; x++ {
			v := b.VertexOf(x, y)
			c := b.state[v]
			if c == Empty && IsStarPoint(b.size, x, y) {
				buf.WriteByte('+')
			} else {
				buf.WriteByte(c.glyph())
			}

			switch {
			case lastMove == v:
				buf.WriteByte(')')
			case x != b.size-1 && lastMove == v+1:
				buf.WriteByte('(')
			default:
				buf.WriteByte(' ')
			}
		}
		fmt.Fprintf(&buf, "%2d\n", y+1)
	}

	buf.WriteString("   ")
	b.writeColumns(&buf)
	buf.WriteString("\n\n")
	return buf.String()
}

func (b *Board) writeColumns(buf *strings.Builder) {
	for x := 0; x < b.size; x++ {
		buf.WriteByte(columnLetter(x) + 'a' - 'A')
		buf.WriteByte(' ')
	}
}

// columnLetter returns the upper case letter of column x. 'I' is skipped.
func columnLetter(x int) byte {
	if x >= 'I'-'A' {
		return byte('A' + x + 1)
	}
	return byte('A' + x)
}

// IsStarPoint reports whether (x, y) is a hoshi on a board of the given size.
// Only odd boards of size 9 and up have star points: every intersection whose
// row and column are both among the third (fourth from 13x13 up) line from
// either edge and the centre line.
func IsStarPoint(size, x, y int) bool {
	if size%2 == 0 || size < 9 {
		return false
	}
	edge := 2
	if size >= 13 {
		edge = 3
	}
	lines := [3]int{edge, size / 2, size - 1 - edge}
	onLine := func(p int) bool {
		for _, l := range lines {
			if p == l {
				return true
			}
		}
		return false
	}
	return onLine(x) && onLine(y)
}
