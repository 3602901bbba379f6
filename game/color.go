package game

// Color is the content of a vertex.
// The numeric values double as shifts into the packed neighbour counters,
// so Black and White must stay 0 and 1.
type Color uint8

const (
	Black Color = iota
	White
	Empty
	Invalid // off-board sentinel
)

// Opponent returns the other player's colour. Empty and Invalid map to themselves.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return c
}

// IsStone returns true for Black and White.
func (c Color) IsStone() bool { return c == Black || c == White }

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	case Invalid:
		return "Invalid"
	}
	return "UNKNOWN COLOR"
}

// glyph is the character used by the text rendering.
func (c Color) glyph() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}
