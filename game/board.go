package game

import "github.com/pkg/errors"

const (
	MinSize = 2
	MaxSize = 25

	// neighbour counters pack one 4 bit count per Color
	nbrShift = 4
	nbrMask  = 0xF
)

// Board is an N×N Go board with incrementally maintained groups and liberties.
//
// Vertices index a (size+2)×(size+2) backing array. The outer ring is filled
// with Invalid so that every on-board vertex has four neighbours and no loop
// needs to check bounds.
//
// Groups are circular lists of stones (next) with a representative per stone
// (parent). Liberty and stone counts are stored at the representative. The
// parent of an empty or border vertex is noGroup, a spare slot at the end of
// libs and stones.
type Board struct {
	size   int
	stride int
	dirs   [4]int

	state  []Color
	parent []int
	next   []int
	libs   []int
	stones []int
	nbr    []uint16

	empty    []int
	emptyIdx []int

	prisoners [2]int
	hash      uint64
}

// NewBoard returns an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	b := new(Board)
	if err := b.Reset(size); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset discards the position and reallocates an empty board of the given size.
func (b *Board) Reset(size int) error {
	if size < MinSize || size > MaxSize {
		return errors.Wrapf(ErrInvalidSize, "%d is outside [%d, %d]", size, MinSize, MaxSize)
	}

	stride := size + 2
	n := stride * stride
	b.size = size
	b.stride = stride
	b.dirs = [4]int{-stride, 1, stride, -1}

	b.state = make([]Color, n)
	b.parent = make([]int, n)
	b.next = make([]int, n)
	b.libs = make([]int, n+1)
	b.stones = make([]int, n+1)
	b.nbr = make([]uint16, n)
	b.empty = make([]int, 0, size*size)
	b.emptyIdx = make([]int, n)
	b.prisoners = [2]int{}
	b.hash = 0

	for v := range b.state {
		b.state[v] = Invalid
		b.parent[v] = n
		b.next[v] = v
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := b.VertexOf(x, y)
			b.state[v] = Empty
			b.addEmpty(v)
		}
	}

	// the edge counts as a stone of both colours so eye detection works at the border
	for _, v := range b.empty {
		for _, d := range b.dirs {
			if b.state[v+d] == Invalid {
				b.nbr[v] += nbrUnit(Black) | nbrUnit(White)
			} else {
				b.nbr[v] += nbrUnit(Empty)
			}
		}
	}
	return nil
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// NumVertices returns the length of the backing array, border included.
func (b *Board) NumVertices() int { return len(b.state) }

// VertexOf maps zero based column x and row y to a vertex.
// The sentinel ring (-1 and size) is addressable; anything further out panics.
func (b *Board) VertexOf(x, y int) int {
	assertf(x >= -1 && x <= b.size && y >= -1 && y <= b.size,
		"coordinate (%d, %d) is outside a %dx%d board", x, y, b.size, b.size)
	return (y+1)*b.stride + x + 1
}

// CoordinatesOf is the inverse of VertexOf.
func (b *Board) CoordinatesOf(v int) (x, y int) {
	assertf(v >= 0 && v < len(b.state), "vertex %d is outside the backing array", v)
	return v%b.stride - 1, v/b.stride - 1
}

// At returns the colour at v.
func (b *Board) At(v int) Color { return b.state[v] }

// IsOnBoard returns true if v is a playable intersection.
func (b *Board) IsOnBoard(v int) bool {
	return v >= 0 && v < len(b.state) && b.state[v] != Invalid
}

// PlaceStone puts a stone of the given colour on v, merges it with friendly
// neighbours and removes every neighbouring enemy group left without liberties.
// It returns the number of captured stones.
//
// The move must be legal: v has to be an empty intersection. Suicide is not
// checked here; callers ask IsSuicide first. The placed group is never removed.
func (b *Board) PlaceStone(color Color, v int) int {
	assertf(color.IsStone(), "cannot place a stone of colour %v", color)
	assertf(b.IsOnBoard(v) && b.state[v] == Empty, "vertex %d is not an empty intersection", v)

	b.state[v] = color
	b.parent[v] = v
	b.next[v] = v
	b.libs[v] = b.CountPliberties(v)
	b.stones[v] = 1
	b.hash ^= zobristStones[color][v]
	b.removeEmpty(v)
	b.addNeighbour(v, color)

	var captured int
	opp := color.Opponent()
	for _, d := range b.dirs {
		ai := v + d
		switch b.state[ai] {
		case opp:
			if b.libs[b.parent[ai]] <= 0 {
				captured += b.removeString(ai)
			}
		case color:
			ip, aip := b.parent[v], b.parent[ai]
			if ip == aip {
				continue
			}
			if b.stones[ip] >= b.stones[aip] {
				b.mergeStrings(ip, aip)
			} else {
				b.mergeStrings(aip, ip)
			}
		}
	}
	b.prisoners[color] += captured
	return captured
}

// CountPliberties returns the number of empty neighbours of v (0 for the border).
func (b *Board) CountPliberties(v int) int {
	return int(b.nbr[v]>>(nbrShift*Empty)) & nbrMask
}

// countNeighbours returns how many neighbours of v have the colour c. The edge counts for both stone colours.
func (b *Board) countNeighbours(v int, c Color) int {
	return int(b.nbr[v]>>(nbrShift*uint(c))) & nbrMask
}

// IsSuicide reports whether a stone of the given colour on v would be left
// without liberties once the captures it causes are resolved.
func (b *Board) IsSuicide(v int, color Color) bool {
	assertf(color.IsStone(), "cannot place a stone of colour %v", color)
	assertf(b.IsOnBoard(v) && b.state[v] == Empty, "vertex %d is not an empty intersection", v)

	if b.CountPliberties(v) > 0 {
		return false
	}
	for _, d := range b.dirs {
		ai := v + d
		libs := b.libs[b.parent[ai]]
		switch b.state[ai] {
		case color:
			if libs > 1 {
				return false
			}
		case color.Opponent():
			if libs <= 1 {
				return false
			}
		}
	}
	return true
}

// Liberties returns the exact liberty count of the group at v, or 0 when v holds no stone.
func (b *Board) Liberties(v int) int {
	if !b.state[v].IsStone() {
		return 0
	}
	return b.libs[b.parent[v]]
}

// GroupSize returns the number of stones in the group at v.
func (b *Board) GroupSize(v int) int {
	if !b.state[v].IsStone() {
		return 0
	}
	return b.stones[b.parent[v]]
}

// GroupOf returns the representative vertex of the group at v, or -1 when v holds no stone.
func (b *Board) GroupOf(v int) int {
	if !b.state[v].IsStone() {
		return -1
	}
	return b.parent[v]
}

// Stones lists the vertices of the group at v.
func (b *Board) Stones(v int) []int {
	if !b.state[v].IsStone() {
		return nil
	}
	retVal := make([]int, 0, b.stones[b.parent[v]])
	pos := v
	for {
		retVal = append(retVal, pos)
		pos = b.next[pos]
		if pos == v {
			break
		}
	}
	return retVal
}

// IsEye returns true if v is an empty point surrounded by the colour and not
// falsified by enemy stones on the diagonals.
func (b *Board) IsEye(color Color, v int) bool {
	if b.state[v] != Empty || b.countNeighbours(v, color) != 4 {
		return false
	}
	var counts [4]int
	for _, d := range [4]int{-b.stride - 1, -b.stride + 1, b.stride - 1, b.stride + 1} {
		counts[b.state[v+d]]++
	}
	if counts[Invalid] == 0 {
		return counts[color.Opponent()] <= 1
	}
	return counts[color.Opponent()] == 0
}

// Empties returns the empty intersections in no particular order.
func (b *Board) Empties() []int {
	retVal := make([]int, len(b.empty))
	copy(retVal, b.empty)
	return retVal
}

// EmptyCount returns the number of empty intersections.
func (b *Board) EmptyCount() int { return len(b.empty) }

// Prisoners returns the number of stones captured by the colour.
func (b *Board) Prisoners(color Color) int {
	assertf(color.IsStone(), "no prisoners for colour %v", color)
	return b.prisoners[color]
}

// Hash is the zobrist hash of the stones on the board.
func (b *Board) Hash() uint64 { return b.hash }

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	retVal := &Board{
		size:      b.size,
		stride:    b.stride,
		dirs:      b.dirs,
		state:     append([]Color(nil), b.state...),
		parent:    append([]int(nil), b.parent...),
		next:      append([]int(nil), b.next...),
		libs:      append([]int(nil), b.libs...),
		stones:    append([]int(nil), b.stones...),
		nbr:       append([]uint16(nil), b.nbr...),
		empty:     append(make([]int, 0, cap(b.empty)), b.empty...),
		emptyIdx:  append([]int(nil), b.emptyIdx...),
		prisoners: b.prisoners,
		hash:      b.hash,
	}
	return retVal
}

// Eq returns true if both boards hold the same stones.
func (b *Board) Eq(other *Board) bool {
	if b.size != other.size || b.hash != other.hash {
		return false
	}
	for v := range b.state {
		if b.state[v] != other.state[v] {
			return false
		}
	}
	return true
}

func nbrUnit(c Color) uint16 { return 1 << (nbrShift * uint(c)) }

// addNeighbour updates the neighbour counters around a new stone and takes v
// away once from every distinct adjacent group.
func (b *Board) addNeighbour(v int, color Color) {
	var seen [4]int
	var n int
	for _, d := range b.dirs {
		ai := v + d
		if b.state[ai] == Invalid {
			continue
		}
		b.nbr[ai] += nbrUnit(color)
		b.nbr[ai] -= nbrUnit(Empty)
		if !b.state[ai].IsStone() {
			continue
		}
		p := b.parent[ai]
		if !containsInt(seen[:n], p) {
			b.libs[p]--
			seen[n] = p
			n++
		}
	}
}

// removeNeighbour is the inverse of addNeighbour.
func (b *Board) removeNeighbour(v int, color Color) {
	var seen [4]int
	var n int
	for _, d := range b.dirs {
		ai := v + d
		if b.state[ai] == Invalid {
			continue
		}
		b.nbr[ai] += nbrUnit(Empty)
		b.nbr[ai] -= nbrUnit(color)
		if !b.state[ai].IsStone() {
			continue
		}
		p := b.parent[ai]
		if !containsInt(seen[:n], p) {
			b.libs[p]++
			seen[n] = p
			n++
		}
	}
}

// removeString takes the group at v off the board and returns its size.
func (b *Board) removeString(v int) int {
	color := b.state[v]
	var removed int
	pos := v
	for {
		b.hash ^= zobristStones[color][pos]
		b.state[pos] = Empty
		b.parent[pos] = len(b.state)
		b.removeNeighbour(pos, color)
		b.addEmpty(pos)
		removed++

		pos = b.next[pos]
		if pos == v {
			break
		}
	}
	return removed
}

// mergeStrings folds group aip into group ip, counting only the liberties of aip that ip does not already touch.
func (b *Board) mergeStrings(ip, aip int) {
	b.stones[ip] += b.stones[aip]

	pos := aip
	for {
		for _, d := range b.dirs {
			ai := pos + d
			if b.state[ai] != Empty {
				continue
			}
			shared := false
			for _, dd := range b.dirs {
				if b.parent[ai+dd] == ip {
					shared = true
					break
				}
			}
			if !shared {
				b.libs[ip]++
			}
		}
		b.parent[pos] = ip
		pos = b.next[pos]
		if pos == aip {
			break
		}
	}

	b.next[ip], b.next[aip] = b.next[aip], b.next[ip]
}

func (b *Board) addEmpty(v int) {
	b.emptyIdx[v] = len(b.empty)
	b.empty = append(b.empty, v)
}

func (b *Board) removeEmpty(v int) {
	idx := b.emptyIdx[v]
	last := b.empty[len(b.empty)-1]
	b.empty[idx] = last
	b.emptyIdx[last] = idx
	b.empty = b.empty[:len(b.empty)-1]
}

func containsInt(a []int, v int) bool {
	for _, x := range a {
		if x == v {
			return true
		}
	}
	return false
}
