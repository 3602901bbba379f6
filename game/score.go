package game

// reach bits recorded while flood filling an empty region
const (
	reachBlack = 1 << Black
	reachWhite = 1 << White
)

// AreaScore returns the Tromp-Taylor area difference minus komi.
// Positive values favour Black.
func (b *Board) AreaScore(komi float32) float32 {
	black, white := b.Area()
	return float32(black-white) - komi
}

// Area counts the points owned by each colour: its stones plus the empty
// regions that border only that colour.
func (b *Board) Area() (black, white int) {
	for _, owner := range b.Ownership() {
		switch owner {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Ownership returns the owner of every intersection in row-major order
// starting at (0, 0). Stones own themselves; an empty region belongs to the
// single colour it touches and is Empty (dame) otherwise.
func (b *Board) Ownership() []Color {
	owner := make([]Color, len(b.state))
	visited := make([]bool, len(b.state))
	region := make([]int, 0, b.size*b.size)

	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			v := b.VertexOf(x, y)
			switch c := b.state[v]; {
			case c.IsStone():
				owner[v] = c
			case visited[v]:
			default:
				var reach int
				region, reach = b.fill(v, visited, region[:0])
				o := Empty
				switch reach {
				case reachBlack:
					o = Black
				case reachWhite:
					o = White
				}
				for _, r := range region {
					owner[r] = o
				}
			}
		}
	}

	retVal := make([]Color, 0, b.size*b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			retVal = append(retVal, owner[b.VertexOf(x, y)])
		}
	}
	return retVal
}

// fill collects the empty region containing start and the stone colours bordering it.
// region doubles as the work stack: vertices before i have been expanded.
func (b *Board) fill(start int, visited []bool, region []int) ([]int, int) {
	var reach int
	visited[start] = true
	region = append(region, start)
	for i := 0; i < len(region); i++ {
		v := region[i]
		for _, d := range b.dirs {
			ai := v + d
			switch c := b.state[ai]; c {
			case Black, White:
				reach |= 1 << c
			case Empty:
				if !visited[ai] {
					visited[ai] = true
					region = append(region, ai)
				}
			}
		}
	}
	return region, reach
}
