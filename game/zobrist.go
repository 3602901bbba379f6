package game

const maxVertices = (MaxSize + 2) * (MaxSize + 2)

// zobrist keys are shared by every board. They are filled once in init and only read afterwards.
var (
	zobristStones [2][maxVertices]uint64
	zobristKo     [maxVertices]uint64
	zobristWhite  uint64
)

func init() {
	rng := splitmix64{state: 0x9e3779b97f4a7c15}
	for c := range zobristStones {
		for v := range zobristStones[c] {
			zobristStones[c][v] = rng.nonzero()
		}
	}
	for v := range zobristKo {
		zobristKo[v] = rng.nonzero()
	}
	zobristWhite = rng.nonzero()
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// nonzero avoids keys that would vanish under XOR.
func (s *splitmix64) nonzero() uint64 {
	v := s.next()
	for v == 0 {
		v = s.next()
	}
	return v
}
