package baduk

import (
	"math/rand"
	"sync"

	"github.com/baduk/game"
)

// An Agent is a player seated in the Arena.
type Agent struct {
	Selector MoveSelector
	Player   game.Color

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name string
}

// NewAgent returns an agent that plays the moves chosen by sel.
func NewAgent(name string, sel MoveSelector) *Agent {
	return &Agent{
		Selector: sel,
		Player:   game.Empty,
		name:     name,
	}
}

// Name of the agent.
func (a *Agent) Name() string { return a.name }

// Search returns the agent's move for the side to move.
func (a *Agent) Search(s game.State) game.Move {
	return a.Selector.Select(s)
}

// Stats returns a consistent snapshot of the tallies.
func (a *Agent) Stats() (wins, loss, draw float32) {
	a.Lock()
	defer a.Unlock()
	return a.Wins, a.Loss, a.Draw
}

func (a *Agent) record(winner game.Color) {
	a.Lock()
	switch winner {
	case game.Empty:
		a.Draw++
	case a.Player:
		a.Wins++
	default:
		a.Loss++
	}
	a.Unlock()
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}

// RandomSelector plays a uniformly random legal move that does not fill one
// of its own eyes, and passes when there is none left.
type RandomSelector struct {
	r *rand.Rand
}

// NewRandomSelector seeds a RandomSelector. Equal seeds replay equal games.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{r: rand.New(rand.NewSource(seed))}
}

func (rs *RandomSelector) Select(s game.State) game.Move {
	b := s.Board()
	me := s.Turn()
	candidates := b.Empties()
	for len(candidates) > 0 {
		i := rs.r.Intn(len(candidates))
		v := candidates[i]
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		if b.IsEye(me, v) {
			continue
		}
		if m := game.Move(v); s.Check(m) {
			return m
		}
	}
	return game.Pass
}
