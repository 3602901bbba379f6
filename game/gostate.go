package game

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

var _ State = (*GoState)(nil)

// GoState is a game of Go played under area scoring with the simple ko rule.
// It is the atomic check-and-play wrapper around a Board.
type GoState struct {
	board    *Board
	komi     float32
	toMove   Color
	moveNum  int
	passes   int
	ko       int
	lastMove Move
	resigned Color
}

// NewGoState starts a game on an empty board. Black moves first.
func NewGoState(size int, komi float32) (*GoState, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &GoState{
		board:    b,
		komi:     komi,
		toMove:   Black,
		ko:       noVertex,
		lastMove: Pass,
		resigned: Empty,
	}, nil
}

func (s *GoState) Board() *Board { return s.board }
func (s *GoState) Turn() Color { return s.toMove }
func (s *GoState) Komi() float32 { return s.komi }
func (s *GoState) MoveNumber() int { return s.moveNum }
func (s *GoState) LastMove() Move { return s.lastMove }
func (s *GoState) Passes() int { return s.passes }
func (s *GoState) Score() float32 { return s.board.AreaScore(s.komi) }

// Ko returns the vertex the side to move may not play on because of the simple ko rule.
func (s *GoState) Ko() (v int, ok bool) {
	return s.ko, s.ko != noVertex
}

// Hash mixes the board hash with the side to move and the ko point.
func (s *GoState) Hash() uint64 {
	h := s.board.Hash()
	if s.toMove == White {
		h ^= zobristWhite
	}
	if s.ko != noVertex {
		h ^= zobristKo[s.ko]
	}
	return h
}

// Ended reports whether the game is over: after two consecutive passes or a
// resignation. The winner is Empty when the area score is exactly zero.
func (s *GoState) Ended() (ended bool, winner Color) {
	if s.resigned != Empty {
		return true, s.resigned.Opponent()
	}
	if s.passes < 2 {
		return false, Empty
	}
	return true, s.Winner()
}

// Winner returns the colour ahead on the board right now, Empty on a jigo.
func (s *GoState) Winner() Color {
	if s.resigned != Empty {
		return s.resigned.Opponent()
	}
	score := s.Score()
	switch {
	case score > 0:
		return Black
	case score < 0:
		return White
	}
	return Empty
}

// Result formats the outcome the usual way: "B+3.5", "W+R" or "0" for a jigo.
func (s *GoState) Result() string {
	winner := s.Winner()
	if winner == Empty {
		return "0"
	}
	prefix := "B+"
	if winner == White {
		prefix = "W+"
	}
	if s.resigned != Empty {
		return prefix + "R"
	}
	return fmt.Sprintf("%s%.1f", prefix, math32.Abs(s.Score()))
}

// Resign ends the game in favour of the other colour.
func (s *GoState) Resign(color Color) {
	assertf(color.IsStone(), "colour %v cannot resign", color)
	s.resigned = color
	s.lastMove = Resign
	s.moveNum++
}

// Check returns true if m is legal for the side to move.
func (s *GoState) Check(m Move) bool {
	if ended, _ := s.Ended(); ended {
		return false
	}
	switch m {
	case Pass, Resign:
		return true
	}
	v := int(m)
	if !s.board.IsOnBoard(v) || s.board.At(v) != Empty || v == s.ko {
		return false
	}
	return !s.board.IsSuicide(v, s.toMove)
}

// Apply plays m for the side to move and hands the turn over.
func (s *GoState) Apply(m Move) error {
	if ended, _ := s.Ended(); ended {
		return errors.Wrapf(ErrGameOver, "%v cannot play %s", s.toMove, s.moveText(m))
	}
	if !s.Check(m) {
		return errors.Wrapf(ErrIllegalMove, "%v %s", s.toMove, s.moveText(m))
	}

	switch m {
	case Pass:
		s.passes++
		s.ko = noVertex
	case Resign:
		s.Resign(s.toMove)
		return nil
	default:
		v := int(m)
		opp := s.toMove.Opponent()
		eyeplay := s.board.countNeighbours(v, opp) == 4
		captured := s.board.PlaceStone(s.toMove, v)

		s.ko = noVertex
		if captured == 1 && eyeplay {
			// the lone capture left the only empty point next to the new stone
			for _, d := range s.board.dirs {
				if s.board.At(v+d) == Empty {
					s.ko = v + d
					break
				}
			}
		}
		s.passes = 0
	}

	s.lastMove = m
	s.moveNum++
	s.toMove = s.toMove.Opponent()
	return nil
}

// Reset clears the board and starts again with Black to move.
func (s *GoState) Reset() {
	if err := s.board.Reset(s.board.Size()); err != nil {
		panic(err)
	}
	s.toMove = Black
	s.moveNum = 0
	s.passes = 0
	s.ko = noVertex
	s.lastMove = Pass
	s.resigned = Empty
}

// PossibleMoves lists the legal moves in row-major order followed by Pass.
// Resign is always legal and therefore left out.
func (s *GoState) PossibleMoves() []Move {
	if ended, _ := s.Ended(); ended {
		return nil
	}
	size := s.board.Size()
	retVal := make([]Move, 0, s.board.EmptyCount()+1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			m := Move(s.board.VertexOf(x, y))
			if s.Check(m) {
				retVal = append(retVal, m)
			}
		}
	}
	return append(retVal, Pass)
}

// Eq compares positions, side to move, ko point and komi.
func (s *GoState) Eq(other State) bool {
	o, ok := other.(*GoState)
	if !ok {
		return false
	}
	return s.komi == o.komi &&
		s.toMove == o.toMove &&
		s.ko == o.ko &&
		s.resigned == o.resigned &&
		s.board.Eq(o.board)
}

// Clone returns an independent copy of the game.
func (s *GoState) Clone() State {
	retVal := *s
	retVal.board = s.board.Clone()
	return &retVal
}

func (s *GoState) String() string {
	last := noVertex
	if s.lastMove >= 0 {
		last = int(s.lastMove)
	}
	var buf strings.Builder
	buf.WriteString(s.board.serialize(last))
	fmt.Fprintf(&buf, "Passes: %d\n", s.passes)
	fmt.Fprintf(&buf, "Black (X) Prisoners: %d\n", s.board.Prisoners(Black))
	fmt.Fprintf(&buf, "White (O) Prisoners: %d\n", s.board.Prisoners(White))
	fmt.Fprintf(&buf, "%v (%c) to move\n", s.toMove, s.toMove.glyph())
	return buf.String()
}

func (s *GoState) moveText(m Move) string {
	if m != Pass && m != Resign && !s.board.IsOnBoard(int(m)) {
		return fmt.Sprintf("vertex %d", int(m))
	}
	return s.board.MoveToText(int(m))
}
