package game

import "github.com/pkg/errors"

var (
	ErrInvalidSize   = errors.New("unsupported board size")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game has ended")
	ErrBadCoordinate = errors.New("bad coordinate")
	ErrInconsistent  = errors.New("board state is inconsistent")
)

// assertf panics when a caller breaks the board contract.
// The board is never left half-mutated: every check runs before the first write.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf(format, args...))
	}
}
