package game

// Move is a vertex to play on, or one of the special moves below.
type Move int

const (
	Pass   Move = -1
	Resign Move = -2
)

// IsPass returns true for Pass.
func (m Move) IsPass() bool { return m == Pass }

// IsResignation returns true for Resign.
func (m Move) IsResignation() bool { return m == Resign }

// State is the game as seen by whatever drives it: a search, a protocol
// front end or the arena.
type State interface {
	// These methods represent the game state
	Board() *Board   // the position; callers must not mutate it
	Turn() Color     // colour to move next
	Komi() float32   // compensation subtracted from Black's area
	MoveNumber() int // number of moves, passes included, played so far
	LastMove() Move  // Pass before the first move
	Hash() uint64    // position, side to move and ko point

	// Meta-game stuff
	Ended() (ended bool, winner Color) // winner is Empty on a jigo
	Score() float32                    // area score with komi, positive for Black
	Resign(color Color)                // the colour gives up

	// interactions
	Check(m Move) bool     // is the move legal for the side to move?
	Apply(m Move) error    // plays a legal move for the side to move
	Reset()                // empty board, same size and komi
	PossibleMoves() []Move // legal moves for the side to move, Pass last

	// generics
	Eq(other State) bool
	Clone() State
	String() string
}
