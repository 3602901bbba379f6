package baduk

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/baduk/game"
)

// ErrInvalidConfig is returned when a Config cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// Config for a series of games.
type Config struct {
	Name      string  `json:"name" mapstructure:"name"`
	BoardSize int     `json:"board_size" mapstructure:"board_size"`
	Komi      float32 `json:"komi" mapstructure:"komi"`
	// games longer than this are stopped and scored as they stand; 0 means size*size*3
	MaxMoves int   `json:"max_moves" mapstructure:"max_moves"`
	Games    int   `json:"games" mapstructure:"games"`
	Seed     int64 `json:"seed" mapstructure:"seed"`

	// Validate rechecks the whole board after every move. Slow; meant for debugging.
	Validate bool `json:"validate" mapstructure:"validate"`
}

// DefaultConfig is a 9x9 game with 7.5 komi.
func DefaultConfig() Config {
	return Config{
		Name:      "baduk",
		BoardSize: 9,
		Komi:      7.5,
		Games:     10,
		Seed:      1,
	}
}

// IsValid returns nil when the config is usable, otherwise an error wrapping ErrInvalidConfig.
func (c Config) IsValid() error {
	switch {
	case c.BoardSize < game.MinSize || c.BoardSize > game.MaxSize:
		return errors.Wrapf(ErrInvalidConfig, "board size %d outside [%d, %d]", c.BoardSize, game.MinSize, game.MaxSize)
	case c.MaxMoves < 0:
		return errors.Wrapf(ErrInvalidConfig, "max moves %d", c.MaxMoves)
	case c.Games < 0:
		return errors.Wrapf(ErrInvalidConfig, "games %d", c.Games)
	}
	return nil
}

func (c Config) maxMoves() int {
	if c.MaxMoves > 0 {
		return c.MaxMoves
	}
	return c.BoardSize * c.BoardSize * 3
}

// MoveSelector picks the next move for the side to move. It must return a
// move that is legal in s; Pass is always acceptable.
type MoveSelector interface {
	Select(s game.State) game.Move
}

// Record is the outcome of a single game played in the Arena.
type Record struct {
	ID     uuid.UUID
	Moves  []string // in text coordinates
	Score  float32  // area score with komi, positive for Black
	Result string
	Winner game.Color // Empty on a jigo
	Final  string     // rendering of the final position
}

// Margin returns the absolute winning margin of a scored game.
func (r Record) Margin() float32 { return math32.Abs(r.Score) }
