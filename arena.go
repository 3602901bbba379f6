package baduk

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/baduk/game"
)

// Arena represents a game arena: two agents and the board they play on.
type Arena struct {
	game         *game.GoState
	black, white *Agent
	conf         Config
	log          *zap.SugaredLogger

	// state
	currentPlayer *Agent
	gameNumber    int
}

// NewArena seats black and white at a fresh board described by conf.
func NewArena(conf Config, black, white *Agent, log *zap.SugaredLogger) (*Arena, error) {
	if err := conf.IsValid(); err != nil {
		return nil, err
	}
	g, err := game.NewGoState(conf.BoardSize, conf.Komi)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if conf.Name == "" {
		conf.Name = "UNKNOWN GAME"
	}
	black.Player = game.Black
	white.Player = game.White
	return &Arena{
		game:  g,
		black: black,
		white: white,
		conf:  conf,
		log:   log.With("arena", conf.Name),
	}, nil
}

// Play plays one game to the end, or until the move limit, and records who
// won. The board is reset afterwards so the arena can be reused.
func (a *Arena) Play() (Record, error) {
	defer a.game.Reset()
	a.gameNumber++
	a.currentPlayer = a.black

	rec := Record{ID: uuid.New()}
	log := a.log.With("game", rec.ID.String(), "number", a.gameNumber)
	log.Debugw("game started", "size", a.conf.BoardSize, "komi", a.conf.Komi)

	limit := a.conf.maxMoves()
	var ended bool
	var winner game.Color
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		if a.game.MoveNumber() >= limit {
			log.Infow("move limit reached", "limit", limit)
			winner = a.game.Winner()
			break
		}

		best := a.currentPlayer.Search(a.game)
		text := a.game.Board().MoveToText(int(best))
		if err := a.game.Apply(best); err != nil {
			return rec, errors.WithMessagef(err, "%s (%v) at move %d", a.currentPlayer.Name(), a.currentPlayer.Player, a.game.MoveNumber()+1)
		}
		rec.Moves = append(rec.Moves, text)

		if a.conf.Validate {
			if err := a.game.Board().Validate(); err != nil {
				return rec, errors.WithMessagef(err, "after %s at move %d", text, a.game.MoveNumber())
			}
		}
		a.switchPlayer()
	}

	rec.Score = a.game.Score()
	rec.Result = a.game.Result()
	rec.Winner = winner
	rec.Final = a.game.String()
	a.black.record(winner)
	a.white.record(winner)

	log.Infow("game over", "result", rec.Result, "moves", len(rec.Moves))
	return rec, nil
}

// GameNumber returns the number of games played so far.
func (a *Arena) GameNumber() int { return a.gameNumber }

// Name of the game
func (a *Arena) Name() string { return a.conf.Name }

// State of the game
func (a *Arena) State() game.State { return a.game }

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.black:
		a.currentPlayer = a.white
	case a.white:
		a.currentPlayer = a.black
	}
}
