package baduk

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/baduk/game"
)

// Match is the top level structure: a series of games between two agents.
type Match struct {
	Arena

	games int
}

// Summary aggregates the records of a match.
type Summary struct {
	Games      int
	BlackWins  int
	WhiteWins  int
	Jigo       int
	Failed     int
	MeanScore  float64
	StdScore   float64
	MeanLength float64
	StdLength  float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d games (%d failed): B %d, W %d, jigo %d; score %.2f±%.2f, length %.1f±%.1f",
		s.Games, s.Failed, s.BlackWins, s.WhiteWins, s.Jigo, s.MeanScore, s.StdScore, s.MeanLength, s.StdLength)
}

// NewMatch sets up conf.Games games between black and white.
func NewMatch(conf Config, black, white *Agent, log *zap.SugaredLogger) (*Match, error) {
	arena, err := NewArena(conf, black, white, log)
	if err != nil {
		return nil, err
	}
	black.resetStats()
	white.resetStats()
	return &Match{Arena: *arena, games: conf.Games}, nil
}

// Run plays the games one after the other, checking ctx between games.
// A failing game is logged and skipped; all failures are returned together
// alongside the records of the games that finished.
func (m *Match) Run(ctx context.Context) ([]Record, Summary, error) {
	var records []Record
	var errs error
	for i := 0; i < m.games; i++ {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, errors.WithStack(err))
			break
		}
		rec, err := m.Play()
		if err != nil {
			m.log.Errorw("game failed", "number", m.GameNumber(), "error", err)
			errs = multierror.Append(errs, errors.WithMessagef(err, "game %d", m.GameNumber()))
			continue
		}
		records = append(records, rec)
	}

	sum := Summarize(records)
	sum.Failed = m.GameNumber() - len(records)
	m.log.Infow("match finished", "summary", sum.String())
	return records, sum, errs
}

// Summarize tallies winners and the mean and standard deviation of the final
// scores and game lengths.
func Summarize(records []Record) Summary {
	sum := Summary{Games: len(records)}
	if len(records) == 0 {
		return sum
	}
	scores := make([]float64, len(records))
	lengths := make([]float64, len(records))
	for i, rec := range records {
		switch rec.Winner {
		case game.Black:
			sum.BlackWins++
		case game.White:
			sum.WhiteWins++
		default:
			sum.Jigo++
		}
		scores[i] = float64(rec.Score)
		lengths[i] = float64(len(rec.Moves))
	}
	sum.MeanScore, sum.StdScore = stat.MeanStdDev(scores, nil)
	sum.MeanLength, sum.StdLength = stat.MeanStdDev(lengths, nil)
	if len(records) == 1 {
		sum.StdScore, sum.StdLength = 0, 0
	}
	return sum
}
