// Command showboard replays a list of moves and prints the resulting position.
//
//	showboard -size 9 -moves "D4 C3 pass E5"
//
// Moves alternate starting with Black. A move may carry an explicit colour
// ("B D4 W C3"), in which case the stone is placed directly and the turn
// order is ignored.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/baduk/game"
	"github.com/baduk/graph"
)

var (
	size      = flag.Int("size", 19, "board size")
	komi      = flag.Float64("komi", 7.5, "komi")
	moves     = flag.String("moves", "", "moves in text coordinates separated by spaces")
	dot       = flag.Bool("dot", false, "print the group graph in Graphviz DOT format instead of the board")
	territory = flag.Bool("territory", false, "print the owner of every point")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s, err := game.NewGoState(*size, float32(*komi))
	if err != nil {
		return err
	}
	if err := replay(s, strings.Fields(*moves)); err != nil {
		return err
	}

	b := s.Board()
	if *dot {
		out, err := graph.DOT(b)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(s)
	if *territory {
		printOwnership(b)
	}
	black, white := b.Area()
	fmt.Printf("Area: Black %d, White %d, komi %.1f\n", black, white, s.Komi())
	fmt.Printf("Score: %.1f (%s)\n", s.Score(), s.Result())
	return nil
}

// replay plays the tokens in order. A "B" or "W" token sets the colour of the
// following stone and bypasses the turn order.
func replay(s *game.GoState, tokens []string) error {
	b := s.Board()
	for i := 0; i < len(tokens); i++ {
		tok := strings.ToUpper(tokens[i])
		var color game.Color
		switch tok {
		case "B":
			color = game.Black
		case "W":
			color = game.White
		default:
			v, err := b.TextToMove(tok)
			if err != nil {
				return err
			}
			if err := s.Apply(game.Move(v)); err != nil {
				return errors.WithMessagef(err, "move %d", i+1)
			}
			continue
		}

		if i+1 == len(tokens) {
			return errors.Errorf("colour %s without a move", tok)
		}
		i++
		v, err := b.TextToMove(tokens[i])
		if err != nil {
			return err
		}
		if !b.IsOnBoard(v) || b.At(v) != game.Empty || b.IsSuicide(v, color) {
			return errors.Wrapf(game.ErrIllegalMove, "%v %s", color, tokens[i])
		}
		b.PlaceStone(color, v)
	}
	return nil
}

func printOwnership(b *game.Board) {
	own := b.Ownership()
	n := b.Size()
	for y := n - 1; y >= 0; y-- {
		fmt.Printf("%2d ", y+1)
		for x := 0; x < n; x++ {
			switch own[y*n+x] {
			case game.Black:
				fmt.Print("X ")
			case game.White:
				fmt.Print("O ")
			default:
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
