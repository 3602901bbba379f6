// Command selfplay plays random games on the board engine and reports how they ended.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/baduk"
)

var (
	configPath = flag.String("config", "", "config file (yaml, json or toml); BADUK_* variables override it")
	games      = flag.Int("games", -1, "number of games to play, overrides the config")
	debug      = flag.Bool("debug", false, "log every game and validate the board after each move")
)

func main() {
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	conf, err := baduk.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}
	if *games >= 0 {
		conf.Games = *games
	}
	if *debug {
		conf.Validate = true
	}

	black := baduk.NewAgent("black", baduk.NewRandomSelector(conf.Seed))
	white := baduk.NewAgent("white", baduk.NewRandomSelector(conf.Seed+1))
	m, err := baduk.NewMatch(conf, black, white, logger)
	if err != nil {
		logger.Fatalw("failed to set up the match", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, sum, err := m.Run(ctx)
	if err != nil {
		logger.Errorw("some games failed", "error", err)
	}

	fmt.Println(sum)
	if len(records) > 0 {
		last := records[len(records)-1]
		fmt.Printf("last game %s: %s after %d moves (margin %.1f)\n", last.ID, last.Result, len(last.Moves), last.Margin())
		fmt.Print(last.Final)
	}
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.SugaredLogger {
	newFn := zap.NewProduction
	if debug {
		newFn = zap.NewDevelopment
	}
	logger, err := newFn()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
