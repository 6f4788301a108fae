package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
)

const banner = "Welcome to Mancala!"

type game interface {
	HandleNextMove(ctx context.Context) error
}

var newMatch = func(cfg match.Config) (game, error) {
	return match.New(cfg)
}

// run greets the player and plays one game of human against the vector
// AI on in and out.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)
	g, err := newMatch(match.Config{
		Player1: match.Human(),
		Player2: match.Computer(mancala.VectorAI),
		In:      in,
		Out:     out,
	})
	if err != nil {
		return err
	}
	return g.HandleNextMove(ctx)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("mancala")
	}
}
