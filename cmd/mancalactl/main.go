package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/cmd/internal/analyze"
	"github.com/mancalago/mancala/cmd/internal/engine"
	"github.com/mancalago/mancala/cmd/internal/history"
	"github.com/mancalago/mancala/cmd/internal/importrec"
	"github.com/mancalago/mancala/cmd/internal/play"
	"github.com/mancalago/mancala/cmd/internal/selfplay"
	"github.com/mancalago/mancala/cmd/internal/serve"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&engine.Command{}, "")
	subcommands.Register(&serve.Command{}, "rpc")
	subcommands.Register(&analyze.Command{}, "rpc")
	subcommands.Register(&history.Command{}, "logs")
	subcommands.Register(&importrec.Command{}, "logs")

	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
