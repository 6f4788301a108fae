package engine

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/engine"
	"github.com/mancalago/mancala/mancala"
)

type Command struct {
	profile string
	seed    int64
}

func (*Command) Name() string     { return "engine" }
func (*Command) Synopsis() string { return "Launch the Mancala AI in engine mode" }
func (*Command) Usage() string {
	return `engine
Launch the engine in a UCI-like mode, suitable for being
driven by an external GUI or controller.`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.profile, "profile", mancala.DefaultAI.String(), "default AI profile")
	fs.Int64Var(&c.seed, "seed", 0, "seed for the random AI")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, err := mancala.ParseProfile(c.profile)
	if err != nil {
		log.Error().Err(err).Msg("bad -profile")
		return subcommands.ExitUsageError
	}
	e := engine.NewEngine(os.Stdin, os.Stdout)
	e.Profile = profile
	e.Seed = c.seed
	if err := e.Run(ctx); err != nil {
		log.Error().Err(err).Msg("engine")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
