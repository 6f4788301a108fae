package play

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/engine"
	"github.com/mancalago/mancala/logs"
	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
)

type Command struct {
	p1    string
	p2    string
	pits  int
	seeds int
	seed  int64
	limit time.Duration
	out   string
	db    string
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Mancala from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Mancala on the command-line, against a human or AI.
Players are "human", an AI profile ("vector", "random"), or
"exec:COMMAND" to run an external engine speaking the engine protocol.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "player one")
	flags.StringVar(&c.p2, "p2", "vector", "player two")
	flags.IntVar(&c.pits, "pits", mancala.DefaultPits, "pits per side")
	flags.IntVar(&c.seeds, "seeds", mancala.DefaultSeeds, "seeds per pit")
	flags.Int64Var(&c.seed, "seed", 0, "seed for the random AI")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.StringVar(&c.out, "out", "", "write the game record to file")
	flags.StringVar(&c.db, "db", "", "log the game to a sqlite database")
}

// ParseSelector turns a player flag into a seat selector. An optional
// ":name" suffix names the seat.
func ParseSelector(s string, seed int64) (match.Selector, error) {
	kind, name, _ := strings.Cut(s, ":")
	if strings.EqualFold(strings.TrimSpace(kind), mancala.Human.String()) {
		sel := match.Human()
		sel.Name = name
		return sel, nil
	}
	profile, err := mancala.ParseProfile(kind)
	if err != nil {
		return match.Selector{}, err
	}
	sel := match.Computer(profile)
	sel.Name = name
	sel.Seed = seed
	return sel, nil
}

// seat parses a player flag, starting an external engine for "exec:".
func seat(s string, seed int64) (match.Selector, func(), error) {
	cmdline, ok := strings.CutPrefix(s, "exec:")
	if !ok {
		sel, err := ParseSelector(s, seed)
		return sel, func() {}, err
	}
	cl, err := engine.Start(strings.Fields(cmdline))
	if err != nil {
		return match.Selector{}, nil, err
	}
	sel := match.Selector{Kind: mancala.Computer, Name: cl.Name, Player: cl}
	return sel, func() {
		if err := cl.Close(); err != nil {
			log.Warn().Err(err).Str("engine", cmdline).Msg("close")
		}
	}, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p1, close1, err := seat(c.p1, c.seed)
	if err != nil {
		log.Error().Err(err).Str("flag", "p1").Msg("bad player")
		return subcommands.ExitUsageError
	}
	defer close1()
	p2, close2, err := seat(c.p2, c.seed+1)
	if err != nil {
		log.Error().Err(err).Str("flag", "p2").Msg("bad player")
		return subcommands.ExitUsageError
	}
	defer close2()
	board := mancala.Config{Pits: c.pits, Seeds: c.seeds}
	if err := board.Valid(); err != nil || c.pits < 1 || c.seeds < 1 {
		log.Error().Err(err).Int("pits", c.pits).Int("seeds", c.seeds).Msg("bad board size")
		return subcommands.ExitUsageError
	}

	m, err := match.New(match.Config{
		Player1: p1,
		Player2: p2,
		Board:   board,
		In:      os.Stdin,
		Out:     os.Stdout,
		Limit:   c.limit,
	})
	if err != nil {
		log.Error().Err(err).Msg("new match")
		return subcommands.ExitFailure
	}
	if err := m.HandleNextMove(ctx); err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}

	rec, err := m.Record()
	if err != nil {
		log.Error().Err(err).Msg("record")
		return subcommands.ExitFailure
	}
	if c.out != "" {
		if err := os.WriteFile(c.out, []byte(rec.Render()), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write record")
			return subcommands.ExitFailure
		}
	}
	if c.db != "" {
		r, _ := m.Result()
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("open log")
			return subcommands.ExitFailure
		}
		defer repo.Close()
		g := logs.NewGame(r, rec, time.Now())
		if err := repo.InsertGame(g); err != nil {
			log.Error().Err(err).Msg("log game")
			return subcommands.ExitFailure
		}
		log.Debug().Int64("game", g.ID).Msg("logged")
	}
	return subcommands.ExitSuccess
}
