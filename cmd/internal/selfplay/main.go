package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mancalago/mancala/cmd/internal/play"
	"github.com/mancalago/mancala/logs"
	"github.com/mancalago/mancala/mancala"
)

type Command struct {
	pits  int
	seeds int
	p1    string
	p2    string
	seed  int64

	games int
	swap  bool

	limit   time.Duration
	threads int

	out     string
	summary string
	db      string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.pits, "pits", mancala.DefaultPits, "pits per side")
	flags.IntVar(&c.seeds, "seeds", mancala.DefaultSeeds, "seeds per pit")
	flags.StringVar(&c.p1, "p1", "vector", "player1 AI profile")
	flags.StringVar(&c.p2, "p2", "random", "player2 AI profile")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per seat")
	flags.BoolVar(&c.swap, "swap", true, "swap seats each game")
	flags.DurationVar(&c.limit, "limit", 0, "time limit per move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel games")
	flags.StringVar(&c.out, "out", "", "directory to write game records to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "log games to a sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	p1, err := play.ParseSelector(c.p1, 0)
	if err != nil || p1.Kind != mancala.Computer {
		log.Error().Err(err).Str("p1", c.p1).Msg("p1 must be an AI profile")
		return subcommands.ExitUsageError
	}
	p2, err := play.ParseSelector(c.p2, 0)
	if err != nil || p2.Kind != mancala.Computer {
		log.Error().Err(err).Str("p2", c.p2).Msg("p2 must be an AI profile")
		return subcommands.ExitUsageError
	}
	board := mancala.Config{Pits: c.pits, Seeds: c.seeds}
	if err := board.Valid(); err != nil || c.pits < 1 || c.seeds < 1 {
		log.Error().Err(err).Int("pits", c.pits).Int("seeds", c.seeds).Msg("bad board size")
		return subcommands.ExitUsageError
	}
	if p1.Name == "" {
		p1.Name = p1.Profile.String()
	}
	if p2.Name == "" {
		p2.Name = p2.Profile.String()
	}

	cfg := &Config{
		Games:   c.games,
		Verbose: c.verbose,
		P1:      p1,
		P2:      p2,
		Board:   board,
		Swap:    c.swap,
		Threads: c.threads,
		Seed:    c.seed,
		Limit:   c.limit,
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("simulate")
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		if err := os.MkdirAll(c.out, 0755); err != nil {
			log.Error().Err(err).Msg("mkdir")
			return subcommands.ExitFailure
		}
		for i := range st.Games {
			if err := writeGame(c.out, &st.Games[i]); err != nil {
				log.Error().Err(err).Msg("write game")
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}
	if c.db != "" {
		if err := logGames(c.db, &st); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("log games")
			return subcommands.ExitFailure
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.seed).
		Int("ties", st.Ties).
		Int("first", st.First).
		Int("second", st.Second).
		Msg("done")
	report(os.Stderr, cfg, &st)
	return subcommands.ExitSuccess
}

func report(w io.Writer, cfg *Config, st *Stats) {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	p.Fprintf(tw, "\tfirst\tsecond\tsum\tseeds\n")
	for i, sel := range []string{cfg.P1.Name, cfg.P2.Name} {
		ps := st.Players[i]
		p.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", sel, ps.FirstWins, ps.SecondWins, ps.Wins, ps.Seeds)
	}
	p.Fprintf(tw, "sum\t%d\t%d\t%d\t\n", st.First, st.Second, st.First+st.Second)
	tw.Flush()
}

func writeGame(d string, r *Result) error {
	p := path.Join(d, fmt.Sprintf("%d.txt", r.Index))
	return os.WriteFile(p, []byte(r.Record.Render()), 0644)
}

func logGames(db string, st *Stats) error {
	repo, err := logs.Open(db)
	if err != nil {
		return err
	}
	defer repo.Close()
	now := time.Now()
	gs := make([]*logs.Game, 0, len(st.Games))
	for _, r := range st.Games {
		gs = append(gs, logs.NewGame(r.Match, r.Record, now))
	}
	return repo.InsertGames(gs)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Pits    int
	Seeds   int
	Seed    int64
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Pits:    c.pits,
		Seeds:   c.seeds,
		Seed:    c.seed,
		Limit:   c.limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
