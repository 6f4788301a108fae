package history

import (
	"context"
	"flag"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mancalago/mancala/logs"
)

type Command struct {
	db     string
	n      int
	player string
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List logged games and player stats" }
func (*Command) Usage() string {
	return `history -db GAMES.db [-n N] [-player NAME]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite game log")
	flags.IntVar(&c.n, "n", 20, "number of games to list")
	flags.StringVar(&c.player, "player", "", "print stats for this player")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Error().Msg("must supply -db")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Error().Err(err).Str("db", c.db).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()
	if err := Print(os.Stdout, repo, c.n, c.player); err != nil {
		log.Error().Err(err).Msg("history")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Print lists the last n games of repo and, if player is set, that
// player's totals.
func Print(w io.Writer, repo *logs.Repository, n int, player string) error {
	gs, err := repo.RecentGames(n)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	p.Fprintf(tw, "id\ttime\tboard\tplayer1\tplayer2\tresult\tscore\tmoves\n")
	for _, g := range gs {
		p.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t%s\t%s\t%d-%d\t%d\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04"),
			g.Pits, g.Seeds, g.Player1, g.Player2,
			g.Result, g.Score1, g.Score2, g.Moves)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if player == "" {
		return nil
	}
	st, err := repo.PlayerStats(player)
	if err != nil {
		return err
	}
	p.Fprintf(w, "\n%s: %d games, %d wins, %d losses, %d ties, %.1f seeds/game\n",
		player, st.Games, st.Wins, st.Losses, st.Ties, st.AvgScore)
	return nil
}
