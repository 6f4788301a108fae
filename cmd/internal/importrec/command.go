package importrec

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/logs"
	"github.com/mancalago/mancala/notation"
)

type Command struct {
	db string
}

func (*Command) Name() string     { return "import" }
func (*Command) Synopsis() string { return "Import game records into a sqlite game log" }
func (*Command) Usage() string {
	return `import -db GAMES.db FILE...`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite game log")
}

const ReportInterval = 1000

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" || flag.NArg() == 0 {
		log.Error().Msg("must supply -db and at least one record")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Error().Err(err).Str("db", c.db).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	n, err := Import(repo, flag.Args())
	log.Info().Int("games", n).Msg("imported")
	if err != nil {
		log.Error().Err(err).Msg("import")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Import logs every finished game among paths in one transaction.
// Unreadable or unfinished records are skipped with a warning.
func Import(repo *logs.Repository, paths []string) (int, error) {
	var gs []*logs.Game
	for i, path := range paths {
		g, err := importOne(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("could not import")
			continue
		}
		gs = append(gs, g)
		if (i+1)%ReportInterval == 0 {
			log.Info().Int("files", i+1).Msg("reading")
		}
	}
	if err := repo.InsertGames(gs); err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	return len(gs), nil
}

func importOne(path string) (*logs.Game, error) {
	rec, err := notation.ParseFile(path)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return logs.FromRecord(rec, st.ModTime())
}
