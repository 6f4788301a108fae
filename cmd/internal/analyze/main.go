package analyze

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/protobuf/jsonpb"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mancalago/mancala/notation"
	"github.com/mancalago/mancala/rpc"
)

type Command struct {
	addr    string
	board   string
	profile string
	timeout time.Duration
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Ask a Mancala RPC server for a move" }
func (*Command) Usage() string {
	return `analyze [options] [FILE]

Ask a server started with "serve" to choose a move.

By default analyzes the starting position; -board selects a position
in board notation, and FILE analyzes the final position of a game record.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.addr, "addr", "localhost:55430", "server address")
	flags.StringVar(&c.board, "board", "", "position to analyze")
	flags.StringVar(&c.profile, "profile", "", "AI profile to analyze with")
	flags.DurationVar(&c.timeout, "timeout", 10*time.Second, "RPC timeout")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board := c.board
	if flag.NArg() > 0 {
		rec, err := notation.ParseFile(flag.Arg(0))
		if err != nil {
			log.Error().Err(err).Str("file", flag.Arg(0)).Msg("parse record")
			return subcommands.ExitFailure
		}
		p, err := rec.Replay()
		if err != nil {
			log.Error().Err(err).Msg("replay")
			return subcommands.ExitFailure
		}
		board = notation.FormatBoard(p)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	client, err := rpc.Dial(ctx, c.addr)
	if err != nil {
		log.Error().Err(err).Str("addr", c.addr).Msg("dial")
		return subcommands.ExitFailure
	}
	defer client.Close()

	req, err := structpb.NewStruct(map[string]interface{}{
		"board":   board,
		"profile": c.profile,
	})
	if err != nil {
		log.Error().Err(err).Msg("request")
		return subcommands.ExitFailure
	}
	resp, err := client.AnalyzeRaw(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitFailure
	}
	m := jsonpb.Marshaler{Indent: "  "}
	if err := m.Marshal(os.Stdout, resp); err != nil {
		log.Error().Err(err).Msg("marshal")
		return subcommands.ExitFailure
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
