package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/mancalago/mancala/rpc"
)

type Command struct {
	port int
	seed int64
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve Mancala analysis RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [-port N]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	flags.Int64Var(&c.seed, "seed", 0, "seed for the random AI")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr := fmt.Sprintf(":%d", c.port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("failed to listen")
		return subcommands.ExitFailure
	}
	grpcServer := grpc.NewServer()
	rpc.Register(grpcServer, &rpc.Server{Seed: c.seed})

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	log.Info().Str("addr", lis.Addr().String()).Msg("listening")
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
