package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mancalago/mancala/mancala"
)

func setup(t *testing.T) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	Register(s, &Server{Seed: 1})
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	c, err := Dial(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestAnalyze(t *testing.T) {
	c := setup(t)
	a, err := c.Analyze(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, mancala.Move{Pit: 2}, a.Move)
	assert.True(t, a.ExtraTurn)
	assert.Equal(t, "4,4,0,5,5,5 1 4,4,4,4,4,4 0 1", a.Board)
	assert.Equal(t, []mancala.Move{{Pit: 2}}, a.FreeTurns)

	a, err = c.Analyze(context.Background(), "0,0,0,0,2,1 0 1,1,1,1,1,1 0 1", mancala.VectorAI)
	require.NoError(t, err)
	assert.Equal(t, mancala.Move{Pit: 5}, a.Move)

	a, err = c.Analyze(context.Background(), "", mancala.RandomAI)
	require.NoError(t, err)
	assert.True(t, a.Move.Pit >= 0 && a.Move.Pit < 6)
}

func TestPlay(t *testing.T) {
	c := setup(t)
	r, err := c.Play(context.Background(), "", mancala.Move{Pit: 0})
	require.NoError(t, err)
	assert.Equal(t, "0,5,5,5,5,4 0 4,4,4,4,4,4 0 2", r.Board)
	assert.False(t, r.ExtraTurn)
	assert.False(t, r.Over)
	assert.Equal(t, "", r.Result)

	r, err = c.Play(context.Background(), "0,0,0,0,0,1 10 1,2,0,0,0,0 5 1", mancala.Move{Pit: 5})
	require.NoError(t, err)
	assert.True(t, r.Over)
	assert.Equal(t, "1-0", r.Result)
	assert.Equal(t, "0,0,0,0,0,0 11 0,0,0,0,0,0 8 2", r.Board)
}

func TestInvalidArgument(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	_, err := c.Analyze(ctx, "not a board", 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Analyze(ctx, "0,0,0 4 0,0,0 4 1", 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Play(ctx, "4000000000000,4,4,4,4,4 0 4,4,4,4,4,4 0 1", mancala.Move{Pit: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	req, err := structpb.NewStruct(map[string]interface{}{"profile": "minimax"})
	require.NoError(t, err)
	_, err = c.AnalyzeRaw(ctx, req)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.PlayRaw(ctx, &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	for _, mv := range []float64{0, 1.5, 7} {
		req, err := structpb.NewStruct(map[string]interface{}{"move": mv})
		require.NoError(t, err)
		_, err = c.PlayRaw(ctx, req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "move=%v", mv)
	}
}
