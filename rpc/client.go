package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mancalago/mancala/mancala"
)

type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to a mancala.Engine server without transport security.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) AnalyzeRaw(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, analyzeMethod, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PlayRaw(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, playMethod, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

type Analysis struct {
	Move      mancala.Move
	ExtraTurn bool
	Board     string
	FreeTurns []mancala.Move
}

func (c *Client) Analyze(ctx context.Context, board string, profile mancala.Profile) (*Analysis, error) {
	req := map[string]interface{}{"board": board}
	if profile != 0 {
		req["profile"] = profile.String()
	}
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out, err := c.AnalyzeRaw(ctx, in)
	if err != nil {
		return nil, err
	}
	f := out.GetFields()
	a := &Analysis{
		Move:      mancala.Move{Pit: int(f["move"].GetNumberValue()) - 1},
		ExtraTurn: f["extra_turn"].GetBoolValue(),
		Board:     f["board"].GetStringValue(),
	}
	for _, v := range f["free_turns"].GetListValue().GetValues() {
		a.FreeTurns = append(a.FreeTurns, mancala.Move{Pit: int(v.GetNumberValue()) - 1})
	}
	return a, nil
}

type PlayResult struct {
	Board     string
	ExtraTurn bool
	Captured  int
	Over      bool
	Result    string
}

func (c *Client) Play(ctx context.Context, board string, m mancala.Move) (*PlayResult, error) {
	in, err := structpb.NewStruct(map[string]interface{}{
		"board": board,
		"move":  float64(m.Pit + 1),
	})
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	out, err := c.PlayRaw(ctx, in)
	if err != nil {
		return nil, err
	}
	f := out.GetFields()
	return &PlayResult{
		Board:     f["board"].GetStringValue(),
		ExtraTurn: f["extra_turn"].GetBoolValue(),
		Captured:  int(f["captured"].GetNumberValue()),
		Over:      f["over"].GetBoolValue(),
		Result:    f["winner"].GetStringValue(),
	}, nil
}
