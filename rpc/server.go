package rpc

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mancalago/mancala/ai"
	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

// Server implements EngineServer over immutable positions, so calls
// need no locking.
//
//	Analyze {board, profile} -> {move, extra_turn, board, free_turns}
//	Play    {board, move}    -> {board, extra_turn, captured, over, winner}
//
// board uses the notation package's board format and defaults to the
// standard starting position. Moves are 1-based pits.
type Server struct {
	Seed int64
}

var _ EngineServer = &Server{}

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func position(req *structpb.Struct) (*mancala.Position, error) {
	v, ok := req.GetFields()["board"]
	if !ok || v.GetStringValue() == "" {
		return mancala.New(mancala.Config{}), nil
	}
	return notation.ParseBoard(v.GetStringValue())
}

func (s *Server) Analyze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := position(req)
	if err != nil {
		return nil, invalid(err)
	}
	profile := mancala.DefaultAI
	if v, ok := req.GetFields()["profile"]; ok && v.GetStringValue() != "" {
		if profile, err = mancala.ParseProfile(v.GetStringValue()); err != nil {
			return nil, invalid(err)
		}
	}
	if over, _ := p.GameOver(); over {
		return nil, invalid(mancala.ErrGameOver)
	}
	player, err := ai.New(profile, s.Seed)
	if err != nil {
		return nil, invalid(err)
	}
	m := player.GetMove(ctx, p)
	next, err := p.Move(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	var free []interface{}
	for _, f := range ai.FreeTurns(p, p.ToMove()) {
		free = append(free, float64(f.Pit+1))
	}
	log.Debug().
		Str("board", notation.FormatBoard(p)).
		Str("profile", profile.String()).
		Int("move", m.Pit+1).
		Msg("analyze")
	return structpb.NewStruct(map[string]interface{}{
		"move":       float64(m.Pit + 1),
		"extra_turn": next.Last().ExtraTurn,
		"board":      notation.FormatBoard(next),
		"free_turns": free,
	})
}

func (s *Server) Play(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := position(req)
	if err != nil {
		return nil, invalid(err)
	}
	v, ok := req.GetFields()["move"]
	if !ok {
		return nil, invalid(fmt.Errorf("missing move"))
	}
	n := v.GetNumberValue()
	if n != math.Trunc(n) || n < 1 {
		return nil, invalid(fmt.Errorf("bad move: %v", n))
	}
	next, err := p.Move(mancala.Move{Pit: int(n) - 1})
	if err != nil {
		return nil, invalid(err)
	}
	d := next.Last()
	over, winner := next.GameOver()
	out := map[string]interface{}{
		"board":      notation.FormatBoard(next),
		"extra_turn": d.ExtraTurn,
		"captured":   float64(d.Captured),
		"over":       over,
		"winner":     "",
	}
	if over {
		out["winner"] = notation.FormatResult(winner)
	}
	return structpb.NewStruct(out)
}
