package ai

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/mancalago/mancala/mancala"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, p *mancala.Position) mancala.Move {
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return mancala.Move{}
	}
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(uint64(seed))),
	}
}
