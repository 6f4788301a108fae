package ai

import (
	"context"

	"github.com/mancalago/mancala/mancala"
)

// VectorAI plays for extra turns. It compares the vector of seed counts
// on its own side against each pit's distance to the store and never
// looks at the opponent's side.
type VectorAI struct{}

func NewVector() *VectorAI {
	return &VectorAI{}
}

type vectorScore struct {
	extra bool
	free  int
}

func (s vectorScore) better(o vectorScore) bool {
	if s.extra != o.extra {
		return s.extra
	}
	return s.free > o.free
}

func (v *VectorAI) GetMove(ctx context.Context, p *mancala.Position) mancala.Move {
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return mancala.Move{}
	}
	me := p.ToMove()
	// Walk from the pit nearest the store so that it wins ties.
	best := moves[len(moves)-1]
	bestScore := vectorScore{free: -1}
	for i := len(moves) - 1; i >= 0; i-- {
		next, err := p.Move(moves[i])
		if err != nil {
			continue
		}
		s := vectorScore{
			extra: next.Last().ExtraTurn,
			free:  len(FreeTurns(next, me)),
		}
		if s.better(bestScore) {
			best, bestScore = moves[i], s
		}
	}
	return best
}

// FreeTurns lists pl's pits whose seeds would end exactly in pl's store,
// earning an extra turn.
func FreeTurns(p *mancala.Position, pl mancala.Player) []mancala.Move {
	n := p.Size()
	// one lap passes own pits, own store and the opponent's pits
	lap := 2*n + 1
	var out []mancala.Move
	for i, s := range p.Pits(pl) {
		if s > 0 && s%lap == (n-i)%lap {
			out = append(out, mancala.Move{Pit: i})
		}
	}
	return out
}
