package ai

import (
	"context"

	"github.com/mancalago/mancala/mancala"
)

// Player chooses a move for the player to move in p. It must not be
// called on a finished game.
type Player interface {
	GetMove(ctx context.Context, p *mancala.Position) mancala.Move
}
