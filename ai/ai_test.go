package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/mancalatest"
)

func TestVectorOpening(t *testing.T) {
	p := mancala.New(mancala.Config{})
	m := NewVector().GetMove(context.Background(), p)
	assert.Equal(t, mancala.Move{Pit: 2}, m)
}

func TestVectorKeepsFreeTurns(t *testing.T) {
	p := mancalatest.Board("0,0,0,0,2,1 0 4,4,4,4,4,4 0 1")
	assert.Equal(t, []mancala.Move{{Pit: 4}, {Pit: 5}}, FreeTurns(p, mancala.PlayerOne))

	// sowing the last pit first leaves the other free turn in place
	m := NewVector().GetMove(context.Background(), p)
	assert.Equal(t, mancala.Move{Pit: 5}, m)
}

func TestVectorIgnoresOpponent(t *testing.T) {
	ctx := context.Background()
	v := NewVector()
	a := mancalatest.Board("3,1,0,2,0,1 7 4,4,4,4,4,4 0 1")
	b := mancalatest.Board("3,1,0,2,0,1 7 0,9,0,1,12,0 3 1")
	assert.Equal(t, v.GetMove(ctx, a), v.GetMove(ctx, b))
}

func TestVectorPlayerTwo(t *testing.T) {
	p := mancalatest.Position(mancala.Config{}, "1")
	require.Equal(t, mancala.PlayerTwo, p.ToMove())
	m := NewVector().GetMove(context.Background(), p)
	assert.Equal(t, mancala.Move{Pit: 2}, m)
}

func TestFreeTurns(t *testing.T) {
	p := mancalatest.Board("6,5,4,3,2,1 0 0,0,0,0,0,14 0 1")
	assert.Len(t, FreeTurns(p, mancala.PlayerOne), 6)
	assert.Equal(t, []mancala.Move{{Pit: 5}}, FreeTurns(p, mancala.PlayerTwo))
}

func TestRandomDeterministic(t *testing.T) {
	ctx := context.Background()
	play := func(seed int64) []mancala.Move {
		r := NewRandom(seed)
		p := mancala.New(mancala.Config{})
		var ms []mancala.Move
		for {
			if over, _ := p.GameOver(); over {
				return ms
			}
			m := r.GetMove(ctx, p)
			next, err := p.Move(m)
			require.NoError(t, err)
			ms = append(ms, m)
			p = next
		}
	}
	assert.Equal(t, play(42), play(42))
}

func TestNew(t *testing.T) {
	p, err := New(mancala.RandomAI, 1)
	require.NoError(t, err)
	assert.IsType(t, &RandomAI{}, p)

	p, err = New(mancala.VectorAI, 1)
	require.NoError(t, err)
	assert.IsType(t, &VectorAI{}, p)

	p, err = New(0, 1)
	require.NoError(t, err)
	assert.IsType(t, &VectorAI{}, p)

	_, err = New(mancala.Profile(9), 1)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestFinishedGame(t *testing.T) {
	p := mancalatest.Board("0,0 3 0,0 5 1")
	assert.Equal(t, mancala.Move{}, NewVector().GetMove(context.Background(), p))
	assert.Equal(t, mancala.Move{}, NewRandom(0).GetMove(context.Background(), p))
}
