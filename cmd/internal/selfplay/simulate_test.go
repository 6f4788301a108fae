package selfplay

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
)

func testConfig() *Config {
	p1 := match.Computer(mancala.VectorAI)
	p1.Name = "vector"
	p2 := match.Computer(mancala.RandomAI)
	p2.Name = "random"
	return &Config{
		Games:   3,
		P1:      p1,
		P2:      p2,
		Board:   mancala.Config{Pits: 4, Seeds: 3},
		Swap:    true,
		Threads: 2,
		Seed:    42,
	}
}

func TestSimulate(t *testing.T) {
	cfg := testConfig()
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 6, st.Count())
	require.Len(t, st.Games, 6)
	assert.Equal(t, st.First+st.Second, st.Players[0].Wins+st.Players[1].Wins)
	assert.Equal(t, 6*24, st.Players[0].Seeds+st.Players[1].Seeds)

	for i, g := range st.Games {
		assert.Equal(t, i, g.Index)
		assert.Equal(t, i%2 == 1, g.Swapped)
		if g.Swapped {
			assert.Equal(t, "random", g.Match.Names.One)
		} else {
			assert.Equal(t, "vector", g.Match.Names.One)
		}
		end, err := g.Record.Replay()
		require.NoError(t, err)
		over, _ := end.GameOver()
		assert.True(t, over)
	}

	again, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	for i := range st.Games {
		assert.Equal(t, st.Games[i].Match.Moves, again.Games[i].Match.Moves)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simulate(ctx, testConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	var a, b Stats
	a.First, a.Ties = 2, 1
	a.Players[0].Wins = 2
	b.Second = 3
	b.Players[1].Wins, b.Players[1].Seeds = 3, 40
	m := a.Merge(&b)
	assert.Equal(t, 6, m.Count())
	assert.Equal(t, 2, m.Players[0].Wins)
	assert.Equal(t, 3, m.Players[1].Wins)
	assert.Equal(t, 40, m.Players[1].Seeds)
}

func TestReport(t *testing.T) {
	cfg := testConfig()
	var st Stats
	st.First = 1200
	st.Players[0].Wins, st.Players[0].FirstWins = 1200, 1200
	var buf bytes.Buffer
	report(&buf, cfg, &st)
	assert.Contains(t, buf.String(), "1,200")
	assert.Contains(t, buf.String(), "vector")
}
