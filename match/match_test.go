package match

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

func TestDefaults(t *testing.T) {
	m, err := New(Config{In: strings.NewReader(""), Out: io.Discard})
	require.NoError(t, err)
	seats := m.Seats()
	assert.Equal(t, mancala.Human, seats[0].Kind)
	assert.Equal(t, mancala.Human, seats[1].Kind)
	assert.Equal(t, "Player 1", m.Names().One)
	assert.Equal(t, "Player 2", m.Names().Two)

	m, err = New(Config{
		Player1: Human(),
		Player2: Computer(0),
		Out:     io.Discard,
	})
	require.NoError(t, err)
	seats = m.Seats()
	assert.Equal(t, mancala.VectorAI, seats[1].Profile)
	assert.Equal(t, "Player", m.Names().One)
	assert.Equal(t, "AI", m.Names().Two)
	assert.Equal(t, mancala.DefaultPits, m.Position().Size())

	_, ok := m.Result()
	assert.False(t, ok)
}

func TestInvalidSelectors(t *testing.T) {
	_, err := New(Config{Player1: Selector{Kind: mancala.Kind(7)}})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = New(Config{Player2: Computer(mancala.Profile(9))})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestHumanGame(t *testing.T) {
	var out bytes.Buffer
	m, err := New(Config{
		Player1: Human(),
		Player2: Computer(mancala.VectorAI),
		Board:   mancala.Config{Pits: 2, Seeds: 1},
		In:      strings.NewReader("2\n2\n1\n"),
		Out:     &out,
	})
	require.NoError(t, err)
	require.NoError(t, m.HandleNextMove(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Player plays 2, extra turn\n")
	assert.Contains(t, text, "illegal move: pit is empty\n")
	assert.Contains(t, text, "Player plays 1, capturing 2\n")
	assert.True(t, strings.HasSuffix(text, "Game Over! Player wins.\nstores: Player=3 AI=1\n"), text)

	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "Player", r.Winner)
	assert.Equal(t, mancala.WinDetails{Winner: mancala.PlayerOne, PlayerOne: 3, PlayerTwo: 1}, r.Score)
	assert.Equal(t, []mancala.Move{{Pit: 1}, {Pit: 0}}, r.Moves)
	assert.Equal(t, mancala.Config{Pits: 2, Seeds: 1}, r.Config)

	rec, err := m.Record()
	require.NoError(t, err)
	assert.Equal(t, "1-0", rec.FindTag("Result"))
	assert.Equal(t, "3-1", rec.FindTag("Score"))
	assert.Equal(t, "[Pits \"2\"]\n[Seeds \"1\"]\n[Player1 \"Player\"]\n[Player2 \"AI\"]\n[Result \"1-0\"]\n[Score \"3-1\"]\n\n\n1. 2+ 1x\n1-0\n", rec.Render())
}

func TestComputerGame(t *testing.T) {
	m, err := New(Config{
		Player1: Computer(mancala.VectorAI),
		Player2: Selector{Kind: mancala.Computer, Profile: mancala.RandomAI, Seed: 7},
		Out:     io.Discard,
	})
	require.NoError(t, err)
	assert.Equal(t, "AI 1", m.Names().One)
	require.NoError(t, m.HandleNextMove(context.Background()))

	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 48, r.Score.PlayerOne+r.Score.PlayerTwo)

	rec, err := m.Record()
	require.NoError(t, err)
	parsed, err := notation.ParseRecord(strings.NewReader(rec.Render()))
	require.NoError(t, err)
	end, err := parsed.Replay()
	require.NoError(t, err)
	assert.Equal(t, notation.FormatBoard(m.Position()), notation.FormatBoard(end))
}

func TestEndOfInput(t *testing.T) {
	m, err := New(Config{
		Player2: Computer(mancala.RandomAI),
		In:      strings.NewReader(""),
		Out:     io.Discard,
	})
	require.NoError(t, err)
	err = m.HandleNextMove(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, m.Moves())
}

func TestCancelled(t *testing.T) {
	m, err := New(Config{
		Player1: Computer(mancala.VectorAI),
		Player2: Computer(mancala.RandomAI),
		Out:     io.Discard,
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.HandleNextMove(ctx), context.Canceled)
}

type scripted struct {
	moves []mancala.Move
}

func (s *scripted) GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error) {
	if len(s.moves) == 0 {
		return mancala.Move{}, io.EOF
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func TestExternalPlayer(t *testing.T) {
	ext := &scripted{moves: []mancala.Move{{Pit: 1}, {Pit: 0}}}
	m, err := New(Config{
		Player1: Selector{Kind: mancala.Computer, Name: "engine", Player: ext},
		Player2: Computer(mancala.VectorAI),
		Board:   mancala.Config{Pits: 2, Seeds: 1},
		Out:     io.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, m.HandleNextMove(context.Background()))
	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "engine", r.Winner)

	ext = &scripted{moves: []mancala.Move{{Pit: 1}, {Pit: 1}}}
	m, err = New(Config{
		Player1: Selector{Kind: mancala.Computer, Player: ext},
		Board:   mancala.Config{Pits: 2, Seeds: 1},
		In:      strings.NewReader(""),
		Out:     io.Discard,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, m.HandleNextMove(context.Background()), ErrIllegalAIMove)

	_, err = New(Config{Player1: Selector{Kind: mancala.Human, Player: ext}})
	assert.ErrorIs(t, err, ErrInvalidKind)
}
