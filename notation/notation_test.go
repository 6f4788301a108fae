package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mancalago/mancala/mancala"
)

func TestBoard(t *testing.T) {
	p := mancala.New(mancala.Config{})
	assert.Equal(t, "4,4,4,4,4,4 0 4,4,4,4,4,4 0 1", FormatBoard(p))

	cases := []string{
		"4,4,4,4,4,4 0 4,4,4,4,4,4 0 1",
		"0,0,1 10 3,0,2 7 2",
		"12 0 0 3 1",
	}
	for _, c := range cases {
		p, err := ParseBoard(c)
		require.NoError(t, err, c)
		assert.Equal(t, c, FormatBoard(p))
	}

	p, err := ParseBoard("1,2,3 4 5,6,7 8 2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p.Pits(mancala.PlayerOne))
	assert.Equal(t, 4, p.Store(mancala.PlayerOne))
	assert.Equal(t, []int{5, 6, 7}, p.Pits(mancala.PlayerTwo))
	assert.Equal(t, 8, p.Store(mancala.PlayerTwo))
	assert.Equal(t, mancala.PlayerTwo, p.ToMove())
}

func TestBadBoard(t *testing.T) {
	bad := []string{
		"",
		"4,4 0 4,4 0",
		"4,4 0 4,4 0 3",
		"4,4 0 4 0 1",
		"4,x 0 4,4 0 1",
		"4,4 -1 4,4 0 1",
		"4,4 0 4,4 0 1 extra",
	}
	for _, b := range bad {
		_, err := ParseBoard(b)
		assert.Error(t, err, "%q", b)
	}
}

func TestMove(t *testing.T) {
	m, err := ParseMove(" 3\n")
	require.NoError(t, err)
	assert.Equal(t, mancala.Move{Pit: 2}, m)
	assert.Equal(t, "3", FormatMove(m))

	for _, s := range []string{"0", "-1", "a", ""} {
		_, err := ParseMove(s)
		assert.Error(t, err, s)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	rec := &Record{Tags: []Tag{
		{"Pits", "6"},
		{"Seeds", "4"},
	}}
	start, err := rec.InitialPosition()
	require.NoError(t, err)
	moves := []mancala.Move{{Pit: 2}, {Pit: 0}, {Pit: 5}}
	require.NoError(t, rec.AddMoves(start, moves))

	text := rec.Render()
	assert.Equal(t, "[Pits \"6\"]\n[Seeds \"4\"]\n\n\n1. 3+ 1 6", text)

	parsed, err := ParseRecord(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, rec.Tags, parsed.Tags)
	assert.Equal(t, moves, parsed.Moves())

	end, err := parsed.Replay()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 2, 6, 6, 5}, end.Pits(mancala.PlayerOne))
	assert.Equal(t, []int{4, 4, 4, 4, 4, 0}, end.Pits(mancala.PlayerTwo))
	assert.Equal(t, mancala.PlayerOne, end.ToMove())
}

const testGame = `
[Player1 "Player"]
[Player2 "AI"]
[Board "0,0,0,0,0,1 10 1,2,0,0,0,0 5 1"]

1. 6+ {that ends it}
1-0
`

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord(strings.NewReader(testGame))
	require.NoError(t, err)
	assert.Equal(t, "AI", rec.FindTag("Player2"))
	assert.Equal(t, "", rec.FindTag("Pits"))

	require.Len(t, rec.Ops, 4)
	assert.Equal(t, 1, rec.Ops[0].(*MoveNumber).Number)
	mv := rec.Ops[1].(*Move)
	assert.Equal(t, mancala.Move{Pit: 5}, mv.Move)
	assert.Equal(t, "+", mv.Modifiers)
	assert.Equal(t, "that ends it", rec.Ops[2].(*Comment).Comment)
	assert.Equal(t, mancala.PlayerOne, rec.Ops[3].(*GameOver).Winner)

	end, err := rec.Replay()
	require.NoError(t, err)
	over, winner := end.GameOver()
	assert.True(t, over)
	assert.Equal(t, mancala.PlayerOne, winner)
}

func TestParseRecordErrors(t *testing.T) {
	bad := []string{
		"[Pits \"6\"]\n\n1. 3 {",
		"1. 3 {ab",
		"1. 3 {unterminated\n1-0\n",
		"1. x",
	}
	for _, b := range bad {
		_, err := ParseRecord(strings.NewReader(b))
		assert.Error(t, err, "%q", b)
	}

	rec, err := ParseRecord(strings.NewReader("1. 3 {ab}"))
	require.NoError(t, err)
	assert.Equal(t, "ab", rec.Ops[2].(*Comment).Comment)
}

func TestRenderTagDelimiters(t *testing.T) {
	var rec Record
	rec.SetTag("Player1", "Bob]")
	rec.SetTag("Player2", `"Al"`)
	rec.SetTag("Pits", "3")

	parsed, err := ParseRecord(strings.NewReader(rec.Render()))
	require.NoError(t, err)
	assert.Equal(t, "Bob", parsed.FindTag("Player1"))
	assert.Equal(t, "Al", parsed.FindTag("Player2"))
	assert.Equal(t, "3", parsed.FindTag("Pits"))
}

func TestInitialPositionLimits(t *testing.T) {
	rec, err := ParseRecord(strings.NewReader("[Pits \"6\"]\n[Seeds \"1000000\"]\n"))
	require.NoError(t, err)
	_, err = rec.InitialPosition()
	assert.Error(t, err)

	_, err = ParseBoard("4000000000000,4 0 4,4 0 1")
	assert.Error(t, err)
}

func TestReplayIllegal(t *testing.T) {
	rec, err := ParseRecord(strings.NewReader("[Pits \"3\"]\n[Seeds \"1\"]\n1. 3+ 3"))
	require.NoError(t, err)
	_, err = rec.Replay()
	assert.ErrorIs(t, err, mancala.ErrEmptyPit)
}

func TestSetTag(t *testing.T) {
	var rec Record
	rec.SetTag("Result", "0-1")
	rec.SetTag("Result", "1-0")
	assert.Equal(t, []Tag{{"Result", "1-0"}}, rec.Tags)
	assert.Equal(t, "1/2-1/2", FormatResult(mancala.NoPlayer))
}
