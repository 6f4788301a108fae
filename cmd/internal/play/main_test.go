package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
)

func TestParseSelector(t *testing.T) {
	cases := []struct {
		in   string
		want match.Selector
	}{
		{"human", match.Selector{Kind: mancala.Human}},
		{"Human:alice", match.Selector{Kind: mancala.Human, Name: "alice"}},
		{"vector", match.Selector{Kind: mancala.Computer, Profile: mancala.VectorAI, Seed: 7}},
		{"rand:bob", match.Selector{Kind: mancala.Computer, Profile: mancala.RandomAI, Name: "bob", Seed: 7}},
	}
	for _, tc := range cases {
		got, err := ParseSelector(tc.in, 7)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseSelector("minimax", 0)
	assert.Error(t, err)
}
