package ai

import (
	"errors"
	"fmt"

	"github.com/mancalago/mancala/mancala"
)

var ErrUnknownProfile = errors.New("unknown ai profile")

// New returns the player for an AI profile. The zero profile selects
// mancala.DefaultAI.
func New(profile mancala.Profile, seed int64) (Player, error) {
	if profile == 0 {
		profile = mancala.DefaultAI
	}
	switch profile {
	case mancala.RandomAI:
		return NewRandom(seed), nil
	case mancala.VectorAI:
		return NewVector(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, profile)
}
