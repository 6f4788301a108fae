package mancala

import (
	"fmt"
	"strings"
)

// Region names one of the four areas of the board. Its value is the
// index of that area in a position's board storage.
type Region byte

const (
	P1Pits Region = iota
	P1Store
	P2Pits
	P2Store

	numRegions = 4
)

func (r Region) Valid() bool {
	return r < numRegions
}

func (r Region) IsStore() bool {
	return r == P1Store || r == P2Store
}

func (r Region) Owner() Player {
	switch r {
	case P1Pits, P1Store:
		return PlayerOne
	case P2Pits, P2Store:
		return PlayerTwo
	default:
		panic(fmt.Sprintf("bad region: %d", int(r)))
	}
}

func (r Region) String() string {
	switch r {
	case P1Pits:
		return "p1-pits"
	case P1Store:
		return "p1-store"
	case P2Pits:
		return "p2-pits"
	case P2Store:
		return "p2-store"
	default:
		panic(fmt.Sprintf("bad region: %d", int(r)))
	}
}

type Player byte

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	case NoPlayer:
		return NoPlayer
	default:
		panic(fmt.Sprintf("bad player: %d", int(p)))
	}
}

// Pits returns the region holding p's pits.
func (p Player) Pits() Region {
	if p == PlayerTwo {
		return P2Pits
	}
	return P1Pits
}

// Store returns the region holding p's store.
func (p Player) Store() Region {
	if p == PlayerTwo {
		return P2Store
	}
	return P1Store
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	case NoPlayer:
		return "no player"
	default:
		panic(fmt.Sprintf("bad player: %d", int(p)))
	}
}

const (
	DefaultName = "Player"
	AIName      = "AI"
)

// Kind is who controls a seat at the board.
type Kind byte

const (
	Human Kind = 1 + iota
	Computer

	DefaultKind = Human
)

func (k Kind) Valid() bool {
	return k == Human || k == Computer
}

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Computer:
		return "ai"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Profile selects the move selection strategy of a computer player.
type Profile byte

const (
	// RandomAI picks uniformly among legal moves.
	RandomAI Profile = 1 + iota
	// VectorAI optimizes for extra turns, looking only at its own side.
	VectorAI

	DefaultAI = VectorAI
)

func (p Profile) Valid() bool {
	return p == RandomAI || p == VectorAI
}

func (p Profile) String() string {
	switch p {
	case RandomAI:
		return "random"
	case VectorAI:
		return "vector"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "rand":
		return RandomAI, nil
	case "vector":
		return VectorAI, nil
	}
	return 0, fmt.Errorf("unknown ai profile: %q", s)
}
