package mancalatest

import (
	"strings"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

func Move(s string) mancala.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

// Moves parses a space-separated list of 1-based pits.
func Moves(s string) []mancala.Move {
	if s == "" {
		return nil
	}
	var ms []mancala.Move
	for _, b := range strings.Fields(s) {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(ms []mancala.Move) string {
	var bits []string
	for _, o := range ms {
		bits = append(bits, notation.FormatMove(o))
	}
	return strings.Join(bits, " ")
}

// Position plays ms from the starting position of cfg.
func Position(cfg mancala.Config, ms string) *mancala.Position {
	p := mancala.New(cfg)
	var e error
	for _, m := range Moves(ms) {
		p, e = p.Move(m)
		if e != nil {
			panic(e)
		}
	}
	return p
}

func Board(s string) *mancala.Position {
	p, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return p
}
