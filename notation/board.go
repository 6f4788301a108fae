package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mancalago/mancala/mancala"
)

// ParseBoard reads a position written as its four regions in Region
// order followed by the player to move:
//
//	4,4,4,4,4,4 0 4,4,4,4,4,4 0 1
func ParseBoard(s string) (*mancala.Position, error) {
	words := strings.Fields(s)
	if len(words) != 5 {
		return nil, errors.New("bad board: wrong number of words")
	}
	p1, err := parsePits(words[mancala.P1Pits])
	if err != nil {
		return nil, fmt.Errorf("player one pits: %w", err)
	}
	s1, err := parseCount(words[mancala.P1Store])
	if err != nil {
		return nil, fmt.Errorf("player one store: %w", err)
	}
	p2, err := parsePits(words[mancala.P2Pits])
	if err != nil {
		return nil, fmt.Errorf("player two pits: %w", err)
	}
	s2, err := parseCount(words[mancala.P2Store])
	if err != nil {
		return nil, fmt.Errorf("player two store: %w", err)
	}
	var toMove mancala.Player
	switch words[4] {
	case "1":
		toMove = mancala.PlayerOne
	case "2":
		toMove = mancala.PlayerTwo
	default:
		return nil, fmt.Errorf("bad turn: %s", words[4])
	}
	return mancala.FromRegions(p1, s1, p2, s2, toMove)
}

func FormatBoard(p *mancala.Position) string {
	words := make([]string, 0, 5)
	for _, pl := range []mancala.Player{mancala.PlayerOne, mancala.PlayerTwo} {
		var pits []string
		for _, s := range p.Pits(pl) {
			pits = append(pits, strconv.Itoa(s))
		}
		words = append(words, strings.Join(pits, ","), strconv.Itoa(p.Store(pl)))
	}
	if p.ToMove() == mancala.PlayerTwo {
		words = append(words, "2")
	} else {
		words = append(words, "1")
	}
	return strings.Join(words, " ")
}

func parsePits(s string) ([]int, error) {
	var out []int
	for _, bit := range strings.Split(s, ",") {
		n, err := parseCount(bit)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad count: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	return n, nil
}

// ParseMove reads a 1-based pit number.
func ParseMove(s string) (mancala.Move, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return mancala.Move{}, fmt.Errorf("illegal move: %q", s)
	}
	return mancala.Move{Pit: n - 1}, nil
}

func FormatMove(m mancala.Move) string {
	return strconv.Itoa(m.Pit + 1)
}
