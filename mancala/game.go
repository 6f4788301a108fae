package mancala

import (
	"errors"
	"fmt"
)

type Config struct {
	Pits  int
	Seeds int
}

const (
	DefaultPits  = 6
	DefaultSeeds = 4

	MaxPits = 32
	// MaxSeeds bounds the number of seeds on a board, stores included.
	MaxSeeds = 1 << 20
)

// Valid reports whether c, once defaults are filled in, describes a
// playable board.
func (c Config) Valid() error {
	c = c.withDefaults()
	if c.Pits < 1 || c.Pits > MaxPits {
		return fmt.Errorf("bad pit count: %d", c.Pits)
	}
	if c.Seeds < 0 || c.Seeds > MaxSeeds || 2*c.Pits*c.Seeds > MaxSeeds {
		return fmt.Errorf("bad seed count: %d", c.Seeds)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Pits == 0 {
		c.Pits = DefaultPits
	}
	if c.Seeds == 0 {
		c.Seeds = DefaultSeeds
	}
	return c
}

func New(g Config) *Position {
	if err := g.Valid(); err != nil {
		panic(err.Error())
	}
	g = g.withDefaults()
	p := &Position{
		cfg:    &g,
		toMove: PlayerOne,
	}
	for r := Region(0); r < numRegions; r++ {
		if r.IsStore() {
			p.board[r] = make([]int, 1)
			continue
		}
		p.board[r] = make([]int, g.Pits)
		for i := range p.board[r] {
			p.board[r][i] = g.Seeds
		}
	}
	return p
}

// FromRegions builds a position from explicit seed counts. p1 and p2
// are each player's pits, ordered from the pit furthest from that
// player's store. The position's Config carries the average seeds per
// pit, which is the starting count for any board reached by play.
func FromRegions(p1 []int, s1 int, p2 []int, s2 int, toMove Player) (*Position, error) {
	if len(p1) != len(p2) {
		return nil, fmt.Errorf("pit count mismatch: %d != %d", len(p1), len(p2))
	}
	if len(p1) < 1 || len(p1) > MaxPits {
		return nil, fmt.Errorf("bad pit count: %d", len(p1))
	}
	if toMove != PlayerOne && toMove != PlayerTwo {
		return nil, fmt.Errorf("bad player to move: %d", int(toMove))
	}
	if s1 < 0 || s2 < 0 {
		return nil, errors.New("negative store")
	}
	total := s1 + s2
	if s1 > MaxSeeds || s2 > MaxSeeds {
		return nil, fmt.Errorf("more than %d seeds", MaxSeeds)
	}
	for _, pits := range [][]int{p1, p2} {
		for i, s := range pits {
			if s < 0 {
				return nil, fmt.Errorf("negative pit %d", i+1)
			}
			if s > MaxSeeds {
				return nil, fmt.Errorf("more than %d seeds", MaxSeeds)
			}
			total += s
		}
	}
	if total > MaxSeeds {
		return nil, fmt.Errorf("more than %d seeds", MaxSeeds)
	}
	p := &Position{
		cfg:    &Config{Pits: len(p1), Seeds: total / (2 * len(p1))},
		toMove: toMove,
	}
	p.board[P1Pits] = append([]int(nil), p1...)
	p.board[P1Store] = []int{s1}
	p.board[P2Pits] = append([]int(nil), p2...)
	p.board[P2Store] = []int{s2}
	return p, nil
}

// Position is an immutable game state. board is indexed by Region;
// store regions hold a single element.
type Position struct {
	cfg    *Config
	board  [numRegions][]int
	toMove Player
	move   int
	last   MoveDetails
}

func (p *Position) Config() Config {
	return *p.cfg
}

// Size is the number of pits on each side.
func (p *Position) Size() int {
	return p.cfg.Pits
}

func (p *Position) ToMove() Player {
	return p.toMove
}

func (p *Position) MoveNumber() int {
	return p.move
}

// Last describes the move that produced this position. It is the zero
// value for a starting position.
func (p *Position) Last() MoveDetails {
	return p.last
}

// At returns the seeds held at index i of region r. Stores only have
// index 0.
func (p *Position) At(r Region, i int) int {
	return p.board[r][i]
}

func (p *Position) Pits(pl Player) []int {
	return append([]int(nil), p.board[pl.Pits()]...)
}

func (p *Position) Store(pl Player) int {
	return p.board[pl.Store()][0]
}

// Seeds counts every seed on the board, stores included.
func (p *Position) Seeds() int {
	n := 0
	for _, r := range p.board {
		for _, s := range r {
			n += s
		}
	}
	return n
}

func (p *Position) sideEmpty(pl Player) bool {
	for _, s := range p.board[pl.Pits()] {
		if s > 0 {
			return false
		}
	}
	return true
}

func (p *Position) LegalMoves() []Move {
	if over, _ := p.GameOver(); over {
		return nil
	}
	pits := p.board[p.toMove.Pits()]
	moves := make([]Move, 0, len(pits))
	for i, s := range pits {
		if s > 0 {
			moves = append(moves, Move{Pit: i})
		}
	}
	return moves
}

func (p *Position) score(pl Player) int {
	n := p.Store(pl)
	for _, s := range p.board[pl.Pits()] {
		n += s
	}
	return n
}

// GameOver reports whether either side has run out of seeds. Seeds
// still in pits count towards their owner's score.
func (p *Position) GameOver() (over bool, winner Player) {
	if !p.sideEmpty(PlayerOne) && !p.sideEmpty(PlayerTwo) {
		return false, NoPlayer
	}
	one, two := p.score(PlayerOne), p.score(PlayerTwo)
	switch {
	case one > two:
		return true, PlayerOne
	case two > one:
		return true, PlayerTwo
	default:
		return true, NoPlayer
	}
}

type WinDetails struct {
	Winner    Player
	PlayerOne int
	PlayerTwo int
}

func (p *Position) WinDetails() WinDetails {
	over, w := p.GameOver()
	if !over {
		panic("WinDetails on a game not over")
	}
	return WinDetails{
		Winner:    w,
		PlayerOne: p.score(PlayerOne),
		PlayerTwo: p.score(PlayerTwo),
	}
}

func (p *Position) clone() *Position {
	next := &Position{
		cfg:    p.cfg,
		toMove: p.toMove,
		move:   p.move,
	}
	for r := range p.board {
		next.board[r] = append([]int(nil), p.board[r]...)
	}
	return next
}
