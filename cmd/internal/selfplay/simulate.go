package selfplay

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
	"github.com/mancalago/mancala/notation"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 match.Selector
	Board  mancala.Config

	Swap    bool
	Threads int
	Seed    int64
	Limit   time.Duration
}

// Stats counts results per configured player, whichever seat it took.
type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
		Seeds      int
	}
	First, Second int
	Ties          int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Ties
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	for i := range out.Players {
		out.Players[i].Wins += other.Players[i].Wins
		out.Players[i].FirstWins += other.Players[i].FirstWins
		out.Players[i].SecondWins += other.Players[i].SecondWins
		out.Players[i].Seeds += other.Players[i].Seeds
	}
	out.First += other.First
	out.Second += other.Second
	out.Ties += other.Ties
	return out
}

type gameSpec struct {
	i       int
	swapped bool
	seed    int64
}

type Result struct {
	Index   int
	Swapped bool
	Match   match.Result
	Record  *notation.Record
}

// Simulate plays c.Games games, or twice that with c.Swap, on at most
// c.Threads goroutines.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	n := c.Games
	if c.Swap {
		n *= 2
	}
	r := rand.New(rand.NewSource(uint64(c.Seed)))
	specs := make([]gameSpec, n)
	for g := range specs {
		specs[g] = gameSpec{
			i:       g,
			swapped: c.Swap && g%2 == 1,
			seed:    int64(r.Uint64() >> 1),
		}
	}

	results := make([]Result, n)
	grp, ctx := errgroup.WithContext(ctx)
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	grp.SetLimit(threads)
	for _, g := range specs {
		g := g
		grp.Go(func() error {
			res, err := playOne(ctx, c, g)
			if err != nil {
				return fmt.Errorf("game %d: %w", g.i, err)
			}
			results[g.i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, res := range results {
		st.add(c, &res)
	}
	st.Games = results
	return st, nil
}

func (st *Stats) add(c *Config, r *Result) {
	m := r.Match
	if c.Verbose {
		log.Info().
			Int("game", r.Index).
			Bool("swapped", r.Swapped).
			Int("plies", len(m.Moves)).
			Str("winner", m.Winner).
			Int("p1", m.Score.PlayerOne).
			Int("p2", m.Score.PlayerTwo).
			Msg("game")
	}
	// seat i is held by configured player i, or 1-i when swapped
	owner := func(seat int) int {
		if r.Swapped {
			return 1 - seat
		}
		return seat
	}
	st.Players[owner(0)].Seeds += m.Score.PlayerOne
	st.Players[owner(1)].Seeds += m.Score.PlayerTwo
	switch m.Score.Winner {
	case mancala.PlayerOne:
		st.First++
		pst := &st.Players[owner(0)]
		pst.Wins++
		pst.FirstWins++
	case mancala.PlayerTwo:
		st.Second++
		pst := &st.Players[owner(1)]
		pst.Wins++
		pst.SecondWins++
	default:
		st.Ties++
	}
}

func playOne(ctx context.Context, c *Config, g gameSpec) (Result, error) {
	p1, p2 := c.P1, c.P2
	p1.Seed, p2.Seed = g.seed, g.seed+1
	if g.swapped {
		p1, p2 = p2, p1
	}
	m, err := match.New(match.Config{
		Player1: p1,
		Player2: p2,
		Board:   c.Board,
		Out:     io.Discard,
		Limit:   c.Limit,
	})
	if err != nil {
		return Result{}, err
	}
	if err := m.HandleNextMove(ctx); err != nil {
		return Result{}, err
	}
	res, ok := m.Result()
	if !ok {
		return Result{}, fmt.Errorf("match ended before the game was over")
	}
	rec, err := m.Record()
	if err != nil {
		return Result{}, err
	}
	return Result{Index: g.i, Swapped: g.swapped, Match: res, Record: rec}, nil
}
