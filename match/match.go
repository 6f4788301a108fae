package match

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/ai"
	"github.com/mancalago/mancala/cli"
	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

// Player is anything that can occupy a seat: a human at the terminal or
// a wrapped AI profile.
type Player interface {
	GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error)
}

// Selector describes who sits in one seat. Zero values select
// mancala.DefaultKind, mancala.DefaultAI and the default names.
type Selector struct {
	Kind    mancala.Kind
	Profile mancala.Profile
	Name    string
	Seed    int64

	// Player, if set, occupies a computer seat in place of a built-in
	// AI profile.
	Player Player
}

func Human() Selector {
	return Selector{Kind: mancala.Human}
}

func Computer(profile mancala.Profile) Selector {
	return Selector{Kind: mancala.Computer, Profile: profile}
}

type Config struct {
	Player1, Player2 Selector
	Board            mancala.Config

	In  io.Reader
	Out io.Writer

	// Limit bounds the time given to a computer player per move.
	Limit time.Duration
}

var (
	ErrInvalidKind    = errors.New("invalid player kind")
	ErrInvalidProfile = errors.New("invalid ai profile")
	ErrIllegalAIMove  = errors.New("computer player made an illegal move")
)

type Match struct {
	out     io.Writer
	names   cli.Names
	seats   [2]Selector
	players [2]Player

	start *mancala.Position
	p     *mancala.Position
	moves []mancala.Move
}

func (s Selector) resolve() (Selector, error) {
	if s.Kind == 0 {
		s.Kind = mancala.DefaultKind
	}
	if !s.Kind.Valid() {
		return s, fmt.Errorf("%w: %s", ErrInvalidKind, s.Kind)
	}
	if s.Player != nil && s.Kind != mancala.Computer {
		return s, fmt.Errorf("%w: %s seat with an external player", ErrInvalidKind, s.Kind)
	}
	if s.Kind == mancala.Computer && s.Player == nil {
		if s.Profile == 0 {
			s.Profile = mancala.DefaultAI
		}
		if !s.Profile.Valid() {
			return s, fmt.Errorf("%w: %s", ErrInvalidProfile, s.Profile)
		}
	}
	if s.Name == "" {
		if s.Kind == mancala.Human {
			s.Name = mancala.DefaultName
		} else {
			s.Name = mancala.AIName
		}
	}
	return s, nil
}

func New(cfg Config) (*Match, error) {
	m := &Match{out: cfg.Out}
	if m.out == nil {
		m.out = os.Stdout
	}
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	named := [2]bool{cfg.Player1.Name != "", cfg.Player2.Name != ""}
	for i, sel := range []Selector{cfg.Player1, cfg.Player2} {
		s, err := sel.resolve()
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		m.seats[i] = s
	}
	if m.seats[0].Name == m.seats[1].Name {
		for i := range m.seats {
			if !named[i] {
				m.seats[i].Name += " " + strconv.Itoa(i+1)
			}
		}
	}
	m.names = cli.Names{One: m.seats[0].Name, Two: m.seats[1].Name}

	// Human seats share one reader so that buffered input is not lost
	// between them.
	var stdin *bufio.Reader
	for i, s := range m.seats {
		switch s.Kind {
		case mancala.Human:
			if stdin == nil {
				stdin = bufio.NewReader(in)
			}
			m.players[i] = cli.NewHumanPlayer(s.Name, m.out, stdin)
		case mancala.Computer:
			if s.Player != nil {
				m.players[i] = &externalWrapper{limit: cfg.Limit, p: s.Player}
				continue
			}
			p, err := ai.New(s.Profile, s.Seed)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", i+1, err)
			}
			m.players[i] = &aiWrapper{limit: cfg.Limit, p: p}
		}
	}

	m.start = mancala.New(cfg.Board)
	m.p = m.start
	return m, nil
}

type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error) {
	if err := ctx.Err(); err != nil {
		return mancala.Move{}, err
	}
	if a.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.limit)
		defer cancel()
	}
	return a.p.GetMove(ctx, p), nil
}

type externalWrapper struct {
	limit time.Duration
	p     Player
}

func (e *externalWrapper) GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error) {
	if e.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.limit)
		defer cancel()
	}
	return e.p.GetMove(ctx, p)
}

func seat(pl mancala.Player) int {
	if pl == mancala.PlayerTwo {
		return 1
	}
	return 0
}

// HandleNextMove asks the player to move for a move and applies it,
// continuing turn after turn until the game is over. Illegal moves from
// a human are reported and asked for again.
func (m *Match) HandleNextMove(ctx context.Context) error {
	for {
		cli.RenderBoard(m.out, m.p, m.names)
		if over, _ := m.p.GameOver(); over {
			cli.RenderResult(m.out, m.p, m.names)
			d := m.p.WinDetails()
			log.Debug().
				Str("winner", m.winnerName(d.Winner)).
				Int("plies", len(m.moves)).
				Int("p1", d.PlayerOne).
				Int("p2", d.PlayerTwo).
				Msg("game over")
			return nil
		}
		i := seat(m.p.ToMove())
		mv, err := m.players[i].GetMove(ctx, m.p)
		if err != nil {
			return fmt.Errorf("%s: %w", m.seats[i].Name, err)
		}
		next, err := m.p.Move(mv)
		if err != nil {
			if m.seats[i].Kind == mancala.Computer {
				return fmt.Errorf("%w: %s: pit %s: %v",
					ErrIllegalAIMove, m.seats[i].Name, notation.FormatMove(mv), err)
			}
			fmt.Fprintln(m.out, "illegal move:", err)
			continue
		}
		m.report(next)
		m.p = next
		m.moves = append(m.moves, mv)
	}
}

func (m *Match) report(next *mancala.Position) {
	d := next.Last()
	fmt.Fprintf(m.out, "%s plays %s", m.names.Of(d.Player), notation.FormatMove(d.Move))
	if d.Captured > 0 {
		fmt.Fprintf(m.out, ", capturing %d", d.Captured)
	}
	if d.ExtraTurn {
		fmt.Fprintf(m.out, ", extra turn")
	}
	fmt.Fprintln(m.out)
}

func (m *Match) winnerName(w mancala.Player) string {
	if w == mancala.NoPlayer {
		return ""
	}
	return m.names.Of(w)
}

func (m *Match) Position() *mancala.Position {
	return m.p
}

func (m *Match) Moves() []mancala.Move {
	return m.moves
}

func (m *Match) Names() cli.Names {
	return m.names
}

// Seats returns both selectors with defaults filled in.
func (m *Match) Seats() [2]Selector {
	return m.seats
}

type Result struct {
	Names  cli.Names
	Seats  [2]Selector
	Config mancala.Config
	Winner string
	Score  mancala.WinDetails
	Moves  []mancala.Move
}

// Result returns the outcome of a finished match. ok is false while the
// game is still being played.
func (m *Match) Result() (r Result, ok bool) {
	if over, _ := m.p.GameOver(); !over {
		return Result{}, false
	}
	d := m.p.WinDetails()
	return Result{
		Names:  m.names,
		Seats:  m.seats,
		Config: m.start.Config(),
		Winner: m.winnerName(d.Winner),
		Score:  d,
		Moves:  m.moves,
	}, true
}

func (m *Match) Record() (*notation.Record, error) {
	cfg := m.start.Config()
	rec := &notation.Record{Tags: []notation.Tag{
		{Name: "Pits", Value: strconv.Itoa(cfg.Pits)},
		{Name: "Seeds", Value: strconv.Itoa(cfg.Seeds)},
		{Name: "Player1", Value: m.names.One},
		{Name: "Player2", Value: m.names.Two},
	}}
	if over, w := m.p.GameOver(); over {
		d := m.p.WinDetails()
		rec.SetTag("Result", notation.FormatResult(w))
		rec.SetTag("Score", fmt.Sprintf("%d-%d", d.PlayerOne, d.PlayerTwo))
	}
	if err := rec.AddMoves(m.start, m.moves); err != nil {
		return nil, err
	}
	return rec, nil
}
