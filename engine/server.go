package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mancalago/mancala/ai"
	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

// Engine speaks a line-oriented protocol: the controller sets up a
// position and asks for a move with "go", and the engine answers with
// "bestmove <pit>".
type Engine struct {
	// Profile is used by "go" when no profile is named.
	Profile mancala.Profile
	Seed    int64

	in  *bufio.Reader
	out io.Writer

	cfg mancala.Config
	pos *mancala.Position
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "mancala":
			fmt.Fprintln(e.out, "id name mancala")
			fmt.Fprintln(e.out, "id author mancalago")
			fmt.Fprintln(e.out, "mancalaok")
		case "quit":
			return nil
		case "newgame":
			e.pos = nil
			e.cfg, err = parseConfig(words[1:])
			if err != nil {
				return err
			}
		case "position":
			e.pos, err = parsePosition(e.cfg, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Warn().Err(err).Msg("go")
				fmt.Fprintf(e.out, "info error %s\n", err)
			}
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", strings.TrimSpace(line))
		}
	}
}

func parseConfig(words []string) (mancala.Config, error) {
	var cfg mancala.Config
	if len(words) > 2 {
		return cfg, errors.New("newgame: too many arguments")
	}
	for i, dst := range []*int{&cfg.Pits, &cfg.Seeds} {
		if i >= len(words) {
			break
		}
		n, err := strconv.Atoi(words[i])
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("bad newgame argument: %s", words[i])
		}
		*dst = n
	}
	if err := cfg.Valid(); err != nil {
		return cfg, fmt.Errorf("newgame: %w", err)
	}
	return cfg, nil
}

func parsePosition(cfg mancala.Config, words []string) (*mancala.Position, error) {
	var pos *mancala.Position
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		pos = mancala.New(cfg)
	case "board":
		if len(words) < 6 {
			return nil, errors.New("position board: not enough arguments")
		}
		var err error
		pos, err = notation.ParseBoard(strings.Join(words[1:6], " "))
		if err != nil {
			return nil, fmt.Errorf("parse board: %w", err)
		}
		words = words[6:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return pos, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		move, err := notation.ParseMove(w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		pos, err = pos.Move(move)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return pos, nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if over, _ := e.pos.GameOver(); over {
		return mancala.ErrGameOver
	}
	profile := e.Profile
	if len(words) > 1 {
		var err error
		if profile, err = mancala.ParseProfile(words[1]); err != nil {
			return err
		}
	}
	p, err := ai.New(profile, e.Seed)
	if err != nil {
		return err
	}
	m := p.GetMove(ctx, e.pos)

	var free strings.Builder
	for _, f := range ai.FreeTurns(e.pos, e.pos.ToMove()) {
		free.WriteString(" ")
		free.WriteString(notation.FormatMove(f))
	}
	fmt.Fprintf(e.out, "info freeturns%s\n", free.String())
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(m))
	return nil
}
