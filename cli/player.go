package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

func NewHumanPlayer(name string, out io.Writer, in *bufio.Reader) *HumanPlayer {
	return &HumanPlayer{name, out, in}
}

// HumanPlayer reads 1-based pit numbers, one per line.
type HumanPlayer struct {
	name string
	out  io.Writer
	in   *bufio.Reader
}

func (c *HumanPlayer) GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mancala.Move{}, err
		}
		fmt.Fprintf(c.out, "%s> ", c.name)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return mancala.Move{}, fmt.Errorf("read move: %w", err)
		}
		m, perr := notation.ParseMove(line)
		if perr != nil {
			fmt.Fprintln(c.out, "parse error:", perr)
			if err != nil {
				return mancala.Move{}, fmt.Errorf("read move: %w", err)
			}
			continue
		}
		return m, nil
	}
}
