package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mancalago/mancala/mancala"
)

// Names labels the two seats when rendering.
type Names struct {
	One, Two string
}

func (n Names) Of(pl mancala.Player) string {
	if pl == mancala.PlayerTwo {
		return n.Two
	}
	return n.One
}

// RenderBoard draws p with player two's side on top, read right to
// left, and player one's side underneath. Pit numbers are the ones a
// human player types.
func RenderBoard(out io.Writer, p *mancala.Position, names Names) {
	n := p.Size()
	fmt.Fprintln(out)
	if over, _ := p.GameOver(); !over {
		fmt.Fprintf(out, "[%s to play]\n", names.Of(p.ToMove()))
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', tabwriter.AlignRight)

	top := p.Pits(mancala.PlayerTwo)
	bottom := p.Pits(mancala.PlayerOne)

	fmt.Fprintf(w, "%s\t", names.Two)
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%d.\t", i+1)
	}
	fmt.Fprintf(w, "\t\n")

	fmt.Fprintf(w, "[%d]\t", p.Store(mancala.PlayerTwo))
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s\t", pit(top[i]))
	}
	fmt.Fprintf(w, "\t\n")

	fmt.Fprintf(w, "\t")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s\t", pit(bottom[i]))
	}
	fmt.Fprintf(w, "[%d]\t\n", p.Store(mancala.PlayerOne))

	fmt.Fprintf(w, "%s\t", names.One)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%d.\t", i+1)
	}
	fmt.Fprintf(w, "\t\n")
	w.Flush()
}

func pit(seeds int) string {
	if seeds == 0 {
		return "-"
	}
	return strconv.Itoa(seeds)
}

// RenderResult prints the final scores of a finished game.
func RenderResult(out io.Writer, p *mancala.Position, names Names) {
	d := p.WinDetails()
	fmt.Fprintf(out, "Game Over! ")
	if d.Winner == mancala.NoPlayer {
		fmt.Fprintf(out, "Draw.")
	} else {
		fmt.Fprintf(out, "%s wins.", names.Of(d.Winner))
	}
	fmt.Fprintf(out, "\nstores: %s=%d %s=%d\n",
		names.One, d.PlayerOne,
		names.Two, d.PlayerTwo)
}
