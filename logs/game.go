package logs

import (
	"errors"
	"time"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/match"
	"github.com/mancalago/mancala/notation"
)

// NewGame builds the log entry of a finished match.
func NewGame(r match.Result, rec *notation.Record, at time.Time) *Game {
	g := &Game{
		Timestamp: at,
		Pits:      r.Config.Pits,
		Seeds:     r.Config.Seeds,
		Player1:   r.Names.One,
		Player2:   r.Names.Two,
		Kind1:     seatKind(r.Seats[0]),
		Kind2:     seatKind(r.Seats[1]),
		Result:    notation.FormatResult(r.Score.Winner),
		Winner:    r.Winner,
		Score1:    r.Score.PlayerOne,
		Score2:    r.Score.PlayerTwo,
		Moves:     len(r.Moves),
	}
	if rec != nil {
		g.Record = rec.Render()
	}
	return g
}

func seatKind(s match.Selector) string {
	if s.Kind.Valid() && s.Profile.Valid() {
		return s.Kind.String() + ":" + s.Profile.String()
	}
	return s.Kind.String()
}

// FromRecord builds the log entry of a finished game from its record.
// Players are read from the Player1 and Player2 tags; kinds are unknown.
func FromRecord(rec *notation.Record, at time.Time) (*Game, error) {
	start, err := rec.InitialPosition()
	if err != nil {
		return nil, err
	}
	end, err := rec.Replay()
	if err != nil {
		return nil, err
	}
	if over, _ := end.GameOver(); !over {
		return nil, errors.New("game is not over")
	}
	d := end.WinDetails()
	cfg := start.Config()
	g := &Game{
		Timestamp: at,
		Pits:      cfg.Pits,
		Seeds:     cfg.Seeds,
		Player1:   rec.FindTag("Player1"),
		Player2:   rec.FindTag("Player2"),
		Result:    notation.FormatResult(d.Winner),
		Score1:    d.PlayerOne,
		Score2:    d.PlayerTwo,
		Moves:     len(rec.Moves()),
		Record:    rec.Render(),
	}
	switch d.Winner {
	case mancala.PlayerOne:
		g.Winner = g.Player1
	case mancala.PlayerTwo:
		g.Winner = g.Player2
	}
	return g, nil
}
