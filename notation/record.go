package notation

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mancalago/mancala/mancala"
)

type Tag struct {
	Name  string
	Value string
}

type Op interface {
	op()

	Source() string
}

type opCommon struct {
	src string
}

func (o opCommon) Source() string {
	return o.src
}

func (o opCommon) op() {}

// MoveNumber starts a turn of player one.
type MoveNumber struct {
	opCommon
	Number int
}

type Move struct {
	opCommon
	Move      mancala.Move
	Modifiers string
}

type Comment struct {
	opCommon
	Comment string
}

type GameOver struct {
	opCommon
	Winner mancala.Player
}

// Record is a game record: a list of tags followed by the moves.
type Record struct {
	Tags []Tag
	Ops  []Op
}

func ParseRecord(r io.Reader) (*Record, error) {
	buf := bufio.NewReader(r)
	var rec Record
	if err := readTags(buf, &rec); err != nil && err != io.EOF {
		return nil, err
	}
	if err := readMoves(buf, &rec); err != nil && err != io.EOF {
		return nil, err
	}
	return &rec, nil
}

func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRecord(f)
}

func (r *Record) FindTag(name string) string {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

func (r *Record) SetTag(name, value string) {
	for i := range r.Tags {
		if r.Tags[i].Name == name {
			r.Tags[i].Value = value
			return
		}
	}
	r.Tags = append(r.Tags, Tag{Name: name, Value: value})
}

func (r *Record) InitialPosition() (*mancala.Position, error) {
	if b := r.FindTag("Board"); b != "" {
		p, err := ParseBoard(b)
		if err != nil {
			return nil, fmt.Errorf("bad Board tag: %w", err)
		}
		return p, nil
	}
	var cfg mancala.Config
	for _, t := range []struct {
		name string
		dst  *int
	}{{"Pits", &cfg.Pits}, {"Seeds", &cfg.Seeds}} {
		v := r.FindTag(t.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad %s: %s", t.name, v)
		}
		*t.dst = n
	}
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return mancala.New(cfg), nil
}

func (r *Record) Moves() []mancala.Move {
	var out []mancala.Move
	for _, op := range r.Ops {
		if m, ok := op.(*Move); ok {
			out = append(out, m.Move)
		}
	}
	return out
}

// Replay plays every move of the record from its initial position and
// returns the final position.
func (r *Record) Replay() (*mancala.Position, error) {
	p, err := r.InitialPosition()
	if err != nil {
		return nil, err
	}
	for i, m := range r.Moves() {
		next, err := p.Move(m)
		if err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, FormatMove(m), err)
		}
		p = next
	}
	return p, nil
}

// AddMoves appends ms, played from p, to the record. A move number is
// emitted whenever player one starts a turn, and the game result is
// appended if the last move ends the game.
func (r *Record) AddMoves(p *mancala.Position, ms []mancala.Move) error {
	turn := 0
	for _, op := range r.Ops {
		if n, ok := op.(*MoveNumber); ok {
			turn = n.Number
		}
	}
	prev := mancala.NoPlayer
	for i, m := range ms {
		mover := p.ToMove()
		if mover == mancala.PlayerOne && prev != mancala.PlayerOne {
			turn++
			r.Ops = append(r.Ops, &MoveNumber{Number: turn})
		}
		next, err := p.Move(m)
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, FormatMove(m), err)
		}
		var mods string
		d := next.Last()
		if d.Captured > 0 {
			mods += "x"
		}
		if d.ExtraTurn {
			mods += "+"
		}
		r.Ops = append(r.Ops, &Move{Move: m, Modifiers: mods})
		prev, p = mover, next
	}
	if over, winner := p.GameOver(); over && len(ms) > 0 {
		r.Ops = append(r.Ops, &GameOver{Winner: winner})
	}
	return nil
}

func readTags(r *bufio.Reader, rec *Record) error {
	for {
		if e := skipWS(r); e != nil {
			return e
		}
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if c != '[' {
			return r.UnreadByte()
		}
		line, e := r.ReadString(']')
		if e != nil {
			return e
		}
		line = line[:len(line)-1]
		bits := strings.SplitN(line, " ", 2)
		if len(bits) != 2 {
			return errors.New("bad tag")
		}
		rec.Tags = append(rec.Tags, Tag{
			Name:  bits[0],
			Value: strings.Trim(bits[1], "\""),
		})
	}
}

func readMoves(r *bufio.Reader, rec *Record) error {
	s := bufio.NewScanner(r)
	s.Split(splitMoves)
	for s.Scan() {
		tok := s.Text()
		common := opCommon{tok}
		switch {
		case tok[0] == '{':
			if len(tok) < 2 || tok[len(tok)-1] != '}' {
				return errUnterminatedComment
			}
			rec.Ops = append(rec.Ops, &Comment{common, tok[1 : len(tok)-1]})
		case tok == "1-0":
			rec.Ops = append(rec.Ops, &GameOver{common, mancala.PlayerOne})
		case tok == "0-1":
			rec.Ops = append(rec.Ops, &GameOver{common, mancala.PlayerTwo})
		case tok == "1/2-1/2":
			rec.Ops = append(rec.Ops, &GameOver{common, mancala.NoPlayer})
		case tok[len(tok)-1] == '.':
			n, e := strconv.Atoi(tok[:len(tok)-1])
			if e != nil {
				return e
			}
			rec.Ops = append(rec.Ops, &MoveNumber{common, n})
		default:
			trimmed := strings.TrimRight(tok, "x+")
			move, e := ParseMove(trimmed)
			if e != nil {
				return e
			}
			rec.Ops = append(rec.Ops, &Move{common, move, tok[len(trimmed):]})
		}
	}
	return s.Err()
}

var errUnterminatedComment = errors.New("unterminated comment")

func splitMoves(buf []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(buf) && unicode.IsSpace(rune(buf[start])) {
		start++
	}
	if start == len(buf) {
		return start, nil, nil
	}
	if buf[start] == '{' {
		for i := start; i < len(buf); i++ {
			if buf[i] == '}' {
				return i + 1, buf[start : i+1], nil
			}
		}
		if atEOF {
			return 0, nil, errUnterminatedComment
		}
		return start, nil, nil
	}
	for i := start; i < len(buf); i++ {
		if unicode.IsSpace(rune(buf[i])) {
			return i + 1, buf[start:i], nil
		}
	}
	if atEOF {
		return len(buf), buf[start:], nil
	}
	return start, nil, nil
}

func skipWS(r *bufio.Reader) error {
	for {
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

// Tag values cannot carry their own delimiters.
var tagEscaper = strings.NewReplacer("\"", "", "]", "")

func (r *Record) Render() string {
	var out bytes.Buffer
	for _, tag := range r.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n",
			tag.Name, tagEscaper.Replace(tag.Value),
		)
	}
	out.WriteString("\n")

	for _, op := range r.Ops {
		switch o := op.(type) {
		case *MoveNumber:
			fmt.Fprintf(&out, "\n%d.", o.Number)
		case *Move:
			fmt.Fprintf(&out, " %s%s", FormatMove(o.Move), o.Modifiers)
		case *Comment:
			fmt.Fprintf(&out, " {%s}", o.Comment)
		case *GameOver:
			fmt.Fprintf(&out, "\n%s\n", FormatResult(o.Winner))
		}
	}
	return out.String()
}

func FormatResult(w mancala.Player) string {
	switch w {
	case mancala.PlayerOne:
		return "1-0"
	case mancala.PlayerTwo:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
