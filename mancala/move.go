package mancala

import "errors"

// Move sows the pit at index Pit on the mover's side. Pits are counted
// from the one furthest from the mover's store.
type Move struct {
	Pit int
}

type MoveDetails struct {
	Player    Player
	Move      Move
	ExtraTurn bool
	Captured  int
	// Collected is set when the move ended the game and the remaining
	// pits were swept into their owners' stores.
	Collected bool
}

var (
	ErrGameOver   = errors.New("game is over")
	ErrIllegalPit = errors.New("no such pit")
	ErrEmptyPit   = errors.New("pit is empty")
)

func (p *Position) Move(m Move) (*Position, error) {
	if over, _ := p.GameOver(); over {
		return nil, ErrGameOver
	}
	n := p.Size()
	if m.Pit < 0 || m.Pit >= n {
		return nil, ErrIllegalPit
	}
	me := p.toMove
	if p.board[me.Pits()][m.Pit] == 0 {
		return nil, ErrEmptyPit
	}

	next := p.clone()
	next.move++
	mine := next.board[me.Pits()]
	theirs := next.board[me.Opponent().Pits()]
	store := next.board[me.Store()]

	seeds := mine[m.Pit]
	mine[m.Pit] = 0
	// A lap covers every pocket but the opponent's store and ends back
	// in the emptied pit, so whole laps are sown in one step.
	if lap := 2*n + 1; seeds >= lap {
		k := seeds / lap
		for i := range mine {
			mine[i] += k
			theirs[i] += k
		}
		store[0] += k
		seeds %= lap
	}
	region, pos := me.Pits(), m.Pit
	for ; seeds > 0; seeds-- {
		switch region {
		case me.Pits():
			pos++
			if pos == n {
				region, pos = me.Store(), 0
				store[0]++
			} else {
				mine[pos]++
			}
		case me.Store():
			region, pos = me.Opponent().Pits(), 0
			theirs[0]++
		default:
			pos++
			// the opponent's store is skipped
			if pos == n {
				region, pos = me.Pits(), 0
			}
			next.board[region][pos]++
		}
	}

	d := MoveDetails{Player: me, Move: m}
	switch {
	case region == me.Store():
		d.ExtraTurn = true
	case region == me.Pits() && mine[pos] == 1:
		opposite := n - 1 - pos
		if theirs[opposite] > 0 {
			d.Captured = theirs[opposite] + 1
			store[0] += d.Captured
			theirs[opposite] = 0
			mine[pos] = 0
		}
	}

	if next.sideEmpty(PlayerOne) || next.sideEmpty(PlayerTwo) {
		next.collect()
		d.Collected = true
		d.ExtraTurn = false
	}
	if !d.ExtraTurn {
		next.toMove = me.Opponent()
	}
	next.last = d
	return next, nil
}

func (p *Position) collect() {
	for _, pl := range []Player{PlayerOne, PlayerTwo} {
		pits := p.board[pl.Pits()]
		for i, s := range pits {
			p.board[pl.Store()][0] += s
			pits[i] = 0
		}
	}
}
