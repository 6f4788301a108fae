package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Pits      int       `db:"pits"`
	Seeds     int       `db:"seeds"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Kind1     string    `db:"kind1"`
	Kind2     string    `db:"kind2"`
	Result    string    `db:"result"`
	Winner    string    `db:"winner"`
	Score1    int       `db:"score1"`
	Score2    int       `db:"score2"`
	Moves     int       `db:"moves"`
	Record    string    `db:"record"`
}

type Stats struct {
	Games    int     `db:"games"`
	Wins     int     `db:"wins"`
	Losses   int     `db:"losses"`
	Ties     int     `db:"ties"`
	AvgScore float64 `db:"avg_score"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway, and a single connection keeps
	// ":memory:" databases alive.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(createGameTable)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}
	_, err = db.Exec(createPlayerView)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	return r.insertGame(r.insert, g)
}

func (r *Repository) insertGame(stmt *sqlx.NamedStmt, g *Game) error {
	res, err := stmt.Exec(g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if e := r.insertGame(stmt, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

func (r *Repository) RecentGames(limit int) ([]*Game, error) {
	var gs []*Game
	if err := r.db.Select(&gs, selectRecent, limit); err != nil {
		return nil, err
	}
	return gs, nil
}

func (r *Repository) PlayerStats(name string) (Stats, error) {
	var st Stats
	err := r.db.Get(&st, selectPlayerStats, name)
	return st, err
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
