package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime,
  pits int,
  seeds int,
  player1 varchar,
  player2 varchar,
  kind1 varchar,
  kind2 varchar,
  result string,
  winner string,
  score1 int,
  score2 int,
  moves int,
  record text
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, time, player, opponent, seat, win, score, opponent_score, moves
) AS
SELECT id, time, player1, player2, 1,
       CASE result WHEN '1-0' THEN 'win' WHEN '0-1' THEN 'lose' ELSE 'tie' END,
       score1, score2, moves
 FROM games
UNION ALL
SELECT id, time, player2, player1, 2,
       CASE result WHEN '0-1' THEN 'win' WHEN '1-0' THEN 'lose' ELSE 'tie' END,
       score2, score1, moves
 FROM games
`

const insertStmt = `
INSERT INTO games (time, pits, seeds, player1, player2, kind1, kind2, result, winner, score1, score2, moves, record)
VALUES (:time, :pits, :seeds, :player1, :player2, :kind1, :kind2, :result, :winner, :score1, :score2, :moves, :record)
`

const selectRecent = `
SELECT id, time, pits, seeds, player1, player2, kind1, kind2, result, winner, score1, score2, moves, record
FROM games
ORDER BY time DESC, id DESC
LIMIT ?
`

const selectPlayerStats = `
SELECT
  COUNT(*) AS games,
  COALESCE(SUM(win = 'win'), 0) AS wins,
  COALESCE(SUM(win = 'lose'), 0) AS losses,
  COALESCE(SUM(win = 'tie'), 0) AS ties,
  COALESCE(AVG(score), 0) AS avg_score
FROM player_games
WHERE player = ?
`
