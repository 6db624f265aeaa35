// Package storage provides SQLite-backed persistence for experiment batches.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"pacman/experiments/metrics"

	_ "modernc.org/sqlite"
)

// Store handles SQLite database operations for batch run logging.
type Store struct {
	db *sql.DB
}

// Run is one experiment batch: a number of games played on one level under
// one agent configuration.
type Run struct {
	ID         string
	Name       string
	Level      string
	Config     int
	Games      int
	Cleared    int
	Caught     int
	Stalled    int
	TotalScore int64
	TotalTicks int64
	StartedAt  time.Time
	EndedAt    *time.Time
	Duration   time.Duration
}

// Game is one finished game within a run.
type Game struct {
	RunID       string
	GameID      int
	Agent       int
	Seed        uint64
	Outcome     string
	Score       int
	Ticks       int
	PelletsLeft int
}

// Move is one recorded decision within a game.
type Move struct {
	RunID       string
	GameID      int
	Tick        int
	Move        string
	Elapsed     time.Duration
	PelletsLeft int
	Score       int
}

// New creates a new Store with the given database path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		level TEXT NOT NULL,
		config INTEGER NOT NULL,
		games INTEGER DEFAULT 0,
		cleared INTEGER DEFAULT 0,
		caught INTEGER DEFAULT 0,
		stalled INTEGER DEFAULT 0,
		total_score INTEGER DEFAULT 0,
		total_ticks INTEGER DEFAULT 0,
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		ended_at DATETIME,
		duration_ms INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS games (
		run_id TEXT NOT NULL,
		game_id INTEGER NOT NULL,
		agent INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		score INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		pellets_left INTEGER NOT NULL,
		PRIMARY KEY (run_id, game_id),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE TABLE IF NOT EXISTS moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		game_id INTEGER NOT NULL,
		tick INTEGER NOT NULL,
		move TEXT NOT NULL,
		elapsed_us INTEGER NOT NULL,
		pellets_left INTEGER NOT NULL,
		score INTEGER NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_games_run ON games(run_id);
	CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(run_id, game_id, tick);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateRun creates a new run record before any of its games finish.
func (s *Store) CreateRun(id, name, level string, config int) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, name, level, config, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, level, config, time.Now().UTC(),
	)
	return err
}

// FinishRun stores the batch totals and marks the run as ended.
func (s *Store) FinishRun(id string, batch metrics.BatchMetric) error {
	_, err := s.db.Exec(
		`UPDATE runs SET games = ?, cleared = ?, caught = ?, stalled = ?,
		 total_score = ?, total_ticks = ?, ended_at = ?, duration_ms = ?
		 WHERE id = ?`,
		batch.Games, batch.Cleared, batch.Caught, batch.Stalled,
		batch.TotalScore, batch.TotalTicks, time.Now().UTC(), batch.Duration.Milliseconds(), id,
	)
	return err
}

// SaveGame stores one finished game of a run.
func (s *Store) SaveGame(runID string, record metrics.GameRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO games (run_id, game_id, agent, seed, outcome, score, ticks, pellets_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, record.ID, record.Agent, int64(record.Seed), record.Outcome,
		record.Score, record.Ticks, record.PelletsLeft,
	)
	return err
}

// SaveMoves stores a game's decisions in one transaction.
func (s *Store) SaveMoves(runID string, gameID int, moves []metrics.MoveMetric) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin move insert: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO moves (run_id, game_id, tick, move, elapsed_us, pellets_left, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range moves {
		_, err := stmt.Exec(runID, gameID, m.Tick, m.Move, m.Elapsed.Microseconds(), m.PelletsLeft, m.Score)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert move: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, name, level, config, games, cleared, caught, stalled,
		 total_score, total_ticks, started_at, ended_at, duration_ms
		 FROM runs WHERE id = ?`, id,
	)
	return scanRun(row.Scan)
}

// RecentRuns returns the most recent runs.
func (s *Store) RecentRuns(limit int) ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, name, level, config, games, cleared, caught, stalled,
		 total_score, total_ticks, started_at, ended_at, duration_ms
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanRun(scan func(dest ...any) error) (*Run, error) {
	var run Run
	var endedAt sql.NullTime
	var durationMS int64
	err := scan(&run.ID, &run.Name, &run.Level, &run.Config, &run.Games,
		&run.Cleared, &run.Caught, &run.Stalled, &run.TotalScore, &run.TotalTicks,
		&run.StartedAt, &endedAt, &durationMS)
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		run.EndedAt = &endedAt.Time
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}

// GamesForRun retrieves all games of a run in game order.
func (s *Store) GamesForRun(runID string) ([]*Game, error) {
	rows, err := s.db.Query(
		`SELECT run_id, game_id, agent, seed, outcome, score, ticks, pellets_left
		 FROM games WHERE run_id = ? ORDER BY game_id`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*Game
	for rows.Next() {
		var g Game
		var seed int64
		err := rows.Scan(&g.RunID, &g.GameID, &g.Agent, &seed, &g.Outcome,
			&g.Score, &g.Ticks, &g.PelletsLeft)
		if err != nil {
			return nil, err
		}
		g.Seed = uint64(seed)
		games = append(games, &g)
	}
	return games, rows.Err()
}

// MovesForGame retrieves one game's decisions in tick order.
func (s *Store) MovesForGame(runID string, gameID int) ([]*Move, error) {
	rows, err := s.db.Query(
		`SELECT run_id, game_id, tick, move, elapsed_us, pellets_left, score
		 FROM moves WHERE run_id = ? AND game_id = ? ORDER BY tick`, runID, gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moves []*Move
	for rows.Next() {
		var m Move
		var elapsedUS int64
		err := rows.Scan(&m.RunID, &m.GameID, &m.Tick, &m.Move, &elapsedUS,
			&m.PelletsLeft, &m.Score)
		if err != nil {
			return nil, err
		}
		m.Elapsed = time.Duration(elapsedUS) * time.Microsecond
		moves = append(moves, &m)
	}
	return moves, rows.Err()
}
