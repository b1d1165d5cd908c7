package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const defaultTopLimit = 10

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the score log of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore appends a finished run to the log and returns its row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score, created_at) VALUES (?, ?, ?)`,
		gameID, score, s.stamp())
	if err != nil {
		return 0, fmt.Errorf("storage: save score for %s: %w", gameID, err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit runs of gameID, best first. A limit of
// zero or less means ten.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.queryScores(`SELECT id, game_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// AllScores returns every run of gameID, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(`SELECT id, game_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC`, gameID)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// HighScore is the largest logged score of gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var high sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&high); err != nil {
		return 0, fmt.Errorf("storage: high score for %s: %w", gameID, err)
	}
	return int(high.Int64), nil
}

// ClearScores forgets every run and the best score of gameID.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"scores", "best_scores"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE game_id = ?`, gameID); err != nil {
			return fmt.Errorf("storage: clear %s from %s: %w", gameID, table, err)
		}
	}
	return tx.Commit()
}

// GetAllGamesStats aggregates the log per game. Games never played are absent.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: game stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			gs   GameStats
			last any
		)
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: scan game stats: %w", err)
		}
		gs.LastPlayed = parseTime(last)
		stats[gs.GameID] = &gs
	}
	return stats, rows.Err()
}
