package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetBestScore returns the best score recorded for gameID, or 0.
func (s *Store) GetBestScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT score FROM best_scores WHERE game_id = ?`, gameID).Scan(&best)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: best score for %s: %w", gameID, err)
	}
	return best, nil
}

// SetBestScoreIfHigher raises the best score of gameID to score. It reports
// whether anything changed; scores of zero or less never count.
func (s *Store) SetBestScoreIfHigher(gameID string, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}
	res, err := s.db.Exec(`
		INSERT INTO best_scores (game_id, score, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(game_id) DO UPDATE
			SET score = excluded.score, updated_at = excluded.updated_at
			WHERE excluded.score > best_scores.score`,
		gameID, score, s.stamp())
	if err != nil {
		return false, fmt.Errorf("storage: set best score for %s: %w", gameID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: set best score for %s: %w", gameID, err)
	}
	return n == 1, nil
}
