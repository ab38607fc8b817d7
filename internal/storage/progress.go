package storage

import (
	"database/sql"
	"fmt"
)

// SaveProgress records that a level index was reached.
func (s *Store) SaveProgress(gameID string, level int) error {
	_, err := s.db.Exec(
		"INSERT INTO progress (game_id, level) VALUES (?, ?)",
		gameID, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// BestLevel returns the highest level index reached, from either recorded
// progress or final scores. ok is false when nothing was recorded.
func (s *Store) BestLevel(gameID string) (level int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MAX(level) FROM (
			SELECT level FROM progress WHERE game_id = ?
			UNION ALL
			SELECT level FROM scores WHERE game_id = ?
		)`,
		gameID, gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}
