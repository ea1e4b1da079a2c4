// internal/daily/store.go
//
// Persistence for daily challenge results and the leaderboard query.

package daily

import (
	"context"
	"database/sql"
)

// Result is one user's recorded solve of the day's featured puzzle.
type Result struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store persists daily results (table daily_results, UNIQUE(user_id, date)).
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a recorded result for the date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a result; a second solve on the same date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, day, part, elapsed_ms)
		 VALUES(?,?,?,?,?)`, r.UserID, r.Date, r.Day, r.Part, r.ElapsedMs,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID    string `json:"userId"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the fastest solvers for a date.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, elapsed_ms
		 FROM daily_results
		 WHERE date=?
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
