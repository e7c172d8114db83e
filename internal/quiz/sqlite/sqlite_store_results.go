package sqlite

import (
	"context"
	"time"

	"glassquiz/internal/quiz"
)

func (s *Store) RecordResult(ctx context.Context, result quiz.SessionResult) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO session_results (session_id, category, score, total, finished_at_unix)
		 VALUES (?, ?, ?, ?, ?)`,
		result.SessionID,
		string(result.Category),
		result.Score,
		result.Total,
		result.FinishedAt.UTC().UnixNano(),
	)
	return err
}

// ListResults returns the most recent results first.
func (s *Store) ListResults(ctx context.Context, limit int) ([]quiz.SessionResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT session_id, category, score, total, finished_at_unix
		 FROM session_results
		 ORDER BY finished_at_unix DESC, session_id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]quiz.SessionResult, 0)
	for rows.Next() {
		var (
			result         quiz.SessionResult
			category       string
			finishedAtUnix int64
		)
		if err := rows.Scan(&result.SessionID, &category, &result.Score, &result.Total, &finishedAtUnix); err != nil {
			return nil, err
		}
		result.Category = quiz.Category(category)
		result.FinishedAt = time.Unix(0, finishedAtUnix).UTC()
		results = append(results, result)
	}

	return results, rows.Err()
}
