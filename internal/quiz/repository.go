package quiz

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidResult      = errors.New("invalid session result")
	ErrResultsUnavailable = errors.New("result history is not configured")
)

// FavoritesStore is the persistence adapter for the mistakes collection.
// Implementations degrade to an empty collection on storage failures and
// never return errors to the caller. Add and Remove are idempotent.
type FavoritesStore interface {
	List() []string
	Contains(questionID string) bool
	Add(questionID string)
	Remove(questionID string)
	Toggle(questionID string) bool
}

type SessionResult struct {
	SessionID  string    `json:"session_id"`
	Category   Category  `json:"category"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	FinishedAt time.Time `json:"finished_at"`
}

type ResultRepository interface {
	RecordResult(ctx context.Context, result SessionResult) error
	ListResults(ctx context.Context, limit int) ([]SessionResult, error)
}

type ExplainRequest struct {
	QuestionID    string
	QuestionText  string
	Options       []string
	CorrectAnswer string
}

// Explainer produces a short display-ready explanation. It must not fail:
// every error path returns a fallback string instead.
type Explainer interface {
	Explain(ctx context.Context, request ExplainRequest) string
}
