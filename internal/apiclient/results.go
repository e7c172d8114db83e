package apiclient

import (
	"context"

	"glassquiz/internal/quiz"
)

// ResultHistory keeps finished sessions on the quiz-service. It satisfies
// quiz.ResultRepository.
type ResultHistory struct {
	client *HTTPClient
}

func NewResultHistory(client *HTTPClient) *ResultHistory {
	return &ResultHistory{client: client}
}

func (r *ResultHistory) RecordResult(ctx context.Context, result quiz.SessionResult) error {
	return r.client.RecordResult(ctx, result)
}

func (r *ResultHistory) ListResults(ctx context.Context, limit int) ([]quiz.SessionResult, error) {
	return r.client.Results(ctx, limit)
}
