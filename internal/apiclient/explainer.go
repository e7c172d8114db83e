package apiclient

import (
	"context"
	"log"
	"strings"

	"glassquiz/internal/gemini"
	"glassquiz/internal/quiz"
)

// Explainer asks the quiz-service for explanations, so a remote client uses
// the server's credentials. Failures yield the same fallback texts as a local
// explanation client.
type Explainer struct {
	client *HTTPClient
	logger *log.Logger
}

func NewExplainer(client *HTTPClient, logger *log.Logger) *Explainer {
	if logger == nil {
		logger = log.Default()
	}
	return &Explainer{client: client, logger: logger}
}

func (e *Explainer) Explain(ctx context.Context, request quiz.ExplainRequest) string {
	text, err := e.client.Explain(ctx, request.QuestionID)
	if err != nil {
		e.logger.Printf("warning: remote explanation for %s: %v", request.QuestionID, err)
		return gemini.FailureText
	}
	if strings.TrimSpace(text) == "" {
		return gemini.EmptyText
	}
	return strings.TrimSpace(text)
}
