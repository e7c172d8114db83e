package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"glassquiz/internal/quiz"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrUnknownCategory):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown category"})
	case errors.Is(err, quiz.ErrQuestionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "question not found"})
	case errors.Is(err, quiz.ErrExplainerUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "explanation service unavailable"})
	case errors.Is(err, quiz.ErrResultsUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "result history unavailable"})
	case errors.Is(err, quiz.ErrInvalidResult):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid result"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// toQuestionResponses exposes the correct answers: clients grade locally,
// the same way the interactive front-ends do.
func (a *API) toQuestionResponses(questions []quiz.Question) []questionResponse {
	response := make([]questionResponse, 0, len(questions))
	for _, question := range questions {
		response = append(response, questionResponse{
			ID:             question.ID,
			Category:       question.Category,
			Badge:          question.Category.Badge(),
			Text:           question.Text,
			Options:        question.DisplayOptions(),
			CorrectAnswers: question.CorrectAnswers,
			CorrectAnswer:  question.CorrectAnswerLabel(),
			Favorite:       a.service.IsFavorite(question.ID),
		})
	}
	return response
}

var errInvalidLimit = errors.New("limit must be a positive integer")

func parseLimit(r *http.Request, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("limit"))
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, errInvalidLimit
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
