package httpapi

import (
	"time"

	"glassquiz/internal/quiz"
)

type healthResponse struct {
	Status    string `json:"status"`
	Questions int    `json:"questions"`
}

type categoriesResponse struct {
	Categories []quiz.CategorySummary `json:"categories"`
}

type questionsResponse struct {
	Category      quiz.Category      `json:"category"`
	Title         string             `json:"title"`
	QuestionCount int                `json:"question_count"`
	Questions     []questionResponse `json:"questions"`
}

type questionResponse struct {
	ID             string        `json:"id"`
	Category       quiz.Category `json:"category"`
	Badge          string        `json:"badge"`
	Text           string        `json:"text"`
	Options        []quiz.Option `json:"options"`
	CorrectAnswers []string      `json:"correct_answers"`
	CorrectAnswer  string        `json:"correct_answer"`
	Favorite       bool          `json:"favorite"`
}

type favoriteResponse struct {
	QuestionID string `json:"question_id"`
	Favorite   bool   `json:"favorite"`
}

type explainRequest struct {
	QuestionID string `json:"question_id"`
}

type explainResponse struct {
	QuestionID  string `json:"question_id"`
	Explanation string `json:"explanation"`
}

type recordResultRequest struct {
	SessionID  string    `json:"session_id"`
	Category   string    `json:"category"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	FinishedAt time.Time `json:"finished_at"`
}

type resultResponse struct {
	SessionID  string        `json:"session_id"`
	Category   quiz.Category `json:"category"`
	Title      string        `json:"title"`
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	FinishedAt time.Time     `json:"finished_at"`
}

type resultsResponse struct {
	Results []resultResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}
