package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"glassquiz/internal/quiz"
)

const (
	defaultResultsLimit = 20
	maxRequestBodyBytes = 1 << 16
)

func (a *API) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	catalog := a.service.Catalog()
	total := catalog.Count(quiz.CategorySingle) + catalog.Count(quiz.CategoryMulti) + catalog.Count(quiz.CategoryBoolean)
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Questions: total})
}

func (a *API) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: a.service.Categories()})
}

func (a *API) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	category, err := quiz.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questions, err := a.service.Questions(category)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		Category:      category,
		Title:         category.Title(),
		QuestionCount: len(questions),
		Questions:     a.toQuestionResponses(questions),
	})
}

// HandleGenerateMock replaces the current mock set and returns it.
func (a *API) HandleGenerateMock(w http.ResponseWriter, _ *http.Request) {
	questions := a.service.GenerateMock()
	writeJSON(w, http.StatusCreated, questionsResponse{
		Category:      quiz.CategoryMock,
		Title:         quiz.CategoryMock.Title(),
		QuestionCount: len(questions),
		Questions:     a.toQuestionResponses(questions),
	})
}

func (a *API) HandleFavorites(w http.ResponseWriter, _ *http.Request) {
	questions := a.service.Favorites()
	writeJSON(w, http.StatusOK, questionsResponse{
		QuestionCount: len(questions),
		Questions:     a.toQuestionResponses(questions),
	})
}

func (a *API) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")
	if err := a.service.AddFavorite(questionID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{QuestionID: questionID, Favorite: true})
}

func (a *API) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")
	if err := a.service.RemoveFavorite(questionID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{QuestionID: questionID, Favorite: false})
}

func (a *API) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")
	favorite, err := a.service.ToggleFavorite(questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{QuestionID: questionID, Favorite: favorite})
}

func (a *API) HandleExplain(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request explainRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	questionID := strings.TrimSpace(request.QuestionID)
	if questionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question_id is required"})
		return
	}

	explanation, err := a.service.Explain(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{QuestionID: questionID, Explanation: explanation})
}

func (a *API) HandleResults(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultResultsLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	results, err := a.service.ListResults(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := resultsResponse{Results: make([]resultResponse, 0, len(results))}
	for _, result := range results {
		response.Results = append(response.Results, toResultResponse(result))
	}
	writeJSON(w, http.StatusOK, response)
}

// HandleRecordResult stores the result of a session that ran on a client.
func (a *API) HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request recordResultRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	category, err := quiz.ParseCategory(request.Category)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown category"})
		return
	}

	result := quiz.SessionResult{
		SessionID:  strings.TrimSpace(request.SessionID),
		Category:   category,
		Score:      request.Score,
		Total:      request.Total,
		FinishedAt: request.FinishedAt,
	}
	if err := a.service.RecordResult(r.Context(), result); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResultResponse(result))
}

func toResultResponse(result quiz.SessionResult) resultResponse {
	return resultResponse{
		SessionID:  result.SessionID,
		Category:   result.Category,
		Title:      result.Category.Title(),
		Score:      result.Score,
		Total:      result.Total,
		FinishedAt: result.FinishedAt,
	}
}
