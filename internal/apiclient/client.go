package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"glassquiz/internal/bank"
	"glassquiz/internal/quiz"
)

const DefaultBaseURL = "http://127.0.0.1:8080"

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient talks to a running quiz-service.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type questionItem struct {
	ID             string        `json:"id"`
	Category       quiz.Category `json:"category"`
	Text           string        `json:"text"`
	Options        []quiz.Option `json:"options"`
	CorrectAnswers []string      `json:"correct_answers"`
}

type questionsResponse struct {
	Category  quiz.Category  `json:"category"`
	Questions []questionItem `json:"questions"`
}

type favoriteResponse struct {
	Favorite bool `json:"favorite"`
}

type explainRequest struct {
	QuestionID string `json:"question_id"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

type resultItem struct {
	SessionID  string        `json:"session_id"`
	Category   quiz.Category `json:"category"`
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	FinishedAt time.Time     `json:"finished_at"`
}

type resultsResponse struct {
	Results []resultItem `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Questions(ctx context.Context, category quiz.Category) ([]quiz.Question, error) {
	var payload questionsResponse
	path := "/categories/" + url.PathEscape(string(category)) + "/questions"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return toQuestions(payload.Questions), nil
}

// LoadBanks fetches the three base banks so that sessions can run locally
// against the service's questions.
func (c *HTTPClient) LoadBanks(ctx context.Context) (bank.Banks, error) {
	var banks bank.Banks
	for _, target := range []struct {
		category quiz.Category
		into     *[]quiz.Question
	}{
		{quiz.CategorySingle, &banks.Single},
		{quiz.CategoryMulti, &banks.Multi},
		{quiz.CategoryBoolean, &banks.Boolean},
	} {
		questions, err := c.Questions(ctx, target.category)
		if err != nil {
			return bank.Banks{}, fmt.Errorf("load %s bank: %w", target.category, err)
		}
		*target.into = questions
	}
	return banks, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]string, error) {
	var payload questionsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/favorites", nil, &payload); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(payload.Questions))
	for _, item := range payload.Questions {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, questionID string) error {
	return c.doJSON(ctx, http.MethodPut, "/favorites/"+url.PathEscape(questionID), nil, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, questionID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(questionID), nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, questionID string) (bool, error) {
	var payload favoriteResponse
	path := "/favorites/" + url.PathEscape(questionID) + "/toggle"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &payload); err != nil {
		return false, err
	}
	return payload.Favorite, nil
}

func (c *HTTPClient) Explain(ctx context.Context, questionID string) (string, error) {
	var payload explainResponse
	if err := c.doJSON(ctx, http.MethodPost, "/explanations", explainRequest{QuestionID: questionID}, &payload); err != nil {
		return "", err
	}
	return payload.Explanation, nil
}

func (c *HTTPClient) Results(ctx context.Context, limit int) ([]quiz.SessionResult, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	path := "/results"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var payload resultsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	results := make([]quiz.SessionResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		results = append(results, quiz.SessionResult{
			SessionID:  item.SessionID,
			Category:   item.Category,
			Score:      item.Score,
			Total:      item.Total,
			FinishedAt: item.FinishedAt,
		})
	}
	return results, nil
}

// RecordResult reports a finished session to the service's history.
func (c *HTTPClient) RecordResult(ctx context.Context, result quiz.SessionResult) error {
	return c.doJSON(ctx, http.MethodPost, "/results", resultItem{
		SessionID:  result.SessionID,
		Category:   result.Category,
		Score:      result.Score,
		Total:      result.Total,
		FinishedAt: result.FinishedAt,
	}, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}

// toQuestions rebuilds questions from their wire form. Boolean questions
// travel with display options, which are not part of the stored question.
func toQuestions(items []questionItem) []quiz.Question {
	questions := make([]quiz.Question, 0, len(items))
	for _, item := range items {
		question := quiz.Question{
			ID:             item.ID,
			Category:       item.Category,
			Text:           item.Text,
			CorrectAnswers: item.CorrectAnswers,
		}
		if item.Category != quiz.CategoryBoolean {
			for _, option := range item.Options {
				question.Options = append(question.Options, option.Label)
			}
		}
		questions = append(questions, question)
	}
	return questions
}
