package quiz

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

var ErrExplainerUnavailable = errors.New("explanation service is not configured")

type ServiceOptions struct {
	Favorites FavoritesStore
	// Results is optional; without it finished sessions are not recorded.
	Results   ResultRepository
	Explainer Explainer
	Scheduler Scheduler
	Logger    *log.Logger
	Now       func() time.Time
}

// SessionHooks are the caller's callbacks for a session started by Service.
type SessionHooks struct {
	OnFinish func(score, total int)
	OnChange func()
}

type CategorySummary struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Count    int      `json:"count"`
}

type Service struct {
	catalog   *Catalog
	favorites FavoritesStore
	results   ResultRepository
	explainer Explainer
	scheduler Scheduler
	logger    *log.Logger
	now       func() time.Time
}

func NewService(catalog *Catalog, opts ServiceOptions) *Service {
	service := &Service{
		catalog:   catalog,
		favorites: opts.Favorites,
		results:   opts.Results,
		explainer: opts.Explainer,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		now:       opts.Now,
	}
	if service.favorites == nil {
		service.favorites = noFavorites{}
	}
	if service.scheduler == nil {
		service.scheduler = RealScheduler{}
	}
	if service.logger == nil {
		service.logger = log.Default()
	}
	if service.now == nil {
		service.now = time.Now
	}
	return service
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Explainer() Explainer {
	return s.explainer
}

func (s *Service) Categories() []CategorySummary {
	summaries := make([]CategorySummary, 0, len(AllCategories))
	for _, category := range AllCategories {
		summaries = append(summaries, CategorySummary{
			Category: category,
			Title:    s.catalog.Title(category),
			Count:    s.catalog.Count(category),
		})
	}
	return summaries
}

func (s *Service) Questions(category Category) ([]Question, error) {
	if !knownCategory(category) {
		return nil, ErrUnknownCategory
	}
	questions := s.catalog.Questions(category)
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *Service) GenerateMock() []Question {
	return s.catalog.GenerateMockQuestions()
}

// StartSession snapshots the current list for category and returns a new
// session over it. Finished sessions are recorded when a ResultRepository
// is configured.
func (s *Service) StartSession(category Category, hooks SessionHooks) (*Session, error) {
	if !knownCategory(category) {
		return nil, ErrUnknownCategory
	}

	sessionID := uuid.NewString()
	return NewSession(s.catalog.Questions(category), category, SessionOptions{
		Favorites: s.favorites,
		Scheduler: s.scheduler,
		OnChange:  hooks.OnChange,
		OnFinish: func(score, total int) {
			s.recordResult(SessionResult{
				SessionID:  sessionID,
				Category:   category,
				Score:      score,
				Total:      total,
				FinishedAt: s.now().UTC(),
			})
			if hooks.OnFinish != nil {
				hooks.OnFinish(score, total)
			}
		},
	}), nil
}

// StartMock generates a fresh mock set and starts a session over it.
func (s *Service) StartMock(hooks SessionHooks) *Session {
	s.GenerateMock()
	session, _ := s.StartSession(CategoryMock, hooks)
	return session
}

func (s *Service) recordResult(result SessionResult) {
	if s.results == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.results.RecordResult(ctx, result); err != nil {
		s.logger.Printf("warning: record result for session %s: %v", result.SessionID, err)
	}
}

// RecordResult stores a result reported from outside a local session, such
// as a client running its sessions against this service.
func (s *Service) RecordResult(ctx context.Context, result SessionResult) error {
	if s.results == nil {
		return ErrResultsUnavailable
	}
	if !knownCategory(result.Category) {
		return ErrUnknownCategory
	}
	if strings.TrimSpace(result.SessionID) == "" || result.Total < 0 || result.Score < 0 || result.Score > result.Total {
		return ErrInvalidResult
	}
	if result.FinishedAt.IsZero() {
		result.FinishedAt = s.now()
	}
	result.FinishedAt = result.FinishedAt.UTC()
	return s.results.RecordResult(ctx, result)
}

func (s *Service) ListResults(ctx context.Context, limit int) ([]SessionResult, error) {
	if s.results == nil {
		return []SessionResult{}, nil
	}
	if limit <= 0 {
		limit = defaultResultsLimit
	}
	if limit > maxResultsLimit {
		limit = maxResultsLimit
	}
	return s.results.ListResults(ctx, limit)
}

func (s *Service) Lookup(questionID string) (Question, error) {
	question, ok := s.catalog.Lookup(strings.TrimSpace(questionID))
	if !ok {
		return Question{}, ErrQuestionNotFound
	}
	return question, nil
}

// Favorites returns the collected questions in collection order. Stored ids
// that no longer resolve to a question are skipped.
func (s *Service) Favorites() []Question {
	ids := s.favorites.List()
	questions := make([]Question, 0, len(ids))
	for _, id := range ids {
		if question, ok := s.catalog.Lookup(id); ok {
			questions = append(questions, question)
		}
	}
	return questions
}

func (s *Service) IsFavorite(questionID string) bool {
	return s.favorites.Contains(questionID)
}

func (s *Service) AddFavorite(questionID string) error {
	question, err := s.Lookup(questionID)
	if err != nil {
		return err
	}
	s.favorites.Add(question.ID)
	return nil
}

func (s *Service) RemoveFavorite(questionID string) error {
	question, err := s.Lookup(questionID)
	if err != nil {
		return err
	}
	s.favorites.Remove(question.ID)
	return nil
}

func (s *Service) ToggleFavorite(questionID string) (bool, error) {
	question, err := s.Lookup(questionID)
	if err != nil {
		return false, err
	}
	return s.favorites.Toggle(question.ID), nil
}

// Explain returns an explanation for a question outside of any session.
func (s *Service) Explain(ctx context.Context, questionID string) (string, error) {
	question, err := s.Lookup(questionID)
	if err != nil {
		return "", err
	}
	if s.explainer == nil {
		return "", ErrExplainerUnavailable
	}
	return s.explainer.Explain(ctx, ExplainRequest{
		QuestionID:    question.ID,
		QuestionText:  question.Text,
		Options:       question.Options,
		CorrectAnswer: question.CorrectAnswerLabel(),
	}), nil
}

func knownCategory(category Category) bool {
	for _, known := range AllCategories {
		if known == category {
			return true
		}
	}
	return false
}
