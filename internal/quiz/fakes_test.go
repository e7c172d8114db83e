package quiz

import (
	"context"
	"errors"
	"sync"
)

type memoryFavorites struct {
	mu  sync.Mutex
	ids []string
}

func (m *memoryFavorites) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ids...)
}

func (m *memoryFavorites) Contains(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexLocked(id) >= 0
}

func (m *memoryFavorites) Add(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexLocked(id) < 0 {
		m.ids = append(m.ids, id)
	}
}

func (m *memoryFavorites) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.indexLocked(id); idx >= 0 {
		m.ids = append(m.ids[:idx], m.ids[idx+1:]...)
	}
}

func (m *memoryFavorites) Toggle(id string) bool {
	if m.Contains(id) {
		m.Remove(id)
		return false
	}
	m.Add(id)
	return true
}

func (m *memoryFavorites) indexLocked(id string) int {
	for idx, existing := range m.ids {
		if existing == id {
			return idx
		}
	}
	return -1
}

type fakeResults struct {
	mu      sync.Mutex
	results []SessionResult
	err     error
}

func (f *fakeResults) RecordResult(_ context.Context, result SessionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, result)
	return nil
}

func (f *fakeResults) ListResults(_ context.Context, limit int) ([]SessionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.results) {
		limit = len(f.results)
	}
	return append([]SessionResult(nil), f.results[:limit]...), nil
}

var errRecordFailed = errors.New("record failed")

// blockingExplainer returns text once release is closed.
type blockingExplainer struct {
	release  chan struct{}
	text     string
	mu       sync.Mutex
	requests []ExplainRequest
}

func newBlockingExplainer(text string) *blockingExplainer {
	return &blockingExplainer{release: make(chan struct{}), text: text}
}

func (b *blockingExplainer) Explain(_ context.Context, request ExplainRequest) string {
	b.mu.Lock()
	b.requests = append(b.requests, request)
	b.mu.Unlock()
	<-b.release
	return b.text
}

// cancellableExplainer blocks until its context is done and reports the
// context error on done.
type cancellableExplainer struct {
	started chan struct{}
	done    chan error
}

func newCancellableExplainer() *cancellableExplainer {
	return &cancellableExplainer{started: make(chan struct{}, 1), done: make(chan error, 1)}
}

func (c *cancellableExplainer) Explain(ctx context.Context, _ ExplainRequest) string {
	c.started <- struct{}{}
	<-ctx.Done()
	c.done <- ctx.Err()
	return ""
}

type staticExplainer string

func (s staticExplainer) Explain(context.Context, ExplainRequest) string {
	return string(s)
}

func sampleBanks() (single, multi, boolean []Question) {
	single = []Question{
		{ID: "SINGLE-0", Category: CategorySingle, Text: "s0", Options: []string{"a", "b"}, CorrectAnswers: []string{"0"}},
		{ID: "SINGLE-1", Category: CategorySingle, Text: "s1", Options: []string{"a", "b"}, CorrectAnswers: []string{"1"}},
	}
	multi = []Question{
		{ID: "MULTI-0", Category: CategoryMulti, Text: "m0", Options: []string{"a", "b", "c"}, CorrectAnswers: []string{"0", "1"}},
	}
	boolean = []Question{
		{ID: "BOOLEAN-0", Category: CategoryBoolean, Text: "b0", CorrectAnswers: []string{TokenTrue}},
		{ID: "BOOLEAN-1", Category: CategoryBoolean, Text: "b1", CorrectAnswers: []string{TokenFalse}},
	}
	return single, multi, boolean
}

func generatedBank(category Category, n int) []Question {
	questions := make([]Question, 0, n)
	for idx := 0; idx < n; idx++ {
		questions = append(questions, Question{
			ID:             questionID(category, idx),
			Category:       category,
			Text:           "q",
			Options:        []string{"a", "b"},
			CorrectAnswers: []string{"0"},
		})
	}
	return questions
}
