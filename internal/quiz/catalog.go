package quiz

import (
	"math/rand/v2"
	"sync"
)

// MockQuestionCount is the size of a generated mock exam.
const MockQuestionCount = 20

// Catalog serves the parsed banks by category. Base lists are built once and
// shared between callers; collection lists are recomputed from the favorites
// store on every call so counts never go stale.
type Catalog struct {
	banks     map[Category][]Question
	byID      map[string]Question
	favorites FavoritesStore

	mu   sync.Mutex
	rng  *rand.Rand
	mock []Question
}

type CatalogOption func(*Catalog)

// WithRand fixes the random source used for mock generation.
func WithRand(rng *rand.Rand) CatalogOption {
	return func(c *Catalog) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func NewCatalog(single, multi, boolean []Question, favorites FavoritesStore, opts ...CatalogOption) *Catalog {
	catalog := &Catalog{
		banks: map[Category][]Question{
			CategorySingle:  single,
			CategoryMulti:   multi,
			CategoryBoolean: boolean,
		},
		byID:      make(map[string]Question, len(single)+len(multi)+len(boolean)),
		favorites: favorites,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, list := range [][]Question{single, multi, boolean} {
		for _, question := range list {
			catalog.byID[question.ID] = question
		}
	}
	for _, opt := range opts {
		opt(catalog)
	}
	return catalog
}

// Questions returns the list for a category. The returned slice must not be
// modified. Unknown categories yield nil.
func (c *Catalog) Questions(category Category) []Question {
	switch {
	case category.IsBase():
		return c.banks[category]
	case category.IsCollection():
		return c.collection(category.Base())
	case category == CategoryMock:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.mock
	default:
		return nil
	}
}

func (c *Catalog) collection(base Category) []Question {
	if c.favorites == nil {
		return []Question{}
	}

	ids := c.favorites.List()
	questions := make([]Question, 0, len(ids))
	for _, id := range ids {
		question, ok := c.byID[id]
		if !ok || question.Category != base {
			continue
		}
		questions = append(questions, question)
	}
	return questions
}

// GenerateMockQuestions draws a fresh mock exam from all three banks and
// replaces the previous one.
func (c *Catalog) GenerateMockQuestions() []Question {
	pool := make([]Question, 0, len(c.byID))
	for _, category := range []Category{CategorySingle, CategoryMulti, CategoryBoolean} {
		pool = append(pool, c.banks[category]...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(pool) - 1; i > 0; i-- {
		j := c.rng.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if len(pool) > MockQuestionCount {
		pool = pool[:MockQuestionCount:MockQuestionCount]
	}
	c.mock = pool
	return pool
}

func (c *Catalog) Title(category Category) string {
	return category.Title()
}

func (c *Catalog) Count(category Category) int {
	return len(c.Questions(category))
}

func (c *Catalog) Lookup(questionID string) (Question, bool) {
	question, ok := c.byID[questionID]
	return question, ok
}
