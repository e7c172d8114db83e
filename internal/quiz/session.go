package quiz

import (
	"context"
	"sync"
	"time"
)

// AutoAdvanceDelay is how long a session waits before moving on after a
// correct answer or after a question leaves the collection being reviewed.
const AutoAdvanceDelay = 300 * time.Millisecond

const (
	NoticeAutoCollected   = "已自动加入错题集"
	EmptyTitle            = "暂无题目"
	EmptyCollectionDetail = "该分类下还没有收藏任何题目。"
)

type SessionOptions struct {
	Favorites FavoritesStore
	Scheduler Scheduler
	// OnFinish fires exactly once, when the session moves past its last question.
	OnFinish func(score, total int)
	// OnChange fires after transitions the caller did not trigger itself:
	// a timer-driven advance or an explanation arriving.
	OnChange func()
}

// Session drives one pass over a fixed list of questions. It is safe for use
// from a UI goroutine, timer callbacks and explanation goroutines at once.
// Methods that reject a call because of the current state return false.
type Session struct {
	questions  []Question
	category   Category
	favorites  FavoritesStore
	scheduler  Scheduler
	onFinish   func(score, total int)
	onChange   func()
	collecting bool

	mu            sync.Mutex
	index         int
	selection     []string
	submitted     bool
	correct       bool
	autoCollected bool
	favorite      bool
	score         int
	finished      bool
	closed        bool

	pending  *pendingAdvance
	timerSeq uint64

	// viewSeq changes whenever the current question changes; explanations
	// requested for an older value are discarded.
	viewSeq       uint64
	explaining    bool
	explanation   string
	cancelExplain context.CancelFunc
}

type pendingAdvance struct {
	seq  uint64
	stop func() bool
}

func NewSession(questions []Question, category Category, opts SessionOptions) *Session {
	snapshot := make([]Question, len(questions))
	copy(snapshot, questions)

	session := &Session{
		questions:  snapshot,
		category:   category,
		favorites:  opts.Favorites,
		scheduler:  opts.Scheduler,
		onFinish:   opts.OnFinish,
		onChange:   opts.OnChange,
		collecting: category.IsCollection(),
	}
	if session.favorites == nil {
		session.favorites = noFavorites{}
	}
	if session.scheduler == nil {
		session.scheduler = RealScheduler{}
	}
	if len(snapshot) > 0 {
		session.favorite = session.favorites.Contains(snapshot[0].ID)
	}
	return session
}

func (s *Session) Category() Category {
	return s.category
}

func (s *Session) Empty() bool {
	return len(s.questions) == 0
}

// Select applies a click on the option with the given token. MULTI
// questions toggle the token in the working selection; SINGLE and BOOLEAN
// questions submit immediately.
func (s *Session) Select(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.interactiveLocked() || s.submitted {
		return false
	}
	question := s.questions[s.index]
	if !question.HasOption(token) {
		return false
	}

	if question.Category == CategoryMulti {
		s.selection = toggleToken(s.selection, token)
		return true
	}

	s.selection = []string{token}
	s.submitLocked()
	return true
}

// Submit grades the working selection. It is rejected once the question is
// submitted or while the selection is empty.
func (s *Session) Submit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.interactiveLocked() || s.submitted || len(s.selection) == 0 {
		return false
	}
	s.submitLocked()
	return true
}

func (s *Session) submitLocked() {
	question := s.questions[s.index]
	s.submitted = true
	s.correct = question.IsCorrect(s.selection)

	if s.correct {
		s.score++
		s.scheduleAdvanceLocked()
		return
	}

	s.favorites.Add(question.ID)
	s.favorite = true
	s.autoCollected = true
}

// Next moves to the following question, or finishes the session when the
// current question is the last one.
func (s *Session) Next() bool {
	s.mu.Lock()
	if !s.interactiveLocked() {
		s.mu.Unlock()
		return false
	}
	s.cancelPendingLocked()
	finish := s.advanceLocked()
	s.mu.Unlock()

	finish()
	return true
}

func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.interactiveLocked() {
		return false
	}
	s.cancelPendingLocked()
	if s.index == 0 {
		return false
	}
	s.moveLocked(s.index - 1)
	return true
}

// Jump moves to a zero-based index. Out-of-range indexes are rejected.
func (s *Session) Jump(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.interactiveLocked() {
		return false
	}
	s.cancelPendingLocked()
	if index < 0 || index >= len(s.questions) {
		return false
	}
	s.moveLocked(index)
	return true
}

// ToggleFavorite flips the current question's collection membership and
// returns the new membership. In collection mode, removing the question
// also schedules a move to the next one.
func (s *Session) ToggleFavorite() (favorite bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.interactiveLocked() {
		return false, false
	}
	id := s.questions[s.index].ID

	if !s.collecting {
		s.favorite = s.favorites.Toggle(id)
		return s.favorite, true
	}

	if s.favorite {
		s.favorites.Remove(id)
		s.favorite = false
		s.scheduleAdvanceLocked()
		return false, true
	}
	s.favorites.Add(id)
	s.favorite = true
	return true, true
}

// Close cancels any pending advance. Timer callbacks that still arrive
// afterwards are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.cancelExplainLocked()
	s.closed = true
}

// Explain asks explainer for an explanation of the current, already
// submitted question without blocking. The text is attached only if the
// session is still on that question when it arrives.
func (s *Session) Explain(ctx context.Context, explainer Explainer) bool {
	s.mu.Lock()
	if explainer == nil || !s.interactiveLocked() || !s.submitted || s.explaining {
		s.mu.Unlock()
		return false
	}
	question := s.questions[s.index]
	seq := s.viewSeq
	ctx, cancel := context.WithCancel(ctx)
	s.explaining = true
	s.explanation = ""
	s.cancelExplain = cancel
	s.mu.Unlock()

	request := ExplainRequest{
		QuestionID:    question.ID,
		QuestionText:  question.Text,
		Options:       question.Options,
		CorrectAnswer: question.CorrectAnswerLabel(),
	}

	go func() {
		defer cancel()
		text := explainer.Explain(ctx, request)

		s.mu.Lock()
		if s.closed || s.viewSeq != seq {
			s.mu.Unlock()
			return
		}
		s.cancelExplain = nil
		s.explaining = false
		s.explanation = text
		s.mu.Unlock()

		s.notifyChange()
	}()
	return true
}

func (s *Session) interactiveLocked() bool {
	return len(s.questions) > 0 && !s.finished && !s.closed
}

func (s *Session) scheduleAdvanceLocked() {
	s.cancelPendingLocked()

	s.timerSeq++
	seq := s.timerSeq
	stop := s.scheduler.AfterFunc(AutoAdvanceDelay, func() {
		s.fireAdvance(seq)
	})
	s.pending = &pendingAdvance{seq: seq, stop: stop}
}

func (s *Session) cancelPendingLocked() {
	if s.pending == nil {
		return
	}
	s.pending.stop()
	s.pending = nil
}

func (s *Session) fireAdvance(seq uint64) {
	s.mu.Lock()
	if s.closed || s.finished || s.pending == nil || s.pending.seq != seq {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	finish := s.advanceLocked()
	s.mu.Unlock()

	finish()
	s.notifyChange()
}

// advanceLocked returns the finish notification to run once the lock is
// released.
func (s *Session) advanceLocked() func() {
	if s.index < len(s.questions)-1 {
		s.moveLocked(s.index + 1)
		return func() {}
	}

	s.finished = true
	s.cancelExplainLocked()
	score, total := s.score, len(s.questions)
	return func() {
		if s.onFinish != nil {
			s.onFinish(score, total)
		}
	}
}

func (s *Session) moveLocked(index int) {
	s.index = index
	s.selection = nil
	s.submitted = false
	s.correct = false
	s.autoCollected = false
	s.favorite = s.favorites.Contains(s.questions[index].ID)
	s.viewSeq++
	s.cancelExplainLocked()
	s.explaining = false
	s.explanation = ""
}

// cancelExplainLocked abandons an explanation request still in flight.
func (s *Session) cancelExplainLocked() {
	if s.cancelExplain == nil {
		return
	}
	s.cancelExplain()
	s.cancelExplain = nil
}

func (s *Session) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func toggleToken(selection []string, token string) []string {
	out := make([]string, 0, len(selection)+1)
	removed := false
	for _, existing := range selection {
		if existing == token {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, token)
	}
	return out
}

type noFavorites struct{}

func (noFavorites) List() []string      { return nil }
func (noFavorites) Contains(string) bool { return false }
func (noFavorites) Add(string)           {}
func (noFavorites) Remove(string)        {}
func (noFavorites) Toggle(string) bool   { return false }
