package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glassquiz/internal/favorites"
	"glassquiz/internal/quiz"
	"glassquiz/internal/storage"
	"glassquiz/internal/testutil"
)

type staticExplainer string

func (s staticExplainer) Explain(context.Context, quiz.ExplainRequest) string {
	return string(s)
}

type fakeResults struct {
	results []quiz.SessionResult
}

func (f *fakeResults) RecordResult(_ context.Context, result quiz.SessionResult) error {
	f.results = append([]quiz.SessionResult{result}, f.results...)
	return nil
}

func (f *fakeResults) ListResults(_ context.Context, limit int) ([]quiz.SessionResult, error) {
	if limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

type fixture struct {
	model     Model
	favorites *favorites.Store
	scheduler *testutil.ManualScheduler
	results   *fakeResults
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	favs := favorites.New(storage.NewMemoryKV(), logger)
	scheduler := testutil.NewManualScheduler()
	results := &fakeResults{}

	single := []quiz.Question{
		{ID: "SINGLE-0", Category: quiz.CategorySingle, Text: "1+1=?", Options: []string{"2", "3"}, CorrectAnswers: []string{"0"}},
		{ID: "SINGLE-1", Category: quiz.CategorySingle, Text: "2+2=?", Options: []string{"3", "4"}, CorrectAnswers: []string{"1"}},
	}
	multi := []quiz.Question{
		{ID: "MULTI-0", Category: quiz.CategoryMulti, Text: "哪些是偶数", Options: []string{"2", "3", "4"}, CorrectAnswers: []string{"0", "2"}},
	}
	boolean := []quiz.Question{
		{ID: "BOOLEAN-0", Category: quiz.CategoryBoolean, Text: "天空是蓝色的", CorrectAnswers: []string{quiz.TokenTrue}},
	}

	service := quiz.NewService(quiz.NewCatalog(single, multi, boolean, favs), quiz.ServiceOptions{
		Favorites: favs,
		Results:   results,
		Explainer: staticExplainer("因为 1+1=2"),
		Scheduler: scheduler,
		Logger:    logger,
	})

	return fixture{
		model:     NewModel(testutil.Context(t, 5*time.Second), service, Options{NoColor: true}),
		favorites: favs,
		scheduler: scheduler,
		results:   results,
	}
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, name := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(name))
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = model
	}
	return m, cmd
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestHomeMenuListsCategoriesWithCounts(t *testing.T) {
	f := newFixture(t)

	view := f.model.View()
	for _, want := range []string{"› 单项选择题 (2)", "多项选择题 (1)", "判断题 (1)", "错题集", "模拟练习", "练习记录"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected home view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestSingleQuizFinishesAndReturnsHome(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "enter")
	if m.screen != screenQuiz {
		t.Fatalf("expected quiz screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "1 / 2") {
		t.Fatalf("expected first question, got:\n%s", m.View())
	}

	m, _ = press(t, m, "b")
	view := m.View()
	if !strings.Contains(view, "✗ 回答错误，正确答案：A") || !strings.Contains(view, quiz.NoticeAutoCollected) {
		t.Fatalf("expected wrong answer banner, got:\n%s", view)
	}
	if !f.favorites.Contains("SINGLE-0") {
		t.Fatalf("expected wrong answer to be collected")
	}

	m, _ = press(t, m, "enter", "b")
	if !strings.Contains(m.View(), "✓ 回答正确") {
		t.Fatalf("expected correct banner, got:\n%s", m.View())
	}
	if f.scheduler.Pending() != 1 {
		t.Fatalf("expected an auto advance to be pending")
	}

	f.scheduler.FireAll()
	m = update(t, m, waitForEvent(m.events)())

	if m.screen != screenHome {
		t.Fatalf("expected to return home after finishing, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "练习完成！你的得分: 1 / 2") {
		t.Fatalf("expected final score, got:\n%s", m.View())
	}
	if len(f.results.results) != 1 || f.results.results[0].Score != 1 {
		t.Fatalf("expected the result to be recorded, got %+v", f.results.results)
	}
}

func TestMultiQuizTogglesAndSubmits(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "down", "enter", "a", "b", "c", "b")
	view := m.View()
	if !strings.Contains(view, "[*] A. 2") || !strings.Contains(view, "[ ] B. 3") || !strings.Contains(view, "[*] C. 4") {
		t.Fatalf("unexpected selection, got:\n%s", view)
	}

	m, _ = press(t, m, "enter")
	if !strings.Contains(m.View(), "✓ 回答正确") {
		t.Fatalf("expected correct submission, got:\n%s", m.View())
	}
}

func TestBooleanQuizUsesJudgeKeys(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "down", "down", "enter", "t")
	if !strings.Contains(m.View(), "✓ 回答正确") {
		t.Fatalf("expected t to answer true, got:\n%s", m.View())
	}
}

func TestEmptyCollectionAndBackNavigation(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "down", "down", "down", "enter")
	if m.screen != screenCollections {
		t.Fatalf("expected collection menu, got %v", m.screen)
	}

	m, _ = press(t, m, "enter")
	view := m.View()
	if !strings.Contains(view, quiz.EmptyTitle) || !strings.Contains(view, quiz.EmptyCollectionDetail) {
		t.Fatalf("expected empty state, got:\n%s", view)
	}

	m, _ = press(t, m, "esc")
	if m.screen != screenCollections {
		t.Fatalf("expected back to lead to the collection menu, got %v", m.screen)
	}

	m, _ = press(t, m, "esc")
	if m.screen != screenHome {
		t.Fatalf("expected home, got %v", m.screen)
	}
}

func TestCollectionRemovalAdvances(t *testing.T) {
	f := newFixture(t)
	f.favorites.Add("SINGLE-0")
	f.favorites.Add("SINGLE-1")

	m, _ := press(t, f.model, "down", "down", "down", "enter", "enter")
	if !strings.Contains(m.View(), "★ 已收藏") {
		t.Fatalf("expected favorite marker, got:\n%s", m.View())
	}

	m, _ = press(t, m, "s")
	if f.favorites.Contains("SINGLE-0") {
		t.Fatalf("expected removal from the collection")
	}
	f.scheduler.FireAll()
	m = update(t, m, waitForEvent(m.events)())
	if !strings.Contains(m.View(), "2 / 2") {
		t.Fatalf("expected the session to move on, got:\n%s", m.View())
	}
}

func TestJumpInput(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "enter", "g")
	if !m.jumping {
		t.Fatalf("expected jump input to open")
	}
	m, _ = press(t, m, "2", "enter")
	if m.jumping || !strings.Contains(m.View(), "2 / 2") {
		t.Fatalf("expected jump to second question, got:\n%s", m.View())
	}

	m, _ = press(t, m, "g", "9", "enter")
	if !strings.Contains(m.View(), "无效的题号") {
		t.Fatalf("expected invalid jump to be reported, got:\n%s", m.View())
	}
}

func TestExplanationArrivesAsEvent(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "enter", "x")
	if strings.Contains(m.View(), "AI 解析：") {
		t.Fatalf("explain before submit should be ignored, got:\n%s", m.View())
	}

	m, _ = press(t, m, "b", "x")
	m = update(t, m, waitForEvent(m.events)())
	if !strings.Contains(m.View(), "AI 解析：因为 1+1=2") {
		t.Fatalf("expected explanation, got:\n%s", m.View())
	}
}

func TestHistoryScreenLoadsResults(t *testing.T) {
	f := newFixture(t)
	f.results.results = []quiz.SessionResult{{
		SessionID:  "s-1",
		Category:   quiz.CategoryMulti,
		Score:      3,
		Total:      5,
		FinishedAt: time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC),
	}}

	m, cmd := press(t, f.model, "down", "down", "down", "down", "down", "enter")
	if m.screen != screenHistory || cmd == nil {
		t.Fatalf("expected history screen with a load command")
	}
	m = update(t, m, cmd())
	view := m.View()
	if !strings.Contains(view, "多项选择题") || !strings.Contains(view, "3 / 5") {
		t.Fatalf("expected history row, got:\n%s", view)
	}

	m, _ = press(t, m, "esc")
	if m.screen != screenHome {
		t.Fatalf("expected home, got %v", m.screen)
	}
}

func TestQuitClosesSession(t *testing.T) {
	f := newFixture(t)

	m, _ := press(t, f.model, "enter", "a")
	session := m.session
	m, cmd := press(t, m, "q")
	if cmd == nil || m.session != nil {
		t.Fatalf("expected quit command and a closed session")
	}
	if session.Next() {
		t.Fatalf("closed session should reject navigation")
	}
	f.scheduler.FireAll()
}
