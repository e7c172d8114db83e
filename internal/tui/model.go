package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"glassquiz/internal/quiz"
)

const historyLimit = 20

type screen int

const (
	screenHome screen = iota
	screenCollections
	screenQuiz
	screenHistory
)

// menuItem is one row of the home or collection menu. Rows either start a
// quiz on category or open another screen.
type menuItem struct {
	category quiz.Category
	target   screen
	label    string
}

// Options configures the full-screen model.
type Options struct {
	NoColor bool
}

// Model is the Bubble Tea model for the whole application shell.
type Model struct {
	ctx     context.Context
	service *quiz.Service
	events  chan struct{}
	keys    keyMap
	styles  styles
	help    help.Model
	jump    textinput.Model
	history table.Model

	screen  screen
	cursor  int
	session *quiz.Session
	status  string
	jumping bool
	width   int
}

// sessionChangedMsg reports that the active session changed on its own,
// through a timer or an arriving explanation.
type sessionChangedMsg struct{}

type historyLoadedMsg struct {
	results []quiz.SessionResult
	err     error
}

func NewModel(ctx context.Context, service *quiz.Service, opts Options) Model {
	jump := textinput.New()
	jump.Placeholder = "题号"
	jump.CharLimit = 4
	jump.Width = 6
	jump.Prompt = "跳转到第 "

	history := table.New(
		table.WithColumns([]table.Column{
			{Title: "完成时间", Width: 18},
			{Title: "分类", Width: 16},
			{Title: "得分", Width: 10},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return Model{
		ctx:     ctx,
		service: service,
		events:  make(chan struct{}, 16),
		keys:    defaultKeyMap(),
		styles:  newStyles(opts.NoColor),
		help:    help.New(),
		jump:    jump,
		history: history,
		screen:  screenHome,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.history.SetWidth(typed.Width)
		m.history.SetHeight(max(typed.Height-6, 3))
		return m, nil
	case sessionChangedMsg:
		m = m.syncSession()
		return m, waitForEvent(m.events)
	case historyLoadedMsg:
		if typed.err != nil {
			m.status = "读取练习记录失败：" + typed.err.Error()
			return m, nil
		}
		m.history.SetRows(historyRows(typed.results))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch m.screen {
	case screenHome, screenCollections:
		return m.handleMenuKey(msg)
	case screenQuiz:
		return m.handleQuizKey(msg)
	case screenHistory:
		if key.Matches(msg, m.keys.Back) {
			m.screen = screenHome
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	return m, tea.Quit
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Back):
		if m.screen == screenCollections {
			m.screen = screenHome
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Enter):
		item := items[m.cursor]
		m.status = ""
		switch {
		case item.category != "":
			return m.startQuiz(item.category)
		case item.target == screenHistory:
			m.screen = screenHistory
			return m, m.loadHistory()
		default:
			m.screen = item.target
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) menuItems() []menuItem {
	catalog := m.service.Catalog()
	if m.screen == screenCollections {
		items := make([]menuItem, 0, 3)
		for _, category := range []quiz.Category{
			quiz.CategoryCollectionSingle,
			quiz.CategoryCollectionMulti,
			quiz.CategoryCollectionBoolean,
		} {
			items = append(items, menuItem{
				category: category,
				label:    fmt.Sprintf("%s (%d)", catalog.Title(category), catalog.Count(category)),
			})
		}
		return items
	}

	items := make([]menuItem, 0, 6)
	for _, category := range []quiz.Category{quiz.CategorySingle, quiz.CategoryMulti, quiz.CategoryBoolean} {
		items = append(items, menuItem{
			category: category,
			label:    fmt.Sprintf("%s (%d)", catalog.Title(category), catalog.Count(category)),
		})
	}
	return append(items,
		menuItem{target: screenCollections, label: "错题集"},
		menuItem{category: quiz.CategoryMock, label: quiz.CategoryMock.Title()},
		menuItem{target: screenHistory, label: "练习记录"},
	)
}

func (m Model) startQuiz(category quiz.Category) (tea.Model, tea.Cmd) {
	events := m.events
	hooks := quiz.SessionHooks{
		OnChange: func() {
			select {
			case events <- struct{}{}:
			default:
			}
		},
	}

	var session *quiz.Session
	if category == quiz.CategoryMock {
		session = m.service.StartMock(hooks)
	} else {
		started, err := m.service.StartSession(category, hooks)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		session = started
	}

	m.session = session
	m.screen = screenQuiz
	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.session
	view := session.View()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.leaveQuiz(), nil
	case view.Empty:
		if key.Matches(msg, m.keys.Enter) {
			return m.leaveQuiz(), nil
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		switch {
		case view.CanSubmit:
			session.Submit()
		case view.Submitted:
			session.Next()
		}
	case key.Matches(msg, m.keys.Options), key.Matches(msg, m.keys.Judge):
		if token, ok := answerToken(view.Question, msg.String()); ok {
			session.Select(token)
		}
	case key.Matches(msg, m.keys.Next):
		session.Next()
	case key.Matches(msg, m.keys.Prev):
		session.Prev()
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case key.Matches(msg, m.keys.Star):
		session.ToggleFavorite()
	case key.Matches(msg, m.keys.Explain):
		if explainer := m.service.Explainer(); explainer != nil {
			session.Explain(m.ctx, explainer)
		}
	}
	return m.syncSession(), nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case tea.KeyEnter:
		m.jumping = false
		m.jump.Blur()
		number, err := strconv.Atoi(strings.TrimSpace(m.jump.Value()))
		if err != nil || m.session == nil || !m.session.Jump(number-1) {
			m.status = "无效的题号"
			return m, nil
		}
		m.status = ""
		return m.syncSession(), nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// syncSession moves the shell home once the active session has finished.
func (m Model) syncSession() Model {
	if m.session == nil || m.screen != screenQuiz {
		return m
	}
	view := m.session.View()
	if !view.Finished {
		return m
	}
	m.session.Close()
	m.session = nil
	m.screen = screenHome
	m.cursor = 0
	m.status = fmt.Sprintf("练习完成！你的得分: %d / %d", view.Score, view.Total)
	return m
}

func (m Model) leaveQuiz() Model {
	category := m.session.Category()
	m.session.Close()
	m.session = nil
	m.jumping = false
	m.status = ""
	m.cursor = 0
	if category.IsCollection() {
		m.screen = screenCollections
	} else {
		m.screen = screenHome
	}
	return m
}

func (m Model) loadHistory() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		results, err := service.ListResults(ctx, historyLimit)
		return historyLoadedMsg{results: results, err: err}
	}
}

// waitForEvent blocks until the active session reports a change.
func waitForEvent(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return sessionChangedMsg{}
	}
}

func answerToken(question quiz.Question, pressed string) (string, bool) {
	if question.Category == quiz.CategoryBoolean {
		switch pressed {
		case "t", "a":
			return quiz.TokenTrue, true
		case "f", "b":
			return quiz.TokenFalse, true
		default:
			return "", false
		}
	}
	if pressed == "t" || pressed == "f" {
		return "", false
	}
	return quiz.LetterToToken(pressed)
}

func historyRows(results []quiz.SessionResult) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, table.Row{
			result.FinishedAt.Local().Format("2006-01-02 15:04"),
			result.Category.Title(),
			fmt.Sprintf("%d / %d", result.Score, result.Total),
		})
	}
	return rows
}
