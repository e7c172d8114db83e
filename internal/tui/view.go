package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"glassquiz/internal/quiz"
)

const progressWidth = 24

func (m Model) View() string {
	switch m.screen {
	case screenQuiz:
		return m.viewQuiz()
	case screenHistory:
		return m.viewHistory()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	title := "GlassQuiz"
	if m.screen == screenCollections {
		title = "错题集"
	}

	lines := []string{m.styles.title.Render(title), ""}
	for idx, item := range m.menuItems() {
		if idx == m.cursor {
			lines = append(lines, m.styles.cursor.Render("› "+item.label))
			continue
		}
		lines = append(lines, "  "+item.label)
	}
	if m.status != "" {
		lines = append(lines, "", m.styles.status.Render(m.status))
	}
	lines = append(lines, "", m.help.ShortHelpView(m.keys.menuHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewHistory() string {
	lines := []string{m.styles.title.Render("练习记录"), ""}
	if len(m.history.Rows()) == 0 {
		lines = append(lines, m.styles.muted.Render("暂无记录"))
	} else {
		lines = append(lines, m.history.View())
	}
	if m.status != "" {
		lines = append(lines, "", m.styles.wrong.Render(m.status))
	}
	lines = append(lines, "", m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit}))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewQuiz() string {
	view := m.session.View()
	if view.Empty {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.title.Render(view.Title),
			"",
			view.EmptyTitle,
			m.styles.muted.Render(view.EmptyDetail),
			"",
			m.help.ShortHelpView([]key.Binding{m.keys.Enter, m.keys.Back, m.keys.Quit}),
		)
	}

	header := fmt.Sprintf("%s  %s  %s  得分 %d",
		m.styles.title.Render(view.Title),
		m.styles.badge.Render(view.Badge),
		view.Position(),
		view.Score,
	)
	if view.Favorite {
		header += "  " + m.styles.notice.Render("★ 已收藏")
	}

	lines := []string{header, m.styles.progress.Render(progressBar(view.Progress)), ""}
	question := view.Question.Text
	if m.width > 0 {
		question = lipgloss.NewStyle().Width(m.width).Render(question)
	}
	lines = append(lines, question, "")

	for _, option := range view.Options {
		lines = append(lines, m.renderOption(view, option))
	}

	if view.Submitted {
		lines = append(lines, "")
		if view.Correct {
			lines = append(lines, m.styles.correct.Render("✓ 回答正确"))
		} else {
			lines = append(lines, m.styles.wrong.Render("✗ 回答错误，正确答案："+view.CorrectAnswer))
		}
	}
	if view.Notice != "" {
		lines = append(lines, m.styles.notice.Render(view.Notice))
	}
	if view.Explaining {
		lines = append(lines, m.styles.muted.Render("AI 解析中…"))
	}
	if view.Explanation != "" {
		lines = append(lines, m.styles.explanation.Render("AI 解析："+view.Explanation))
	}
	if m.jumping {
		lines = append(lines, "", m.jump.View())
	}
	if m.status != "" {
		lines = append(lines, "", m.styles.wrong.Render(m.status))
	}

	lines = append(lines, "", m.help.ShortHelpView(m.keys.quizHelp(view.Question.Category == quiz.CategoryBoolean)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderOption(view quiz.SessionView, option quiz.OptionView) string {
	text := fmt.Sprintf("%s. %s", option.Letter, option.Label)
	switch {
	case view.Submitted && option.IsAnswer:
		return m.styles.correct.Render("[✓] " + text)
	case view.Submitted && option.Selected:
		return m.styles.wrong.Render("[✗] " + text)
	case option.Selected:
		return m.styles.selected.Render("[*] " + text)
	default:
		return "[ ] " + text
	}
}

func progressBar(fraction float64) string {
	filled := int(fraction * progressWidth)
	filled = min(max(filled, 0), progressWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
}
