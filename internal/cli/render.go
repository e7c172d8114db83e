package cli

import (
	"fmt"
	"strings"

	"glassquiz/internal/quiz"
)

// render writes the view in a single call so that redraws triggered by
// timers never interleave with the prompt loop's output.
func (a *App) render(view quiz.SessionView) {
	fmt.Fprint(a.out, formatView(view))
}

func formatView(view quiz.SessionView) string {
	var b strings.Builder
	b.WriteString("\n")

	if view.Empty {
		fmt.Fprintf(&b, "%s\n%s\n%s\n", view.Title, view.EmptyTitle, view.EmptyDetail)
		return b.String()
	}
	if view.Finished {
		b.WriteString("按回车返回首页\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s  [%s]  %s  得分 %d", view.Title, view.Badge, view.Position(), view.Score)
	if view.Favorite {
		b.WriteString("  ★ 已收藏")
	}
	b.WriteString("\n")
	b.WriteString(view.Question.Text)
	b.WriteString("\n")

	for _, option := range view.Options {
		fmt.Fprintf(&b, "  %s %s. %s\n", optionMarker(view, option), option.Letter, option.Label)
	}

	if view.Submitted {
		if view.Correct {
			b.WriteString("✓ 回答正确\n")
		} else {
			fmt.Fprintf(&b, "✗ 回答错误，正确答案：%s\n", view.CorrectAnswer)
		}
	}
	if view.Notice != "" {
		fmt.Fprintf(&b, "%s\n", view.Notice)
	}
	if view.Explaining {
		b.WriteString("AI 解析中…\n")
	}
	if view.Explanation != "" {
		fmt.Fprintf(&b, "AI 解析：%s\n", view.Explanation)
	}
	return b.String()
}

func optionMarker(view quiz.SessionView, option quiz.OptionView) string {
	if !view.Submitted {
		if option.Selected {
			return "[*]"
		}
		return "[ ]"
	}
	switch {
	case option.IsAnswer:
		return "[✓]"
	case option.Selected:
		return "[✗]"
	default:
		return "[ ]"
	}
}
