package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"glassquiz/internal/quiz"
)

const commandHelp = "命令：n 下一题 | p 上一题 | g N 跳转 | s 收藏 | x AI 解析 | m 返回 | q 退出 | h 帮助"

func (a *App) startQuiz(ctx context.Context, category quiz.Category) (screen, error) {
	var session *quiz.Session
	hooks := quiz.SessionHooks{
		OnFinish: func(score, total int) {
			fmt.Fprintf(a.out, "\n练习完成！你的得分: %d / %d\n", score, total)
		},
		OnChange: func() {
			a.render(session.View())
		},
	}

	if category == quiz.CategoryMock {
		session = a.service.StartMock(hooks)
	} else {
		var err error
		session, err = a.service.StartSession(category, hooks)
		if err != nil {
			return screenQuit, err
		}
	}
	defer session.Close()

	return a.runSession(ctx, session)
}

func (a *App) runSession(ctx context.Context, session *quiz.Session) (screen, error) {
	back := returnScreen(session.Category())

	if session.Empty() {
		a.render(session.View())
		fmt.Fprintln(a.out, "按回车返回")
		if _, err := a.readLine(); err != nil {
			return screenQuit, err
		}
		return back, nil
	}

	a.printHelp(session.View())
	a.render(session.View())

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.readLine()
		if err != nil {
			return screenQuit, err
		}
		if session.View().Finished {
			return screenHome, nil
		}

		next, done := a.handleCommand(ctx, session, line)
		if done {
			return next, nil
		}

		view := session.View()
		if view.Finished {
			return screenHome, nil
		}
		a.render(view)
	}
}

// handleCommand applies one input line. done reports that the quiz loop
// should hand control to next.
func (a *App) handleCommand(ctx context.Context, session *quiz.Session, line string) (next screen, done bool) {
	view := session.View()
	command, argument, _ := strings.Cut(strings.ToLower(line), " ")
	argument = strings.TrimSpace(argument)

	switch command {
	case "":
		switch {
		case view.CanSubmit:
			session.Submit()
		case view.Submitted:
			session.Next()
		}
	case "n", "next":
		session.Next()
	case "p", "prev":
		if !session.Prev() {
			fmt.Fprintln(a.out, "已经是第一题。")
		}
	case "g", "jump":
		number, err := strconv.Atoi(argument)
		if err != nil || !session.Jump(number-1) {
			fmt.Fprintf(a.out, "请输入 1-%d 之间的题号，例如：g 3\n", view.Total)
		}
	case "s", "fav":
		session.ToggleFavorite()
	case "x", "explain":
		a.explain(ctx, session, view)
	case "m", "back":
		return returnScreen(session.Category()), true
	case "q", "quit":
		return screenQuit, true
	case "h", "help", "?":
		a.printHelp(view)
	default:
		a.answer(session, view, command)
	}
	return screenHome, false
}

func (a *App) answer(session *quiz.Session, view quiz.SessionView, input string) {
	if view.Submitted {
		fmt.Fprintln(a.out, "本题已作答，输入 n 进入下一题。")
		return
	}

	tokens, ok := answerInput(view.Question, input)
	if !ok {
		fmt.Fprintln(a.out, "无效输入，输入 h 查看帮助。")
		return
	}
	for _, token := range tokens {
		if !session.Select(token) {
			fmt.Fprintf(a.out, "没有选项 %s。\n", displayToken(view.Question, token))
		}
	}
}

func (a *App) explain(ctx context.Context, session *quiz.Session, view quiz.SessionView) {
	if !view.Submitted {
		fmt.Fprintln(a.out, "请先作答再查看解析。")
		return
	}
	explainer := a.service.Explainer()
	if explainer == nil {
		fmt.Fprintln(a.out, "未配置 AI 解析服务。")
		return
	}
	session.Explain(ctx, explainer)
}

func (a *App) printHelp(view quiz.SessionView) {
	switch view.Question.Category {
	case quiz.CategoryMulti:
		fmt.Fprintln(a.out, "输入字母选择或取消选项（可一次输入多个），回车提交。")
	case quiz.CategoryBoolean:
		fmt.Fprintln(a.out, "输入 t 判断为正确，f 判断为错误。")
	default:
		fmt.Fprintln(a.out, "输入选项字母作答。")
	}
	fmt.Fprintln(a.out, commandHelp)
}

// answerInput maps typed input to option tokens. Multi-select questions
// accept several letters at once; the others accept exactly one.
func answerInput(question quiz.Question, input string) ([]string, bool) {
	if question.Category == quiz.CategoryBoolean {
		switch input {
		case "t", "true", "a", "√", "✓", "对":
			return []string{quiz.TokenTrue}, true
		case "f", "false", "b", "×", "✗", "错":
			return []string{quiz.TokenFalse}, true
		default:
			return nil, false
		}
	}

	letters := strings.Fields(strings.NewReplacer(",", " ", "，", " ").Replace(input))
	if len(letters) == 1 {
		letters = strings.Split(letters[0], "")
	}
	if len(letters) == 0 || (question.Category != quiz.CategoryMulti && len(letters) != 1) {
		return nil, false
	}

	tokens := make([]string, 0, len(letters))
	for _, letter := range letters {
		token, ok := quiz.LetterToToken(letter)
		if !ok {
			return nil, false
		}
		tokens = append(tokens, token)
	}
	return tokens, true
}

func displayToken(question quiz.Question, token string) string {
	if question.Category == quiz.CategoryBoolean {
		return token
	}
	return quiz.TokenToLetter(token)
}
