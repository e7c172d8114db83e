package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"glassquiz/internal/quiz"
)

const historyLimit = 10

type screen int

const (
	screenHome screen = iota
	screenCollectionMenu
	screenQuit
)

// App is the line-oriented front-end. It reads one command per line and
// redraws the current question after every change.
type App struct {
	service *quiz.Service
	in      *bufio.Reader
	out     io.Writer
}

func NewApp(service *quiz.Service, in io.Reader, out io.Writer) *App {
	return &App{
		service: service,
		in:      bufio.NewReader(in),
		out:     &lockedWriter{w: out},
	}
}

// Run starts on the home menu and returns when the user quits or input ends.
func Run(ctx context.Context, service *quiz.Service, in io.Reader, out io.Writer) error {
	return NewApp(service, in, out).Run(ctx)
}

func (a *App) Run(ctx context.Context) error {
	current := screenHome
	for current != screenQuit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch current {
		case screenHome:
			current, err = a.home(ctx)
		case screenCollectionMenu:
			current, err = a.collectionMenu(ctx)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "再见！")
	return nil
}

func (a *App) home(ctx context.Context) (screen, error) {
	catalog := a.service.Catalog()
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "== GlassQuiz ==")
	fmt.Fprintf(a.out, "1. %s (%d)\n", catalog.Title(quiz.CategorySingle), catalog.Count(quiz.CategorySingle))
	fmt.Fprintf(a.out, "2. %s (%d)\n", catalog.Title(quiz.CategoryMulti), catalog.Count(quiz.CategoryMulti))
	fmt.Fprintf(a.out, "3. %s (%d)\n", catalog.Title(quiz.CategoryBoolean), catalog.Count(quiz.CategoryBoolean))
	fmt.Fprintln(a.out, "4. 错题集")
	fmt.Fprintf(a.out, "5. %s\n", quiz.CategoryMock.Title())
	fmt.Fprintln(a.out, "r. 练习记录")
	fmt.Fprintln(a.out, "q. 退出")

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.readLine()
		if err != nil {
			return screenQuit, err
		}

		switch strings.ToLower(line) {
		case "1":
			return a.startQuiz(ctx, quiz.CategorySingle)
		case "2":
			return a.startQuiz(ctx, quiz.CategoryMulti)
		case "3":
			return a.startQuiz(ctx, quiz.CategoryBoolean)
		case "4":
			return screenCollectionMenu, nil
		case "5":
			return a.startQuiz(ctx, quiz.CategoryMock)
		case "r":
			if err := a.printHistory(ctx); err != nil {
				return screenQuit, err
			}
			return screenHome, nil
		case "q", "quit":
			return screenQuit, nil
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "无效选项，请输入 1-5、r 或 q。")
		}
	}
}

func (a *App) collectionMenu(ctx context.Context) (screen, error) {
	catalog := a.service.Catalog()
	collections := []quiz.Category{
		quiz.CategoryCollectionSingle,
		quiz.CategoryCollectionMulti,
		quiz.CategoryCollectionBoolean,
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "== 错题集 ==")
	for idx, category := range collections {
		fmt.Fprintf(a.out, "%d. %s (%d)\n", idx+1, catalog.Title(category), catalog.Count(category))
	}
	fmt.Fprintln(a.out, "m. 返回首页")

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.readLine()
		if err != nil {
			return screenQuit, err
		}

		switch strings.ToLower(line) {
		case "1", "2", "3":
			choice, _ := strconv.Atoi(line)
			return a.startQuiz(ctx, collections[choice-1])
		case "m", "back":
			return screenHome, nil
		case "q", "quit":
			return screenQuit, nil
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "无效选项，请输入 1-3 或 m。")
		}
	}
}

func (a *App) printHistory(ctx context.Context) error {
	results, err := a.service.ListResults(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "== 练习记录 ==")
	if len(results) == 0 {
		fmt.Fprintln(a.out, "暂无记录")
		return nil
	}
	for _, result := range results {
		fmt.Fprintf(a.out, "%s  %s  %d / %d\n",
			result.FinishedAt.Local().Format("2006-01-02 15:04"),
			result.Category.Title(),
			result.Score,
			result.Total,
		)
	}
	return nil
}

// returnScreen is where the back action leads from a quiz on category.
func returnScreen(category quiz.Category) screen {
	if category.IsCollection() {
		return screenCollectionMenu
	}
	return screenHome
}

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
