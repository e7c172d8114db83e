package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Options key.Binding
	Judge   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Jump    key.Binding
	Star    key.Binding
	Explain key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "上移"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "下移"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "确认"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "返回"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "退出"),
		),
		Options: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "e"),
			key.WithHelp("a-e", "选择"),
		),
		Judge: key.NewBinding(
			key.WithKeys("t", "f"),
			key.WithHelp("t/f", "正确/错误"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "下一题"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "上一题"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "跳转"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "收藏"),
		),
		Explain: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "AI 解析"),
		),
	}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

func (k keyMap) quizHelp(boolean bool) []key.Binding {
	answer := k.Options
	if boolean {
		answer = k.Judge
	}
	return []key.Binding{answer, k.Enter, k.Next, k.Prev, k.Jump, k.Star, k.Explain, k.Back, k.Quit}
}
