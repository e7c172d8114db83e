package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"glassquiz/internal/quiz"
)

// Run starts the full-screen front-end and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, service *quiz.Service, in io.Reader, out io.Writer, opts Options) error {
	model := NewModel(ctx, service, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if m, ok := final.(Model); ok && m.session != nil {
		m.session.Close()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
