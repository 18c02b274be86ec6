package hub

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spin animates the hub's spinner on out while fn runs, for one-shot
// commands that fetch before printing. The animation clears itself when fn
// returns; fn's error is passed through.
func Spin(ctx context.Context, out io.Writer, label string, fn func(context.Context) error) error {
	p := tea.NewProgram(
		spinTask{ctx: ctx, spinner: newSpinner(), label: label, fn: fn},
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	task, ok := final.(spinTask)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}
	return task.err
}

type spinFinished struct {
	err error
}

type spinTask struct {
	ctx     context.Context
	spinner spinner.Model
	label   string
	fn      func(context.Context) error
	err     error
	done    bool
}

func (t spinTask) Init() tea.Cmd {
	run := func() tea.Msg {
		return spinFinished{err: t.fn(t.ctx)}
	}
	return tea.Batch(t.spinner.Tick, run)
}

func (t spinTask) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinFinished:
		t.done = true
		t.err = msg.err
		return t, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t spinTask) View() string {
	if t.done {
		return ""
	}
	return t.spinner.View() + " " + t.label
}
