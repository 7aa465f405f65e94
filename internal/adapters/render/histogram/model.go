package histogram

import (
	"errors"
	"io"

	"github.com/bnema/snowmap/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	layout Layout
	styles styles
	output string
}

func newModel(layout Layout) model {
	return model{
		layout: layout,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.layout, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render returns the styled histogram of the distribution. Without a colour-capable terminal the
// output equals NewLayout(...).String().
func Render(distribution *domain.Distribution, opts Options) (string, error) {
	p := tea.NewProgram(
		newModel(NewLayout(distribution.Entries(), opts)),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
