// Package tail implements an interactive viewer over the log file with
// fuzzy line filtering.
package tail

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	filterPrompt = "/ "

	// reloadInterval is how often the file is re-read in follow mode.
	reloadInterval = time.Second
)

var (
	matchStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Run opens the viewer over the log file at path. The initial filter text
// may be empty; follow reloads the file as it grows.
func Run(ctx context.Context, path, filter string, follow bool) error {
	m := newModel(path, filter, follow)

	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("log viewer: %w", err)
	}

	return nil
}

// loadedMsg carries the file contents of one (re)load.
type loadedMsg struct {
	lines []string
	err   error
}

// reloadMsg triggers a re-read of the file in follow mode.
type reloadMsg struct{}

type model struct {
	path   string
	lines  []string
	input  textinput.Model
	view   viewport.Model
	err    error
	follow bool
	ready  bool
}

func newModel(path, filter string, follow bool) model {
	input := textinput.New()
	input.Prompt = filterPrompt
	input.Placeholder = "fuzzy filter"
	input.SetValue(filter)

	return model{
		path:   path,
		input:  input,
		follow: follow,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(load(m.path), m.schedule())
}

func load(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadedMsg{err: err}
		}

		text := strings.TrimRight(string(data), "\n")
		if text == "" {
			return loadedMsg{}
		}

		return loadedMsg{lines: strings.Split(text, "\n")}
	}
}

// schedule arms the next reload tick in follow mode.
func (m model) schedule() tea.Cmd {
	if !m.follow {
		return nil
	}

	return tea.Tick(reloadInterval, func(time.Time) tea.Msg {
		return reloadMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve one row for the filter input and one for the status bar.
		height := max(msg.Height-2, 1)

		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = height
		}

		m.refresh()

		return m, nil

	case loadedMsg:
		m.err = msg.err
		if msg.err == nil {
			atBottom := m.view.AtBottom()
			m.lines = msg.lines
			m.refresh()

			if m.follow && atBottom {
				m.view.GotoBottom()
			}
		}

		return m, nil

	case reloadMsg:
		return m, tea.Batch(load(m.path), m.schedule())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.input.Blur()

			return m, nil

		case "ctrl+c":
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)
		m.refresh()

		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "/":
		return m, m.input.Focus()

	case "g":
		m.view.GotoTop()

		return m, nil

	case "G":
		m.view.GotoBottom()

		return m, nil
	}

	var cmd tea.Cmd

	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

// refresh recomputes the viewport content from the current lines and filter.
func (m *model) refresh() {
	if !m.ready {
		return
	}

	m.view.SetContent(strings.Join(m.visible(), "\n"))
}

// visible returns the filtered lines with matched runes highlighted.
func (m *model) visible() []string {
	filter := m.input.Value()
	if filter == "" {
		return m.lines
	}

	matches := fuzzy.Find(filter, m.lines)

	lines := make([]string, 0, len(matches))
	for _, match := range matches {
		lines = append(lines, highlight(match))
	}

	return lines
}

// highlight renders one fuzzy match, emphasizing the matched runes.
func highlight(match fuzzy.Match) string {
	var b strings.Builder

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	status := fmt.Sprintf("%s  %d/%d lines", m.path, len(m.visible()), len(m.lines))
	if m.err != nil {
		status = m.err.Error()
	}

	if m.follow {
		status += "  (following)"
	}

	return strings.Join([]string{
		m.input.View(),
		m.view.View(),
		statusStyle.Render(status),
	}, "\n")
}
