package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/docwriter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectSample modelState = iota
	stateShowDocument
)

type interactiveModel struct {
	err          error
	samples      []sample
	view         viewport.Model
	format       string
	selected     int
	state        modelState
	keepDefaults bool
	ready        bool
}

func newInteractiveModel(format string, keepDefaults bool) *interactiveModel {
	return &interactiveModel{
		samples:      samples(),
		format:       format,
		keepDefaults: keepDefaults,
		state:        stateSelectSample,
	}
}

type renderedMsg struct {
	err  error
	text string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

// renderSample writes the selected sample with the current options.
func (m *interactiveModel) renderSample() tea.Msg {
	w := docwriter.NewWithConfig(&docwriter.Config{KeepDefaults: m.keepDefaults})
	if err := registerScene(w); err != nil {
		return renderedMsg{err: err}
	}
	text, diags, err := render(w, m.samples[m.selected].value, m.format, true)
	if err != nil {
		return renderedMsg{err: err}
	}

	var b strings.Builder
	b.WriteString(text)
	if len(diags) > 0 {
		b.WriteString("\n")
		for _, d := range diags {
			b.WriteString(errorStyle.Render("! " + d))
			b.WriteString("\n")
		}
	}
	return renderedMsg{text: b.String()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 6
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = height
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectSample && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectSample && m.selected < len(m.samples)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectSample {
				return m, m.renderSample
			}

		case "d":
			m.keepDefaults = !m.keepDefaults
			if m.state == stateShowDocument {
				return m, m.renderSample
			}
			return m, nil

		case "f":
			if m.format == "json" {
				m.format = "yaml"
			} else {
				m.format = "json"
			}
			if m.state == stateShowDocument {
				return m, m.renderSample
			}
			return m, nil

		case "esc":
			m.state = stateSelectSample
			m.err = nil
			return m, nil
		}

	case renderedMsg:
		m.err = msg.err
		m.state = stateShowDocument
		if m.ready {
			m.view.SetContent(msg.text)
			m.view.GotoTop()
		}
		return m, nil
	}

	if m.state == stateShowDocument && m.ready {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Document Inspector"))
	b.WriteString(" ")
	b.WriteString(optionStyle.Render(fmt.Sprintf("format=%s keep-defaults=%t", m.format, m.keepDefaults)))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSample:
		b.WriteString("Select a sample to write:\n\n")
		for i, s := range m.samples {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + s.name))
			} else {
				b.WriteString("  " + nameStyle.Render(s.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter write • d defaults • f format • q quit"))

	case stateShowDocument:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else if m.ready {
			b.WriteString(m.view.View())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • d defaults • f format • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(format string, keepDefaults bool) error {
	p := tea.NewProgram(newInteractiveModel(format, keepDefaults), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
