package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	adapter "github.com/modaledit/vimput/adapter-bubbletea"
)

type model struct {
	input     adapter.Model
	submitted string
}

func (m model) Init() tea.Cmd {
	return m.input.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetSize(msg.Width, msg.Height-2)

	case adapter.SubmitMsg:
		// Keep updating the input below so it restarts its signal listener
		m.submitted = string(msg)

	case adapter.QuitMsg:
		return m, tea.Quit
	}

	input, cmd := m.input.Update(msg)
	m.input = input.(adapter.Model)
	return m, cmd
}

var submittedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.submitted != "" {
		sb.WriteString(submittedStyle.Render(fmt.Sprintf("submitted: %q", m.submitted)))
	}
	sb.WriteString("\n")
	return sb.String()
}

func main() {
	input := adapter.New(80, 22)
	input.SetContent("Type a message.\nUse :send or ctrl+enter to submit, :q to quit.")
	input.ShowRelativeLineNumbers(true)
	input.ShowTildeIndicator(true)

	p := tea.NewProgram(model{input: input}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
