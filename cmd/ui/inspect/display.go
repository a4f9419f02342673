package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#F5A623")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A623")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD935C"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

// Summary is what the results view needs from a pipeline run.
type Summary struct {
	URL        string
	Platform   string
	Score      int
	Signals    []string
	Confidence string
}

type model struct {
	summary   Summary
	scoreBar  progress.Model
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Page Context Results"))
	s.WriteString("\n\n")

	resultBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F5A623")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("URL: "))
	content.WriteString(selectedItemStyle.Render(m.summary.URL))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Platform: "))
	content.WriteString(selectedItemStyle.Render(m.summary.Platform))
	content.WriteString("\n\n")

	content.WriteString(focusedStyle.Render(fmt.Sprintf("Context score: %d/100", m.summary.Score)))
	content.WriteString("\n")
	content.WriteString(m.scoreBar.ViewAs(float64(m.summary.Score) / 100.0))
	content.WriteString("\n\n")

	if len(m.summary.Signals) > 0 {
		content.WriteString(focusedStyle.Render("Detection signals:"))
		content.WriteString("\n")
		for _, signal := range m.summary.Signals {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(signal))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(focusedStyle.Render("Confidence: "))
	content.WriteString(descriptionStyle.Render(m.summary.Confidence))
	content.WriteString("\n")

	s.WriteString(resultBox.Render(content.String()))
	s.WriteString("\n\n")

	s.WriteString(focusedStyle.Render("Write the .faf context document for this page?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to write it, "))
	s.WriteString(focusedStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

// Show displays the pipeline results and asks whether to write the .faf document
func Show(summary Summary) (bool, error) {
	bar := progress.New(progress.WithScaledGradient("#B14FFF", "#F5A623"))
	bar.Width = 50

	m := model{
		summary:  summary,
		scoreBar: bar,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing results: %w", err)
	}

	final := finalModel.(model)
	if final.quitting && !final.confirmed {
		return false, nil
	}

	return final.confirmed, nil
}
