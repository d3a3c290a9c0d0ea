package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/varmodel/catdomain/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const pageSize = 20

type inspectorModel struct {
	reg      *domain.CountingRegistry[string]
	entries  []vocabEntry
	filter   textinput.Model
	selected int
	offset   int
	filtered []vocabEntry
}

func newInspectorModel(reg *domain.CountingRegistry[string]) inspectorModel {
	filter := textinput.New()
	filter.Placeholder = "filter values"
	filter.Prompt = "/ "

	m := inspectorModel{
		reg:     reg,
		entries: ranked(reg),
		filter:  filter,
	}
	m.applyFilter()
	return m
}

func (m inspectorModel) Init() tea.Cmd {
	return nil
}

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filter.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
		case "pgup":
			m.selected -= pageSize
			if m.selected < 0 {
				m.selected = 0
			}
		case "pgdown":
			m.selected += pageSize
			if m.selected > len(m.filtered)-1 {
				m.selected = len(m.filtered) - 1
			}
		case "g":
			m.selected = 0
		case "G":
			m.selected = len(m.filtered) - 1
		}
		m.clampScroll()
	}
	return m, nil
}

func (m *inspectorModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.filtered = m.entries
	} else {
		m.filtered = nil
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.value), query) {
				m.filtered = append(m.filtered, e)
			}
		}
	}
	m.selected = 0
	m.offset = 0
}

func (m *inspectorModel) clampScroll() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+pageSize {
		m.offset = m.selected - pageSize + 1
	}
}

func (m inspectorModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("domain inspector: %d values, generation %d",
		m.reg.AllocSize(), m.reg.Generation())
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-10s %s", "index", "count", "value")))
	b.WriteString("\n")

	end := m.offset + pageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		e := m.filtered[i]
		line := fmt.Sprintf("%-6d %-10d %s", e.index, e.count, e.value)
		if i == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(valueStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(errorStyle.Render("no values match the filter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d of %d values shown", len(m.filtered), len(m.entries))))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ navigate • / filter • g/G first/last • q quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(reg *domain.CountingRegistry[string]) error {
	p := tea.NewProgram(newInspectorModel(reg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}
