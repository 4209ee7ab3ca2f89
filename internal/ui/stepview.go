package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"relift/internal/steps"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	beforeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	afterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// listHeight is the number of step lines shown above the diff pane.
const listHeight = 8

type stepsModel struct {
	method string
	events []steps.Event
	index  int
	vp     viewport.Model
	width  int
	ready  bool
}

// NewStepsModel returns a Bubble Tea model that browses a recorded run:
// a step list on top, the before/after render of the selected rewrite below.
func NewStepsModel(method string, events []steps.Event) tea.Model {
	return &stepsModel{method: method, events: events, width: 80}
}

func (m *stepsModel) Init() tea.Cmd {
	return nil
}

func (m *stepsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.index > 0 {
				m.index--
				m.refresh()
			}
		case "down", "j":
			if m.index < len(m.events)-1 {
				m.index++
				m.refresh()
			}
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - listHeight - 3
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		m.refresh()
	}
	return m, nil
}

// refresh rebuilds the diff pane for the selected step.
func (m *stepsModel) refresh() {
	if !m.ready || len(m.events) == 0 {
		return
	}
	ev := m.events[m.index]
	var sb strings.Builder
	sb.WriteString(beforeStyle.Render("before:"))
	sb.WriteString("\n")
	sb.WriteString(ev.Before)
	sb.WriteString("\n\n")
	sb.WriteString(afterStyle.Render("after:"))
	sb.WriteString("\n")
	sb.WriteString(ev.After)
	m.vp.SetContent(sb.String())
	m.vp.GotoTop()
}

func (m *stepsModel) View() string {
	var sb strings.Builder
	title := fmt.Sprintf("relift steps — %s (%d steps)", m.method, len(m.events))
	sb.WriteString(titleStyle.Render(runewidth.Truncate(title, m.width, "…")))
	sb.WriteString("\n\n")

	if len(m.events) == 0 {
		sb.WriteString(dimStyle.Render("no steps recorded"))
		sb.WriteString("\n")
		return sb.String()
	}

	first := m.index - listHeight/2
	if first > len(m.events)-listHeight {
		first = len(m.events) - listHeight
	}
	if first < 0 {
		first = 0
	}
	last := first + listHeight
	if last > len(m.events) {
		last = len(m.events)
	}
	for i := first; i < last; i++ {
		ev := m.events[i]
		line := fmt.Sprintf("%4d  %s  %s  %s", ev.Seq, ev.Transform, ev.NodeKind, ev.Detail)
		line = runewidth.Truncate(line, m.width-2, "…")
		if i == m.index {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString(dimStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.ready {
		sb.WriteString(m.vp.View())
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ select step · q quit"))
	return sb.String()
}
