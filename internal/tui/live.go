// Package tui provides the terminal playback view for solved fields:
// the full space-time solution is computed up front, then animated one
// spatial profile per frame with play/pause/seek controls.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/viz"
)

const (
	graphWidth  = 72
	graphHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a solved field.
type Model struct {
	title   string
	times   []float64
	field   *pde.Field
	idx     int
	speed   int
	playing bool
	fps     int
}

func NewModel(title string, times []float64, field *pde.Field, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	// Scale playback so a dense march still finishes in a few seconds.
	speed := field.Rows() / (fps * 10)
	if speed < 1 {
		speed = 1
	}
	return Model{
		title:   title,
		times:   times,
		field:   field,
		speed:   speed,
		playing: true,
		fps:     fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.idx = 0
		case "left", "h":
			m.playing = false
			m.idx -= m.speed
			if m.idx < 0 {
				m.idx = 0
			}
		case "right", "l":
			m.playing = false
			m.idx += m.speed
			if m.idx >= m.field.Rows() {
				m.idx = m.field.Rows() - 1
			}
		case "up", "k":
			m.speed *= 2
		case "down", "j":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
		return m, nil

	case TickMsg:
		if m.playing {
			m.idx += m.speed
			if m.idx >= m.field.Rows() {
				m.idx = 0
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	graph := viz.RenderFrame(m.field.Row(m.idx), m.times[m.idx], graphWidth, graphHeight)

	state := "playing"
	if !m.playing {
		state = "paused"
	}
	status := fmt.Sprintf("%s %s  %s %dx  %s %s",
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d/%d", m.idx, m.field.Rows()-1)),
		labelStyle.Render("speed"), m.speed,
		labelStyle.Render("state"), valueStyle.Render(state),
	)

	return headerStyle.Render(m.title) + "\n" +
		graphStyle.Render(graph) + "\n" +
		status +
		helpStyle.Render("\nspace pause · ←/→ step · ↑/↓ speed · r restart · q quit")
}

// Run animates the field until the user quits.
func Run(title string, times []float64, field *pde.Field, fps int) error {
	p := tea.NewProgram(NewModel(title, times, field, fps))
	_, err := p.Run()
	return err
}
