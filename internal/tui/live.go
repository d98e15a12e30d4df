// Package tui is the interactive terminal host for the engine: it advances
// one simulation frame per tick, draws a projection of the particle cloud,
// and exposes the live control knobs (target temperature, inject rate,
// boundary rate, pressure pin) on the keyboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/engine"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

const (
	canvasWidth  = 64
	canvasHeight = 24
	plotWidth    = 70
	plotHeight   = 8

	// clusteredThreshold is the neighbor count above which a particle is
	// drawn as part of a cluster.
	clusteredThreshold = 3
)

type tickMsg time.Time

type Model struct {
	state     *engine.State
	frameRate int
	paused    bool
	frames    int

	width  int
	height int
}

func New(state *engine.State, frameRate int) Model {
	if frameRate < 1 {
		frameRate = 30
	}
	return Model{state: state, frameRate: frameRate, width: 80, height: 24}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			m.state.StepFrame()
			m.frames++
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "t":
		m.state.SetTargetTemp(m.state.TargetTemp() - 0.1)
	case "T":
		m.state.SetTargetTemp(m.state.TargetTemp() + 0.1)
	case "i":
		m.state.SetInjectRate(m.state.InjectRate() - 0.01)
	case "I":
		m.state.SetInjectRate(m.state.InjectRate() + 0.01)
	case "b":
		m.state.SetBoundRate(m.state.BoundRate() - 0.01)
	case "B":
		m.state.SetBoundRate(m.state.BoundRate() + 0.01)
	case "r":
		m.state.SetBoundRate(0)
	case "p":
		pin := m.state.PressurePin()
		if pin.IsPinned {
			pin.IsPinned = false
		} else {
			pin.IsPinned = true
			pin.AtValue = m.state.AvgPressure()
		}
		m.state.SetPressurePin(pin)
	case "[":
		pin := m.state.PressurePin()
		pin.AtValue -= 0.005
		m.state.SetPressurePin(pin)
	case "]":
		pin := m.state.PressurePin()
		pin.AtValue += 0.005
		m.state.SetPressurePin(pin)
	}
	return m, nil
}

func (m Model) View() string {
	left := border.Render(m.renderCanvas())
	right := border.Render(m.renderStats())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	plot := border.Render(m.renderPressurePlot())

	help := dim.Render(
		"space pause · t/T target temp · i/I inject rate · b/B bound rate · r zero rate · p pin pressure · [/] pin value · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, top, plot, help)
}

// renderCanvas projects the particle cloud onto the x-y plane. Particles
// with more than clusteredThreshold neighbors draw highlighted, matching
// the classification the engine maintains for display.
func (m Model) renderCanvas() string {
	type cell struct {
		occupied  bool
		clustered bool
	}
	grid := make([][]cell, canvasHeight)
	for i := range grid {
		grid[i] = make([]cell, canvasWidth)
	}

	bound := m.state.Bound()
	for _, p := range m.state.Particles() {
		pos := p.Pos().Translation
		col := int(pos.X / bound.X * float64(canvasWidth-1))
		row := canvasHeight - 1 - int(pos.Y/bound.Y*float64(canvasHeight-1))
		if col < 0 || col >= canvasWidth || row < 0 || row >= canvasHeight {
			continue
		}
		grid[row][col].occupied = true
		if p.Neighbors > clusteredThreshold {
			grid[row][col].clustered = true
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		for _, c := range row {
			switch {
			case c.clustered:
				sb.WriteString(blue.Render("●"))
			case c.occupied:
				sb.WriteString(white.Render("·"))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderStats() string {
	st := m.state
	e := st.Energy()
	bound := st.Bound()
	pressure := st.AvgPressure()
	volume := bound.Volume()
	temp := st.Temperature()
	pin := st.PressurePin()

	// PV/NkT with k folded into the temperature units (T = KE/N, k = 2/3).
	pvnkt := 0.0
	if e.Kinetic > 0 {
		pvnkt = pressure * volume / (2.0 / 3.0) / e.Kinetic
	}

	lines := []string{
		cyan.Render(fmt.Sprintf("van der waals · %s · N=%d", st.LawName(), st.NumParticles())),
		"",
		fmt.Sprintf("%s %.5f", dim.Render("KE      "), e.Kinetic),
		fmt.Sprintf("%s %.5f", dim.Render("PE      "), e.Potential),
		fmt.Sprintf("%s %.5f", dim.Render("E total "), e.Total()),
		fmt.Sprintf("%s %.5f", dim.Render("T       "), temp),
		fmt.Sprintf("%s %.5f", dim.Render("P       "), pressure),
		fmt.Sprintf("%s %.2f", dim.Render("V       "), volume),
		fmt.Sprintf("%s %.5f", dim.Render("PV/NkT  "), pvnkt),
		"",
		fmt.Sprintf("%s %s", dim.Render("target T"), yellow.Render(fmt.Sprintf("%.2f", st.TargetTemp()))),
		fmt.Sprintf("%s %s", dim.Render("inject  "), yellow.Render(fmt.Sprintf("%.3f", st.InjectRate()))),
		fmt.Sprintf("%s %s", dim.Render("rate    "), yellow.Render(fmt.Sprintf("%+.4f", st.BoundRate()))),
	}

	if pin.IsPinned {
		lines = append(lines, fmt.Sprintf("%s %s", dim.Render("pin     "), green.Render(fmt.Sprintf("on @ %.4f", pin.AtValue))))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", dim.Render("pin     "), dim.Render("off")))
	}
	if m.paused {
		lines = append(lines, "", yellow.Render("paused"))
	} else {
		lines = append(lines, "", dim.Render(fmt.Sprintf("frame %d", m.frames)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPressurePlot() string {
	history := m.state.PressureHistory()
	if len(history) < 2 {
		return dim.Render("collecting pressure samples...")
	}
	if len(history) > plotWidth {
		history = history[len(history)-plotWidth:]
	}
	return asciigraph.Plot(history,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("average pressure"),
	)
}
