package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcalc/internal/service"
	"fitcalc/internal/vdot"
)

// Form field order on the pace screen
const (
	paceFieldDistance = iota
	paceFieldTime
	paceFieldPace
)

var paceModes = []service.PaceMode{service.ModePace, service.ModeTime, service.ModeDistance}

// PaceModel is the pace calculator screen model
type PaceModel struct {
	queryService *service.QueryService
	units        Units
	mode         int
	preset       racePreset
	form         form
	data         *service.PaceData
	err          error
	viewport     viewport.Model
	ready        bool
}

// NewPaceModel creates a new pace calculator model
func NewPaceModel(qs *service.QueryService, units Units, width, height int) PaceModel {
	m := PaceModel{
		queryService: qs,
		units:        units,
		preset:       newRacePreset(vdot.Distance5K),
		form: newForm(
			field{label: "Distance (km)", placeholder: "10"},
			field{label: "Time", placeholder: "0:50:00"},
			field{label: "Pace (/km)", placeholder: "5:00"},
		),
	}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, splitViewportHeight(height))
		m.ready = true
	}
	return m
}

// Init initializes the pace screen
func (m PaceModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to the form
func (m PaceModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m PaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, splitViewportHeight(msg.Height))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = splitViewportHeight(msg.Height)
		}

	case tea.KeyMsg:
		if m.form.editing {
			cmd, submitted := m.form.update(msg)
			if submitted {
				m.calculate()
			}
			return m, cmd
		}
		switch msg.String() {
		case "e", "enter":
			return m, m.form.startEditing()
		case "m":
			m.mode = (m.mode + 1) % len(paceModes)
			m.data = nil
			m.err = nil
			m.refreshSplits()
			return m, nil
		case "d":
			m.form.setValue(paceFieldDistance, kilometres(m.preset.next()))
			return m, nil
		case "u":
			m.units = m.units.Toggle()
			if m.data != nil {
				m.calculate()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PaceModel) calculate() {
	m.data, m.err = m.queryService.Pace(service.PaceInput{
		Mode:      paceModes[m.mode],
		Distance:  m.form.value(paceFieldDistance),
		Time:      m.form.value(paceFieldTime),
		Pace:      m.form.value(paceFieldPace),
		SplitUnit: string(m.units.Unit()),
	})

	if m.data != nil {
		switch paceModes[m.mode] {
		case service.ModePace:
			m.form.setValue(paceFieldPace, m.data.Pace)
		case service.ModeTime:
			m.form.setValue(paceFieldTime, m.data.Time)
		case service.ModeDistance:
			m.form.setValue(paceFieldDistance, fmt.Sprintf("%.2f", m.data.DistanceKm))
		}
	}
	m.refreshSplits()
}

func (m *PaceModel) refreshSplits() {
	if m.ready {
		m.viewport.SetContent(m.renderSplits())
		m.viewport.GotoTop()
	}
}

// View renders the pace screen
func (m PaceModel) View() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Pace Calculator  (solving for %s)", paceModes[m.mode]))

	var result string
	switch {
	case m.err != nil:
		result = errorStyle.Render("Error: " + m.err.Error())
	case m.data != nil:
		result = lipgloss.JoinVertical(lipgloss.Left,
			RenderMetric("Distance", m.units.FormatDistance(m.data.DistanceKm), ""),
			RenderMetric("Time", m.data.Time, ""),
			RenderMetric("Pace", m.data.Pace+"/km", m.units.FormatPace(m.data.PaceSecPerKm)),
		)
	}

	top := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.view(), "", result))

	parts := []string{top}
	if m.ready && m.data != nil {
		parts = append(parts, m.viewport.View())
	}
	parts = append(parts, m.form.hint("e: edit  m: change what is solved  d: race distance  u: km/mi splits  j/k: scroll splits"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m PaceModel) renderSplits() string {
	if m.data == nil || len(m.data.Splits) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-12s %-10s %s", "Split", "Time", "Elapsed")))
	for _, s := range m.data.Splits {
		label := s.Label
		if s.IsPartial {
			label += "*"
		}
		lines = append(lines, fmt.Sprintf("  %-12s %-10s %s", label, s.SplitTime(), s.Cumulative()))
	}
	return strings.Join(lines, "\n")
}

// splitViewportHeight leaves room for the app chrome and the form card
func splitViewportHeight(height int) int {
	h := height - 18
	if h < 3 {
		h = 3
	}
	return h
}
